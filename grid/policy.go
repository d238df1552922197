package grid

import (
	"fmt"
	"strings"

	"github.com/zmzlois/readingreact/model"
)

// OverflowPolicy decides what happens to a cell placed outside of the guide extent.
type OverflowPolicy string

const (
	// OverflowAllow renders the cell where it was placed, even past the guides.
	OverflowAllow OverflowPolicy = "allow"
	// OverflowClamp moves the cell to the nearest row/column inside the grid.
	OverflowClamp OverflowPolicy = "clamp"
	// OverflowReject fails the whole placement.
	OverflowReject OverflowPolicy = "reject"
)

func ParseOverflowPolicy(value string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(strings.ToLower(strings.TrimSpace(value))); p {
	case "":
		return OverflowAllow, nil
	case OverflowAllow, OverflowClamp, OverflowReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown overflow policy %q, expected one of allow, clamp, reject", value)
	}
}

// Place applies the policy to every cell. The input slice is never modified.
func Place(spec model.GridSpec, cells []model.PositionedCell, policy OverflowPolicy) ([]model.PositionedCell, error) {
	placed := make([]model.PositionedCell, 0, len(cells))

	for i, cell := range cells {
		if Contains(spec, cell.RowCol) {
			placed = append(placed, cell)

			continue
		}

		switch policy {
		case OverflowReject:
			return nil, fmt.Errorf("%w: cell %d at row %d column %d, grid is %dx%d",
				ErrCellOutOfRange, i, cell.Row, cell.Col, spec.Rows, spec.Columns)
		case OverflowClamp:
			cell.Row = clamp(cell.Row, 1, spec.Rows)
			cell.Col = clamp(cell.Col, 1, spec.Columns)
		case OverflowAllow:
		default:
			return nil, fmt.Errorf("unknown overflow policy %q", policy)
		}

		placed = append(placed, cell)
	}

	return placed, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
