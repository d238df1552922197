package grid

import (
	"errors"
	"fmt"

	"github.com/zmzlois/readingreact/model"
)

var (
	ErrInvalidDimension = errors.New("invalid grid dimension")
	ErrCellOutOfRange   = errors.New("cell outside of grid")
	ErrGridTooLarge     = errors.New("grid too large")
)

// MaxGuides bounds rows*columns for every grid that gets rendered.
const MaxGuides = 10_000

func checkSize(rows, columns int) error {
	if columns > 0 && rows > MaxGuides/columns {
		return fmt.Errorf("%w: %dx%d exceeds %d guides", ErrGridTooLarge, rows, columns, MaxGuides)
	}

	return nil
}

// NewSpec builds a GridSpec, failing on non-positive dimensions and on grids over MaxGuides.
func NewSpec(rows, columns int) (model.GridSpec, error) {
	if rows < 1 || columns < 1 {
		return model.GridSpec{}, fmt.Errorf("%w: rows=%d columns=%d, both must be at least 1", ErrInvalidDimension, rows, columns)
	}

	if err := checkSize(rows, columns); err != nil {
		return model.GridSpec{}, err
	}

	return model.GridSpec{Rows: rows, Columns: columns}, nil
}

// GuideAt maps a flat row-major index to 1-indexed grid coordinates.
func GuideAt(index, columns int) model.Guide {
	return model.Guide{
		X: index%columns + 1,
		Y: index/columns + 1,
	}
}

// Guides returns one guide per intersection of a rows x columns grid.
// A zero dimension yields no guides; a negative one, or more than MaxGuides, is an error.
func Guides(rows, columns int) ([]model.Guide, error) {
	if rows < 0 || columns < 0 {
		return nil, fmt.Errorf("%w: rows=%d columns=%d", ErrInvalidDimension, rows, columns)
	}

	if err := checkSize(rows, columns); err != nil {
		return nil, err
	}

	total := rows * columns
	guides := make([]model.Guide, 0, total)

	for index := range total {
		guides = append(guides, GuideAt(index, columns))
	}

	return guides, nil
}

// Contains reports whether a cell lies within [1, rows] x [1, columns].
func Contains(spec model.GridSpec, at model.RowCol) bool {
	return at.Row >= 1 && at.Row <= spec.Rows && at.Col >= 1 && at.Col <= spec.Columns
}
