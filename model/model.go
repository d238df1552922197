package model

// GridSpec is the logical rows x columns extent of a grid.
type GridSpec struct {
	Rows    int
	Columns int
}

// Guide is a background marker at one grid intersection. X is the column, Y is the row, both 1-indexed.
type Guide struct {
	X int
	Y int
}

type RowCol struct {
	Row int
	Col int
}

// PositionedCell is caller content pinned to one (row, column) of the grid.
type PositionedCell struct {
	RowCol
	Content string
}

type GridDocument struct {
	Name  string
	Title string
	Spec  GridSpec
	Cells []PositionedCell
	// Source is the document path relative to the repository root, empty when unknown.
	Source string
}

// GridSummary is what the index page lists for each stored document.
type GridSummary struct {
	Name      string
	Title     string
	Spec      GridSpec
	CellCount int
}

// PageContext carries what the docs framework knows about the page being rendered.
type PageContext struct {
	Title         string
	Path          string
	Locale        string
	DefaultLocale string
}
