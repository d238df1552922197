package layout

import (
	"errors"
	"fmt"
	"io"

	"github.com/zmzlois/readingreact/grid"
	"github.com/zmzlois/readingreact/model"
	"gopkg.in/yaml.v3"
)

// Document is the authoring format of a grid. JSON documents decode too, JSON being YAML.
type Document struct {
	Name    string         `yaml:"name"`
	Title   string         `yaml:"title"`
	Rows    int            `yaml:"rows"`
	Columns int            `yaml:"columns"`
	Cells   []DocumentCell `yaml:"cells"`
}

type DocumentCell struct {
	Row     int    `yaml:"row"`
	Column  int    `yaml:"column"`
	Content string `yaml:"content"`
}

func Decode(r io.Reader) (*Document, error) {
	var doc Document

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}

		return nil, fmt.Errorf("could not parse grid document: %w", err)
	}

	return &doc, nil
}

// ToModel validates the document and converts it. Cells outside of the grid are kept; placement policy applies at render time.
func (d *Document) ToModel() (*model.GridDocument, error) {
	if d.Name == "" {
		return nil, errors.New("grid document has no name")
	}

	spec, err := grid.NewSpec(d.Rows, d.Columns)
	if err != nil {
		return nil, fmt.Errorf("grid document %s: %w", d.Name, err)
	}

	cells := make([]model.PositionedCell, 0, len(d.Cells))
	for _, c := range d.Cells {
		cells = append(cells, model.PositionedCell{
			RowCol:  model.RowCol{Row: c.Row, Col: c.Column},
			Content: c.Content,
		})
	}

	return &model.GridDocument{
		Name:  d.Name,
		Title: d.Title,
		Spec:  spec,
		Cells: cells,
	}, nil
}
