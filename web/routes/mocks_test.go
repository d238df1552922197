package routes_test

import (
	"fmt"

	"github.com/zmzlois/readingreact/db"
	"github.com/zmzlois/readingreact/model"
	"github.com/zmzlois/readingreact/theme"
	"github.com/zmzlois/readingreact/web/routes"
)

// SimpleStorageMock is a simple manual mock implementation of the Storage interface
type SimpleStorageMock struct {
	Grids       map[string]*model.GridDocument
	ReturnError error
	CallCount   int
}

func (m *SimpleStorageMock) SaveGrid(doc *model.GridDocument) error {
	m.CallCount++
	if m.ReturnError != nil {
		return m.ReturnError
	}

	m.Grids[doc.Name] = doc

	return nil
}

func (m *SimpleStorageMock) LoadGrid(name string) (*model.GridDocument, error) {
	m.CallCount++
	if m.ReturnError != nil {
		return nil, m.ReturnError
	}

	doc, ok := m.Grids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", db.ErrGridNotFound, name)
	}

	return doc, nil
}

func (m *SimpleStorageMock) ListGrids() ([]model.GridSummary, error) {
	m.CallCount++
	if m.ReturnError != nil {
		return nil, m.ReturnError
	}

	result := make([]model.GridSummary, 0, len(m.Grids))
	for _, doc := range m.Grids {
		result = append(result, model.GridSummary{Name: doc.Name, Title: doc.Title, Spec: doc.Spec, CellCount: len(doc.Cells)})
	}

	return result, nil
}

func (m *SimpleStorageMock) DeleteGrid(name string) error {
	m.CallCount++
	delete(m.Grids, name)

	return m.ReturnError
}

// Close is a no-op for testing
func (m *SimpleStorageMock) Close() {}

// createTestGrid is a 2x3 grid with one cell outside of it
func createTestGrid() *model.GridDocument {
	return &model.GridDocument{
		Name:   "hooks",
		Title:  "Hooks",
		Source: "grids/hooks.yaml",
		Spec:   model.GridSpec{Rows: 2, Columns: 3},
		Cells: []model.PositionedCell{
			{RowCol: model.RowCol{Row: 1, Col: 1}, Content: "useState"},
			{RowCol: model.RowCol{Row: 3, Col: 4}, Content: "useEffect"},
		},
	}
}

// MockServerHandler helper struct for testing
type MockServerHandler struct {
	routes.ServerHandler
	MockStorage *SimpleStorageMock
}

func setupMockServerHandler() MockServerHandler {
	mockStorage := &SimpleStorageMock{Grids: map[string]*model.GridDocument{"hooks": createTestGrid()}}

	return MockServerHandler{
		ServerHandler: routes.ServerHandler{
			Storage:       mockStorage,
			Theme:         theme.Default(),
			DefaultLocale: "en",
		},
		MockStorage: mockStorage,
	}
}
