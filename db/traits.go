package db

import "github.com/zmzlois/readingreact/model"

type Storage interface {
	SaveGrid(doc *model.GridDocument) error
	LoadGrid(name string) (*model.GridDocument, error)
	ListGrids() ([]model.GridSummary, error)
	DeleteGrid(name string) error
	Close()
}
