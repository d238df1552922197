package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zmzlois/readingreact/logging"
	"github.com/zmzlois/readingreact/model"
)

var ErrGridNotFound = errors.New("grid not found")

var logCtx = logging.PackageCtx("db")

type SQLiteStorage struct {
	db *sql.DB
}

var _ Storage = (*SQLiteStorage)(nil)

func NewStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db}
}

func InitDBStorage(db *sql.DB) error {
	statements := []string{
		`create table if not exists grids(
			name text primary key,
			title text not null default '',
			source text not null default '',
			row_count int not null,
			column_count int not null,
			updated datetime not null default (datetime('now', 'subsec')))`,
		`create table if not exists cells(
			grid text not null,
			ordinal int not null,
			row int not null,
			col int not null,
			content text not null default '',
			primary key (grid, ordinal))`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			slog.ErrorContext(logCtx, "Failed to init schema", "statement", stmt, "error", err)

			return fmt.Errorf("could not init schema: %w", err)
		}
	}

	return nil
}

func NewStorageFromPath(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite db %s: %w", path, err)
	}

	// every connection to ":memory:" is a separate database
	db.SetMaxOpenConns(1)

	if err := InitDBStorage(db); err != nil {
		db.Close()

		return nil, err
	}

	slog.InfoContext(logCtx, "Opened storage", "path", path)

	return NewStorage(db), nil
}

// SaveGrid inserts doc or replaces the stored document with the same name, cells included.
func (s *SQLiteStorage) SaveGrid(doc *model.GridDocument) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.Exec(`insert into grids(name, title, source, row_count, column_count, updated)
		values(?, ?, ?, ?, ?, datetime('now', 'subsec'))
		on conflict(name) do update set
			title = excluded.title,
			source = excluded.source,
			row_count = excluded.row_count,
			column_count = excluded.column_count,
			updated = excluded.updated`,
		doc.Name, doc.Title, doc.Source, doc.Spec.Rows, doc.Spec.Columns)
	if err != nil {
		return fmt.Errorf("could not store grid %s: %w", doc.Name, err)
	}

	if _, err := tx.Exec(`delete from cells where grid = ?`, doc.Name); err != nil {
		return fmt.Errorf("could not clear cells of grid %s: %w", doc.Name, err)
	}

	for i, cell := range doc.Cells {
		_, err := tx.Exec(`insert into cells(grid, ordinal, row, col, content) values(?, ?, ?, ?, ?)`,
			doc.Name, i, cell.Row, cell.Col, cell.Content)
		if err != nil {
			return fmt.Errorf("could not store cell %d of grid %s: %w", i, doc.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit grid %s: %w", doc.Name, err)
	}

	slog.DebugContext(logCtx, "Stored grid", "name", doc.Name, "cells", len(doc.Cells))

	return nil
}

func (s *SQLiteStorage) LoadGrid(name string) (*model.GridDocument, error) {
	doc := model.GridDocument{Name: name}

	err := s.db.QueryRow(`select title, source, row_count, column_count from grids where name = ?`, name).
		Scan(&doc.Title, &doc.Source, &doc.Spec.Rows, &doc.Spec.Columns)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrGridNotFound, name)
	}

	if err != nil {
		return nil, fmt.Errorf("could not load grid %s: %w", name, err)
	}

	rows, err := s.db.Query(`select row, col, content from cells where grid = ? order by ordinal`, name)
	if err != nil {
		return nil, fmt.Errorf("could not load cells of grid %s: %w", name, err)
	}
	defer rows.Close()

	doc.Cells = make([]model.PositionedCell, 0)

	for rows.Next() {
		var cell model.PositionedCell

		if err := rows.Scan(&cell.Row, &cell.Col, &cell.Content); err != nil {
			return nil, fmt.Errorf("could not scan cell of grid %s: %w", name, err)
		}

		doc.Cells = append(doc.Cells, cell)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read cells of grid %s: %w", name, err)
	}

	return &doc, nil
}

func (s *SQLiteStorage) ListGrids() ([]model.GridSummary, error) {
	rows, err := s.db.Query(
		`select g.name, g.title, g.row_count, g.column_count, count(c.ordinal)
		from grids g
		left join cells c on c.grid = g.name
		group by g.name
		order by g.name`)
	if err != nil {
		return nil, fmt.Errorf("could not list grids: %w", err)
	}
	defer rows.Close()

	result := make([]model.GridSummary, 0)

	for rows.Next() {
		var summary model.GridSummary

		err := rows.Scan(&summary.Name, &summary.Title, &summary.Spec.Rows, &summary.Spec.Columns, &summary.CellCount)
		if err != nil {
			return nil, fmt.Errorf("could not scan grid summary: %w", err)
		}

		result = append(result, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read grid summaries: %w", err)
	}

	return result, nil
}

func (s *SQLiteStorage) DeleteGrid(name string) error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.Exec(`delete from grids where name = ?`, name)
	if err != nil {
		return fmt.Errorf("could not delete grid %s: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not delete grid %s: %w", name, err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s", ErrGridNotFound, name)
	}

	if _, err := tx.Exec(`delete from cells where grid = ?`, name); err != nil {
		return fmt.Errorf("could not delete cells of grid %s: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit deletion of grid %s: %w", name, err)
	}

	return nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.ErrorContext(logCtx, "Could not close storage", "error", err)
	}
}
