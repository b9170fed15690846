// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package store caches conversion factors in an SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Factor is one cached conversion: a value in From times Factor is the same
// value in To. Exact holds the factor as "num/den" when it is an exact ratio,
// and is empty otherwise.
type Factor struct {
	From      string
	To        string
	Factor    float64
	Exact     string
	Dimension string
	CreatedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open opens the factor database at path, creating it and its directory if
// needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS factors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_unit TEXT NOT NULL,
		to_unit TEXT NOT NULL,
		factor REAL NOT NULL,
		exact TEXT,
		dimension TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(from_unit, to_unit)
	);

	CREATE INDEX IF NOT EXISTS idx_dimension ON factors(dimension);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save saves or replaces the factor for f.From and f.To.
func (s *Store) Save(f Factor) error {
	query := `
	INSERT OR REPLACE INTO factors (from_unit, to_unit, factor, exact, dimension)
	VALUES (?, ?, ?, ?, ?)
	`

	exact := sql.NullString{String: f.Exact, Valid: f.Exact != ""}
	if _, err := s.db.Exec(query, f.From, f.To, f.Factor, exact, f.Dimension); err != nil {
		return fmt.Errorf("failed to save factor %s -> %s: %w", f.From, f.To, err)
	}
	return nil
}

// SaveAll saves factors in a single transaction.
func (s *Store) SaveAll(factors []Factor) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO factors (from_unit, to_unit, factor, exact, dimension)
	VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range factors {
		exact := sql.NullString{String: f.Exact, Valid: f.Exact != ""}
		if _, err := stmt.Exec(f.From, f.To, f.Factor, exact, f.Dimension); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save factor %s -> %s: %w", f.From, f.To, err)
		}
	}

	return tx.Commit()
}

// Lookup returns the cached factor from one unit to another, or nil if there
// is none.
func (s *Store) Lookup(from, to string) (*Factor, error) {
	query := `
	SELECT from_unit, to_unit, factor, exact, dimension, created_at
	FROM factors
	WHERE from_unit = ? AND to_unit = ?
	`

	f, err := scanFactor(s.db.QueryRow(query, from, to))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// ByDimension returns the cached factors between units of a dimension,
// ordered by unit names.
func (s *Store) ByDimension(dimension string) ([]Factor, error) {
	query := `
	SELECT from_unit, to_unit, factor, exact, dimension, created_at
	FROM factors
	WHERE dimension = ?
	ORDER BY from_unit, to_unit
	`

	rows, err := s.db.Query(query, dimension)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var factors []Factor
	for rows.Next() {
		f, err := scanFactor(rows)
		if err != nil {
			return nil, err
		}
		factors = append(factors, *f)
	}

	return factors, rows.Err()
}

func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM factors`).Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFactor(row scanner) (*Factor, error) {
	var f Factor
	var exact sql.NullString
	if err := row.Scan(&f.From, &f.To, &f.Factor, &exact, &f.Dimension, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.Exact = exact.String
	return &f, nil
}
