package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/chriserin/gherkin2md/internal/parser"
)

// Open opens (creating if needed) the SQLite database at path and applies
// pending migrations.
func Open(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection keeps the foreign_keys pragma in effect for every query.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}
	if err := Migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

// Counts reports how many rows SaveDocument wrote per table.
type Counts struct {
	Features  int
	Scenarios int
	Steps     int
}

// SaveDocument stores one parsed input as a documents row plus its
// features, scenarios and steps. Everything is written in a single
// transaction; position columns preserve source order.
func SaveDocument(ctx context.Context, sqlDB *sql.DB, source string, features []parser.Feature) (Counts, error) {
	var counts Counts

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("beginning export: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO documents (source) VALUES (?)`, source)
	if err != nil {
		return counts, fmt.Errorf("inserting document %s: %w", source, err)
	}
	documentID, err := res.LastInsertId()
	if err != nil {
		return counts, fmt.Errorf("reading document id: %w", err)
	}

	for fi, f := range features {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO features (document_id, position, name, description) VALUES (?, ?, ?, ?)`,
			documentID, fi, nullString(f.Name), nullString(f.Description))
		if err != nil {
			return counts, fmt.Errorf("inserting feature %d: %w", fi+1, err)
		}
		featureID, err := res.LastInsertId()
		if err != nil {
			return counts, fmt.Errorf("reading feature id: %w", err)
		}
		counts.Features++

		for si, s := range f.Scenarios {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO scenarios (feature_id, position, name) VALUES (?, ?, ?)`,
				featureID, si, s.Name)
			if err != nil {
				return counts, fmt.Errorf("inserting scenario %q: %w", s.Name, err)
			}
			scenarioID, err := res.LastInsertId()
			if err != nil {
				return counts, fmt.Errorf("reading scenario id: %w", err)
			}
			counts.Scenarios++

			for pi, step := range s.Steps {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO steps (scenario_id, position, keyword, description) VALUES (?, ?, ?, ?)`,
					scenarioID, pi, step.Keyword, step.Description)
				if err != nil {
					return counts, fmt.Errorf("inserting step %q: %w", step.String(), err)
				}
				counts.Steps++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return Counts{}, fmt.Errorf("committing export: %w", err)
	}
	return counts, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
