// Copyright 2026 The benchbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchstore appends benchmark runs to a SQL history
// database, so past comparisons can be re-rendered or mined later.
// sqlite3 and mysql are explicitly supported; other drivers receive
// MySQL syntax which may or may not be compatible.
package benchstore

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"text/template"
	"time"

	"benchbox/benchjson"
)

// A Store is a handle to the history database. It is safe for
// concurrent use by multiple goroutines.
type Store struct {
	sql *sql.DB
	// prepared statements
	insertRun    *sql.Stmt
	insertSample *sql.Stmt
}

// A Run is one labeled dataset recorded as part of a single store
// operation, e.g. {"master", <master dataset>}.
type Run struct {
	Branch string
	Data   benchjson.Dataset
}

// Open creates a Store backed by a SQL database. The parameters are
// the same as for sql.Open.
func Open(driverName, dataSourceName string) (*Store, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	s := &Store{sql: db}
	if err := s.createTables(driverName); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// createTmpl is the template used to prepare the CREATE statements
// for the database. It is evaluated with . as a map containing one
// entry whose key is the driver name.
var createTmpl = template.Must(template.New("create").Parse(`
CREATE TABLE IF NOT EXISTS Runs (
	RunID {{if .sqlite3}}INTEGER PRIMARY KEY AUTOINCREMENT{{else}}SERIAL PRIMARY KEY AUTO_INCREMENT{{end}},
	Recorded VARCHAR(64)
);
CREATE TABLE IF NOT EXISTS Samples (
	RunID BIGINT UNSIGNED,
	Branch VARCHAR(64),
	Category VARCHAR(255),
	Test VARCHAR(255),
	Idx INTEGER,
	Value DOUBLE
);
{{if .sqlite3}}
CREATE INDEX IF NOT EXISTS SamplesRun ON Samples(RunID, Branch, Category);
{{end}}
`))

// createTables creates any missing tables on the connection in
// s.sql. driverName selects the correct syntax.
func (s *Store) createTables(driverName string) error {
	var buf bytes.Buffer
	if err := createTmpl.Execute(&buf, map[string]bool{driverName: true}); err != nil {
		return err
	}
	for _, q := range strings.Split(buf.String(), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := s.sql.Exec(q); err != nil {
			return fmt.Errorf("create table: %v", err)
		}
	}
	return nil
}

func (s *Store) prepareStatements() error {
	var err error
	s.insertRun, err = s.sql.Prepare("INSERT INTO Runs(Recorded) VALUES (?)")
	if err != nil {
		return err
	}
	s.insertSample, err = s.sql.Prepare(
		"INSERT INTO Samples(RunID, Branch, Category, Test, Idx, Value) VALUES (?, ?, ?, ?, ?, ?)")
	return err
}

// RecordRun stores every sample of the given datasets under a fresh
// run ID and returns that ID. The whole run is written in one
// transaction; a failure leaves no partial run behind.
func (s *Store) RecordRun(ctx context.Context, recorded time.Time, runs ...Run) (int64, error) {
	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.StmtContext(ctx, s.insertRun).ExecContext(ctx, recorded.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	insert := tx.StmtContext(ctx, s.insertSample)
	for _, run := range runs {
		for _, cat := range run.Data.Categories() {
			tests := run.Data[cat]
			for _, test := range tests.Names() {
				for i, v := range tests[test] {
					if _, err := insert.ExecContext(ctx, id, run.Branch, cat, test, i, v); err != nil {
						return 0, err
					}
				}
			}
		}
	}
	return id, tx.Commit()
}

// CountSamples returns the number of samples stored for one run.
func (s *Store) CountSamples(ctx context.Context, runID int64) (int, error) {
	var n int
	err := s.sql.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM Samples WHERE RunID = ?", runID).Scan(&n)
	return n, err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.sql.Close()
}
