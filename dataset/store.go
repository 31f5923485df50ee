package dataset

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrDatasetNotFound is returned by Load when no dataset has the given name.
var ErrDatasetNotFound = errors.New("dataset: not found")

// Store persists named datasets in a sqlite file so charts can be re-rendered
// without re-ingesting the source data.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) a sqlite-backed dataset store at path
// and applies any pending schema migrations.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open dataset store: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	drv, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init migrations: %w", err)
	}
	// Note: we don't close m because it would close the underlying DB connection.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		db.Close()
		return nil, fmt.Errorf("migration up failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a dataset under name, replacing any previous dataset with the
// same name. It returns the id assigned to the saved dataset.
func (s *Store) Save(name string, ds *Dataset) (string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM dataset_rows WHERE dataset_id IN (SELECT dataset_id FROM datasets WHERE name = ?)`, name); err != nil {
		return "", fmt.Errorf("clear previous rows: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM datasets WHERE name = ?`, name); err != nil {
		return "", fmt.Errorf("clear previous dataset: %w", err)
	}

	id := uuid.NewString()
	if _, err := tx.Exec(`INSERT INTO datasets (dataset_id, name, row_count, created_at) VALUES (?, ?, ?, ?)`,
		id, name, ds.Len(), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return "", fmt.Errorf("insert dataset: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO dataset_rows (dataset_id, seq, data) VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < ds.Len(); i++ {
		data, err := json.Marshal(ds.Row(i))
		if err != nil {
			return "", fmt.Errorf("encode row %d: %w", i, err)
		}
		if _, err := stmt.Exec(id, i, string(data)); err != nil {
			return "", fmt.Errorf("insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit save: %w", err)
	}
	return id, nil
}

// Load retrieves a dataset previously stored under name.
func (s *Store) Load(name string) (*Dataset, error) {
	var id string
	err := s.db.QueryRow(`SELECT dataset_id FROM datasets WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("look up dataset: %w", err)
	}

	rows, err := s.db.Query(`SELECT data FROM dataset_rows WHERE dataset_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("load rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(Row)
		if err := json.Unmarshal([]byte(data), &row); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", len(out), err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return &Dataset{rows: out}, nil
}

// Query runs an arbitrary SQL query against the store and materializes the
// result set as a Dataset, one row per result row with columns keyed by the
// result column names.
func (s *Store) Query(query string, args ...any) (*Dataset, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dataset: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(Row, len(cols))
		for i, name := range cols {
			if b, ok := values[i].([]byte); ok {
				row[name] = string(b)
			} else {
				row[name] = values[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return &Dataset{rows: out}, nil
}
