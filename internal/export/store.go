package export

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/samber/lo"
)

//go:embed migrations/*.sql
var migrations embed.FS

// timeLayout is fixed-width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// insertChunk bounds the rows per INSERT, well below SQLite's variable limit.
const insertChunk = 50

var resultColumns = []string{
	"run_id", "seq", "line", "word", "particle", "surface", "output", "kind", "batchim", "status", "error",
}

// Run is one stored batch run.
type Run struct {
	ID        string
	Source    string
	CreatedAt time.Time
	Total     int
}

// Store keeps a history of runs in a SQLite database.
type Store struct {
	db *sql.DB
	sq squirrel.StatementBuilderType
}

// OpenStore opens (or creates) the database at path and applies migrations.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db: db,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores results under a new run and returns its id.
func (s *Store) SaveRun(ctx context.Context, source string, results []Result) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := s.sq.Insert("runs").
		Columns("id", "source", "created_at", "total").
		Values(id, source, time.Now().UTC().Format(timeLayout), len(results)).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build run insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i, chunk := range lo.Chunk(results, insertChunk) {
		insert := s.sq.Insert("results").Columns(resultColumns...)
		for j, r := range chunk {
			insert = insert.Values(id, i*insertChunk+j, r.Line, r.Word, r.Particle, r.Surface,
				r.Output, r.Kind, r.Batchim, string(r.Status), r.Error)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return "", fmt.Errorf("failed to build result insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return "", fmt.Errorf("failed to insert results: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// Runs lists stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	query, args, err := s.sq.Select("id", "source", "created_at", "total").
		From("runs").
		OrderBy("created_at DESC", "rowid DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build runs query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run     Run
			created string
		)
		if err := rows.Scan(&run.ID, &run.Source, &created, &run.Total); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run time: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}
	return runs, nil
}

// Results returns the results of a run in their original order.
func (s *Store) Results(ctx context.Context, runID string) ([]Result, error) {
	query, args, err := s.sq.Select(resultColumns[2:]...).
		From("results").
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build results query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			r      Result
			status string
		)
		if err := rows.Scan(&r.Line, &r.Word, &r.Particle, &r.Surface, &r.Output,
			&r.Kind, &r.Batchim, &status, &r.Error); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.Status = Status(status)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return results, nil
}
