// Package migrate applies the SQL files in db/ in filename order, recording
// each one in the migrations table so reruns skip what already ran.
package migrate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
)

// DB is satisfied by both *pgx.Conn and *pgxpool.Pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var prefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d{3}-`)

// Files returns the *.sql files in dir, sorted by name.
func Files(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migration files found in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

// Apply runs every pending migration in dir. Each file and its migrations
// row are committed in one transaction. Progress lines go to out.
// Returns the number of files applied.
func Apply(ctx context.Context, db DB, dir string, out io.Writer) (int, error) {
	files, err := Files(dir)
	if err != nil {
		return 0, err
	}
	applied, err := appliedSet(ctx, db)
	if err != nil {
		return 0, err
	}

	ran := 0
	for _, f := range files {
		filename := filepath.Base(f)
		if applied[filename] {
			fmt.Fprintf(out, "  skip: %s\n", filename)
			continue
		}
		content, err := os.ReadFile(f)
		if err != nil {
			return ran, fmt.Errorf("read %s: %w", filename, err)
		}
		if err := applyOne(ctx, db, filename, string(content)); err != nil {
			return ran, err
		}
		fmt.Fprintf(out, "  applied: %s\n", filename)
		ran++
	}
	return ran, nil
}

// appliedSet reads the migrations table. Before the first migration runs the
// table does not exist, which means nothing is applied.
func appliedSet(ctx context.Context, db DB) (map[string]bool, error) {
	applied := make(map[string]bool)
	var exists bool
	rows, err := db.Query(ctx, "SELECT to_regclass('migrations') IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("check migrations table: %w", err)
	}
	exists, err = pgx.CollectOneRow(rows, pgx.RowTo[bool])
	if err != nil {
		return nil, fmt.Errorf("check migrations table: %w", err)
	}
	if !exists {
		return applied, nil
	}

	rows, err = db.Query(ctx, "SELECT migration FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	for _, n := range names {
		applied[n] = true
	}
	return applied, nil
}

func applyOne(ctx context.Context, db DB, filename, sql string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin %s: %w", filename, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, sql); err != nil {
		return fmt.Errorf("run %s: %w", filename, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO migrations (migration, description) VALUES ($1, $2)",
		filename, Description(filename)); err != nil {
		return fmt.Errorf("record %s: %w", filename, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit %s: %w", filename, err)
	}
	return nil
}

// Description strips the YYYY-MM-DD-NNN- prefix and .sql suffix.
func Description(filename string) string {
	name := strings.TrimSuffix(filename, ".sql")
	name = prefixRe.ReplaceAllString(name, "")
	return strings.ReplaceAll(name, "-", " ")
}
