// Package migrations embeds the SQL migrations of both panel databases and
// applies them with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

//go:embed primary/*.sql vector/*.sql
var embedded embed.FS

// Target names one of the two logical databases.
type Target string

const (
	TargetPrimary Target = "primary"
	TargetVector  Target = "vector"
)

// Both databases may live in the same physical Postgres instance, so each
// target keeps its own version table.
var versionTables = map[Target]string{
	TargetPrimary: "goose_db_version",
	TargetVector:  "goose_vector_db_version",
}

func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetPrimary, TargetVector:
		return Target(s), nil
	default:
		return "", fmt.Errorf("unknown migration target %q (want primary or vector)", s)
	}
}

// Migrator applies one target's migrations to one database.
type Migrator struct {
	target   Target
	db       *sql.DB
	provider *goose.Provider
}

// Open connects to dsn and prepares the migrations for target.
func Open(target Target, dsn string) (*Migrator, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%s database url is not configured", target)
	}

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", target, err)
	}

	m, err := newMigrator(target, sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return m, nil
}

func newMigrator(target Target, sqlDB *sql.DB) (*Migrator, error) {
	fsys, err := Files(target)
	if err != nil {
		return nil, err
	}

	store, err := database.NewStore(database.DialectPostgres, versionTables[target])
	if err != nil {
		return nil, fmt.Errorf("creating version store: %w", err)
	}

	provider, err := goose.NewProvider("", sqlDB, fsys, goose.WithStore(store))
	if err != nil {
		return nil, fmt.Errorf("creating migration provider: %w", err)
	}

	return &Migrator{target: target, db: sqlDB, provider: provider}, nil
}

// Files returns the migration files of target rooted at the directory.
func Files(target Target) (fs.FS, error) {
	if _, ok := versionTables[target]; !ok {
		return nil, fmt.Errorf("unknown migration target %q", target)
	}
	return fs.Sub(embedded, string(target))
}

func (m *Migrator) Close() error {
	return m.db.Close()
}

func (m *Migrator) Target() Target {
	return m.target
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrating %s: %w", m.target, err)
	}
	for _, r := range results {
		slog.InfoContext(ctx, "migration applied",
			"target", m.target,
			"version", r.Source.Version,
			"duration_ms", r.Duration.Milliseconds())
	}
	if len(results) == 0 {
		slog.InfoContext(ctx, "no pending migrations", "target", m.target)
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("rolling back %s: %w", m.target, err)
	}
	slog.InfoContext(ctx, "migration rolled back", "target", m.target, "version", r.Source.Version)
	return nil
}

// Drop rolls back every applied migration, leaving an empty schema.
func (m *Migrator) Drop(ctx context.Context) error {
	results, err := m.provider.DownTo(ctx, 0)
	if err != nil {
		return fmt.Errorf("dropping %s: %w", m.target, err)
	}
	slog.InfoContext(ctx, "database dropped", "target", m.target, "rolled_back", len(results))
	return nil
}

// MigrationState is one row of Status.
type MigrationState struct {
	Version int64
	Path    string
	Applied bool
}

func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading %s status: %w", m.target, err)
	}
	out := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationState{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Reset drops every migrator, then migrates every migrator, in order.
// It stops at the first failure and does not try to undo earlier steps.
func Reset(ctx context.Context, migrators ...*Migrator) error {
	for _, m := range migrators {
		if err := m.Drop(ctx); err != nil {
			return err
		}
	}
	for _, m := range migrators {
		if err := m.Up(ctx); err != nil {
			return err
		}
	}
	return nil
}
