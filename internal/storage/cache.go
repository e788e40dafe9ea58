package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/framewright/pipeconf/internal/location"
)

// LocationCache persists resolved external location records so the
// administrative refresh command has something to diff against and
// offline sessions can inspect what was last cached.
type LocationCache struct {
	db *sql.DB
}

// OpenCache opens (or creates) the cache database at dbPath.
func OpenCache(dbPath string) (*LocationCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	ctx := context.Background()
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if err := runSchemaMigration(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}

	return &LocationCache{db: db}, nil
}

// runSchemaMigration ensures the locations table exists.
func runSchemaMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS locations (
			setting_path TEXT NOT NULL,
			environment TEXT NOT NULL,
			descriptor_type TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			version TEXT NOT NULL DEFAULT '',
			source_path TEXT NOT NULL DEFAULT '',
			updated_at INTEGER NOT NULL DEFAULT (unixepoch()),
			PRIMARY KEY (environment, setting_path)
		);
		CREATE INDEX IF NOT EXISTS idx_locations_env ON locations(environment);
	`)
	if err != nil {
		return fmt.Errorf("failed to create locations table: %w", err)
	}
	return nil
}

// Close closes the cache database.
func (c *LocationCache) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// Put upserts the location declared at settingPath in environment.
func (c *LocationCache) Put(ctx context.Context, environment, settingPath string, rec location.Record) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO locations
			(environment, setting_path, descriptor_type, name, version, source_path, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, unixepoch())`,
		environment, settingPath, rec.Type, rec.Name, rec.Version, rec.Path)
	if err != nil {
		return fmt.Errorf("failed to cache location %s: %w", settingPath, err)
	}
	return nil
}

// Get returns the cached location at settingPath, if any.
func (c *LocationCache) Get(ctx context.Context, environment, settingPath string) (location.Record, bool, error) {
	var rec location.Record
	err := c.db.QueryRowContext(ctx, `
		SELECT descriptor_type, name, version, source_path
		FROM locations WHERE environment = ? AND setting_path = ?`,
		environment, settingPath).Scan(&rec.Type, &rec.Name, &rec.Version, &rec.Path)
	if err == sql.ErrNoRows {
		return location.Record{}, false, nil
	}
	if err != nil {
		return location.Record{}, false, fmt.Errorf("failed to read cached location %s: %w", settingPath, err)
	}
	return rec, true, nil
}

// CachedLocation pairs a setting path with its cached record.
type CachedLocation struct {
	SettingPath string
	Record      location.Record
}

// List returns every cached location for environment, ordered by
// setting path.
func (c *LocationCache) List(ctx context.Context, environment string) ([]CachedLocation, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT setting_path, descriptor_type, name, version, source_path
		FROM locations WHERE environment = ? ORDER BY setting_path`,
		environment)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached locations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []CachedLocation
	for rows.Next() {
		var cached CachedLocation
		if err := rows.Scan(&cached.SettingPath, &cached.Record.Type,
			&cached.Record.Name, &cached.Record.Version, &cached.Record.Path); err != nil {
			return nil, fmt.Errorf("failed to scan cached location: %w", err)
		}
		out = append(out, cached)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached locations: %w", err)
	}
	return out, nil
}
