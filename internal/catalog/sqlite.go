package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go SQLite driver, no CGO required
)

// SQLiteProvider reads catalogs from a local SQLite database, the storage
// used by deployments that seed rosters from the upstream statistics API.
type SQLiteProvider struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the catalog database at path
func OpenSQLite(path string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	// WAL lets seeding and reads overlap
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	p := &SQLiteProvider{db: db}
	if err := p.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate catalog db: %w", err)
	}
	return p, nil
}

func (p *SQLiteProvider) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS teams (
		sport TEXT NOT NULL,
		id    INTEGER NOT NULL,
		name  TEXT NOT NULL,
		PRIMARY KEY (sport, id)
	);
	CREATE TABLE IF NOT EXISTS players (
		sport     TEXT NOT NULL,
		id        INTEGER NOT NULL,
		name      TEXT NOT NULL,
		team_name TEXT,
		PRIMARY KEY (sport, id)
	);
	`
	_, err := p.db.Exec(schema)
	return err
}

// Close releases the underlying database handle
func (p *SQLiteProvider) Close() error {
	return p.db.Close()
}

// Catalog loads the snapshot for one sport. Backend errors are reported as
// ErrUnavailable; an unknown sport simply yields an empty catalog.
func (p *SQLiteProvider) Catalog(ctx context.Context, sport string) (*Catalog, error) {
	cat := &Catalog{Sport: sport}

	rows, err := p.db.QueryContext(ctx, "SELECT id, name FROM teams WHERE sport = ? ORDER BY id", sport)
	if err != nil {
		return nil, fmt.Errorf("%w: query teams: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t TeamRecord
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("%w: scan team: %v", ErrUnavailable, err)
		}
		cat.Teams = append(cat.Teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate teams: %v", ErrUnavailable, err)
	}

	prows, err := p.db.QueryContext(ctx, "SELECT id, name, COALESCE(team_name, '') FROM players WHERE sport = ? ORDER BY id", sport)
	if err != nil {
		return nil, fmt.Errorf("%w: query players: %v", ErrUnavailable, err)
	}
	defer prows.Close()

	for prows.Next() {
		var pl PlayerRecord
		if err := prows.Scan(&pl.ID, &pl.Name, &pl.TeamName); err != nil {
			return nil, fmt.Errorf("%w: scan player: %v", ErrUnavailable, err)
		}
		cat.Players = append(cat.Players, pl)
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate players: %v", ErrUnavailable, err)
	}

	return cat, nil
}

// Save writes a catalog snapshot, replacing any previous rows for the
// sport. Used by seeding; one transaction keeps readers consistent.
func (p *SQLiteProvider) Save(ctx context.Context, cat *Catalog) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM teams WHERE sport = ?", cat.Sport); err != nil {
		return fmt.Errorf("clear teams: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM players WHERE sport = ?", cat.Sport); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	for _, t := range cat.Teams {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO teams (sport, id, name) VALUES (?, ?, ?)",
			cat.Sport, t.ID, t.Name); err != nil {
			return fmt.Errorf("insert team %d: %w", t.ID, err)
		}
	}
	for _, pl := range cat.Players {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO players (sport, id, name, team_name) VALUES (?, ?, ?, ?)",
			cat.Sport, pl.ID, pl.Name, pl.TeamName); err != nil {
			return fmt.Errorf("insert player %d: %w", pl.ID, err)
		}
	}

	return tx.Commit()
}
