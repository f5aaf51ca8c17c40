package store

import (
    "context"
    "database/sql"
    "os"
    "path/filepath"
    "time"

    _ "modernc.org/sqlite"
)

// DB is the run index: one row per completed run.
type DB struct {
    sql *sql.DB
}

func Open(path string) (*DB, error) {
    if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
        return nil, err
    }
    db, err := sql.Open("sqlite", path)
    if err != nil {
        return nil, err
    }
    if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
        return nil, err
    }
    s := &DB{sql: db}
    if err := s.migrate(context.Background()); err != nil {
        return nil, err
    }
    return s, nil
}

func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate(ctx context.Context) error {
    stmts := []string{
        `CREATE TABLE IF NOT EXISTS runs (
            id TEXT PRIMARY KEY,
            source TEXT,
            run_dir TEXT,
            entry TEXT,
            exit_code INTEGER,
            started_at TIMESTAMP,
            finished_at TIMESTAMP
        );`,
        `CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);`,
    }
    for _, s := range stmts {
        if _, err := d.sql.ExecContext(ctx, s); err != nil {
            return err
        }
    }
    return nil
}

type Run struct {
    ID         string
    Source     string
    RunDir     string
    Entry      string
    ExitCode   int
    StartedAt  time.Time
    FinishedAt time.Time
}

func (d *DB) Record(ctx context.Context, r Run) error {
    _, err := d.sql.ExecContext(ctx,
        `INSERT OR REPLACE INTO runs (id, source, run_dir, entry, exit_code, started_at, finished_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
        r.ID, r.Source, r.RunDir, r.Entry, r.ExitCode, r.StartedAt, r.FinishedAt)
    return err
}

func (d *DB) List(ctx context.Context) ([]Run, error) {
    rows, err := d.sql.QueryContext(ctx,
        `SELECT id, source, run_dir, entry, exit_code, started_at, finished_at
         FROM runs ORDER BY id DESC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    var runs []Run
    for rows.Next() {
        var r Run
        if err := rows.Scan(&r.ID, &r.Source, &r.RunDir, &r.Entry, &r.ExitCode, &r.StartedAt, &r.FinishedAt); err != nil {
            return nil, err
        }
        runs = append(runs, r)
    }
    return runs, rows.Err()
}
