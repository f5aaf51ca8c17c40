package store

import (
    "context"
    "path/filepath"
    "testing"
    "time"
)

func openTestDB(t *testing.T) *DB {
    t.Helper()
    db, err := Open(filepath.Join(t.TempDir(), ".explog", "runs.db"))
    if err != nil {
        t.Fatalf("Open: %v", err)
    }
    t.Cleanup(func() { db.Close() })
    return db
}

func TestRecordAndList(t *testing.T) {
    db := openTestDB(t)
    ctx := context.Background()
    base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

    runs := []Run{
        {ID: "20260831_120000", Source: "/src/exp", RunDir: "/src/exp_[20260831_120000]", Entry: "main.sh", ExitCode: 0, StartedAt: base, FinishedAt: base.Add(time.Minute)},
        {ID: "20260831_130000", Source: "/src/exp", RunDir: "/src/exp_[20260831_130000]", Entry: "main.py", ExitCode: 1, StartedAt: base.Add(time.Hour), FinishedAt: base.Add(time.Hour + time.Minute)},
    }
    for _, r := range runs {
        if err := db.Record(ctx, r); err != nil {
            t.Fatalf("Record: %v", err)
        }
    }

    got, err := db.List(ctx)
    if err != nil {
        t.Fatalf("List: %v", err)
    }
    if len(got) != 2 {
        t.Fatalf("expected 2 runs, got %d", len(got))
    }
    if got[0].ID != "20260831_130000" {
        t.Errorf("expected newest first, got %q", got[0].ID)
    }
    if got[1].Entry != "main.sh" || got[1].ExitCode != 0 {
        t.Errorf("row mismatch: %+v", got[1])
    }
}

func TestRecordReplacesSameID(t *testing.T) {
    db := openTestDB(t)
    ctx := context.Background()
    r := Run{ID: "20260831_120000", Source: "/src/exp", ExitCode: 1}
    if err := db.Record(ctx, r); err != nil {
        t.Fatal(err)
    }
    r.ExitCode = 0
    if err := db.Record(ctx, r); err != nil {
        t.Fatal(err)
    }
    got, err := db.List(ctx)
    if err != nil {
        t.Fatal(err)
    }
    if len(got) != 1 || got[0].ExitCode != 0 {
        t.Errorf("expected a single replaced row, got %+v", got)
    }
}

func TestListEmpty(t *testing.T) {
    db := openTestDB(t)
    got, err := db.List(context.Background())
    if err != nil {
        t.Fatalf("List: %v", err)
    }
    if len(got) != 0 {
        t.Errorf("expected no runs, got %d", len(got))
    }
}
