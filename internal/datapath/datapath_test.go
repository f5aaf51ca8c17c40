package datapath

import (
    "os"
    "path/filepath"
    "testing"
)

func writeDataPaths(t *testing.T, dir, content string) {
    t.Helper()
    if err := os.WriteFile(filepath.Join(dir, "datapaths.txt"), []byte(content), 0o644); err != nil {
        t.Fatal(err)
    }
}

func TestLoadMixedValidity(t *testing.T) {
    dir := t.TempDir()
    valid := t.TempDir()
    writeDataPaths(t, dir,
        "images="+valid+"\n"+
            "missing=/definitely/not/here\n"+
            "not a mapping line\n"+
            "\n")

    reg, err := Load(dir, "datapaths.txt")
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if reg.Len() != 1 {
        t.Fatalf("expected 1 entry, got %d", reg.Len())
    }
    p, ok := reg.Get("images")
    if !ok {
        t.Fatal("expected images key")
    }
    if !filepath.IsAbs(p) {
        t.Errorf("expected absolute path, got %q", p)
    }
    if _, ok := reg.Get("missing"); ok {
        t.Error("missing path should be dropped")
    }
}

func TestLoadValueMayContainEquals(t *testing.T) {
    dir := t.TempDir()
    weird := filepath.Join(t.TempDir(), "a=b")
    if err := os.Mkdir(weird, 0o755); err != nil {
        t.Fatal(err)
    }
    writeDataPaths(t, dir, "odd="+weird+"\n")

    reg, err := Load(dir, "datapaths.txt")
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if p, ok := reg.Get("odd"); !ok || p != weird {
        t.Errorf("split must be on the first '=' only, got %q ok=%v", p, ok)
    }
}

func TestLoadMissingFileYieldsEmptyRegistry(t *testing.T) {
    reg, err := Load(t.TempDir(), "datapaths.txt")
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if reg.Len() != 0 {
        t.Errorf("expected empty registry, got %d entries", reg.Len())
    }
}

func TestLoadIsIdempotent(t *testing.T) {
    dir := t.TempDir()
    valid := t.TempDir()
    writeDataPaths(t, dir, "k="+valid+"\n")

    first, err := Load(dir, "datapaths.txt")
    if err != nil {
        t.Fatal(err)
    }
    second, err := Load(dir, "datapaths.txt")
    if err != nil {
        t.Fatal(err)
    }
    if first.Len() != second.Len() {
        t.Fatalf("sizes differ: %d vs %d", first.Len(), second.Len())
    }
    p1, _ := first.Get("k")
    p2, _ := second.Get("k")
    if p1 != p2 {
        t.Errorf("repeated load changed result: %q vs %q", p1, p2)
    }
}
