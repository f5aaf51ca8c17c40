package run

import (
    "encoding/json"
    "os"
    "time"
)

const metaFileName = "run.meta.json"

type runMeta struct {
    RunID       string    `json:"run_id"`
    GeneratedAt time.Time `json:"generated_at"`
    SourceDir   string    `json:"source_dir"`
    Entry       string    `json:"entry,omitempty"`
    ExitCode    *int      `json:"exit_code,omitempty"`
    Mode        string    `json:"mode"`
}

func writeMeta(path string, m runMeta) error {
    b, _ := json.MarshalIndent(m, "", "  ")
    return os.WriteFile(path, b, 0o644)
}
