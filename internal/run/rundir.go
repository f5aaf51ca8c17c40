package run

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "time"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/fscopy"
)

// ErrRunExists reports a collision with a pre-existing run directory. Two
// runs started within the same second collide; there is no retry.
var ErrRunExists = errors.New("run directory already exists")

// NewID returns the timestamp identity naming a run. Second resolution,
// lexicographically sortable.
func NewID(now time.Time) string {
    return now.Format("20060102_150405")
}

// Dirs is the filesystem namespace of one run.
type Dirs struct {
    Root    string
    Code    string
    Results string
}

// CreateRun creates <source>_[<id>] as a sibling of sourceDir together with
// its code and results subdirectories, then snapshots every entry of
// sourceDir into the run root, preserving structure. It fails before writing
// anything if the run root already exists.
func CreateRun(cfg *config.Config, sourceDir, id string) (*Dirs, error) {
    src, err := filepath.Abs(sourceDir)
    if err != nil { return nil, err }
    root := fmt.Sprintf("%s_[%s]", src, id)
    if err := os.Mkdir(root, 0o755); err != nil {
        if os.IsExist(err) { return nil, fmt.Errorf("%w: %s", ErrRunExists, root) }
        return nil, err
    }
    d := &Dirs{
        Root:    root,
        Code:    filepath.Join(root, cfg.CodeDirName),
        Results: filepath.Join(root, cfg.ResultsDirName),
    }
    if err := os.Mkdir(d.Code, 0o755); err != nil { return nil, err }
    if err := os.Mkdir(d.Results, 0o755); err != nil { return nil, err }

    entries, err := os.ReadDir(src)
    if err != nil { return nil, err }
    for _, e := range entries {
        if err := fscopy.CopyEntry(filepath.Join(src, e.Name()), filepath.Join(root, e.Name())); err != nil {
            return nil, err
        }
    }
    return d, nil
}
