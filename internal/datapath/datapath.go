package datapath

import (
    "os"
    "path/filepath"
    "strings"

    "github.com/rs/zerolog/log"
)

// Registry maps logical keys to verified absolute data paths. It is an
// explicit value handed to whoever needs it rather than process-global state.
type Registry struct {
    paths map[string]string
}

// Load parses the datapaths file in sourceDir (key=path per line, split on
// the first '=' only) and builds a registry from scratch; calling it again
// replaces the previous result entirely. Lines without '=' are ignored. Keys
// whose path does not exist are dropped with a warning. Surviving paths are
// made absolute. A missing file yields an empty registry.
func Load(sourceDir, fileName string) (*Registry, error) {
    reg := &Registry{paths: map[string]string{}}
    b, err := os.ReadFile(filepath.Join(sourceDir, fileName))
    if err != nil {
        if os.IsNotExist(err) { return reg, nil }
        return nil, err
    }
    for _, line := range strings.Split(string(b), "\n") {
        line = strings.TrimSpace(line)
        if line == "" { continue }
        key, path, ok := strings.Cut(line, "=")
        if !ok { continue }
        if _, err := os.Stat(path); err != nil {
            log.Warn().Str("key", key).Str("path", path).Msg("data path does not exist")
            continue
        }
        abs, err := filepath.Abs(path)
        if err != nil { return nil, err }
        reg.paths[key] = abs
    }
    return reg, nil
}

// Get returns the absolute path registered under key.
func (r *Registry) Get(key string) (string, bool) {
    p, ok := r.paths[key]
    return p, ok
}

func (r *Registry) Len() int { return len(r.paths) }
