package teesink

import (
    "io"
    "os"
    "path/filepath"

    "github.com/rs/zerolog/log"
)

type syncer interface{ Sync() error }

// MultiSink fans each write out to every underlying sink. A failing sink is
// reported and skipped; the write as a whole never fails, so one broken sink
// cannot starve the others. Sinks that support it are flushed after every
// write.
type MultiSink struct {
    sinks []io.Writer
}

func New(sinks ...io.Writer) *MultiSink {
    return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Write(p []byte) (int, error) {
    for _, s := range m.sinks {
        if _, err := s.Write(p); err != nil {
            log.Warn().Err(err).Msg("output sink write failed")
            continue
        }
        if f, ok := s.(syncer); ok { _ = f.Sync() }
    }
    return len(p), nil
}

// Tee holds the state of an embedded-mode output redirection. It stays active
// until process exit; there is no corresponding end call.
type Tee struct {
    LogPath string
    origOut *os.File
    origErr *os.File
}

// Begin redirects the current process's stdout and stderr so that every
// subsequent write lands on both the original stream and the captured-output
// file in resultsDir. The log file is flushed after every write, so output is
// observable externally even if the process is interrupted.
func Begin(resultsDir, name string) (*Tee, error) {
    logPath := filepath.Join(resultsDir, name)
    logf, err := os.Create(logPath)
    if err != nil { return nil, err }
    pr, pw, err := os.Pipe()
    if err != nil {
        logf.Close()
        return nil, err
    }
    t := &Tee{LogPath: logPath, origOut: os.Stdout, origErr: os.Stderr}
    os.Stdout = pw
    os.Stderr = pw
    sink := New(t.origOut, logf)
    go func() {
        buf := make([]byte, 4096)
        for {
            n, rerr := pr.Read(buf)
            if n > 0 { _, _ = sink.Write(buf[:n]) }
            if rerr != nil { return }
        }
    }()
    return t, nil
}
