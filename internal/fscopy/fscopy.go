package fscopy

import (
    "io"
    "io/fs"
    "os"
    "path/filepath"
)

// CopyFile copies src to dst, replacing dst if it exists and preserving the
// source file's mode.
func CopyFile(src, dst string) error {
    in, err := os.Open(src)
    if err != nil { return err }
    defer in.Close()
    info, err := in.Stat()
    if err != nil { return err }
    out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
    if err != nil { return err }
    if _, err := io.Copy(out, in); err != nil {
        out.Close()
        return err
    }
    return out.Close()
}

// CopyTree recursively copies the directory src into dst, merging into any
// pre-existing directory structure. Files at matching relative paths are
// replaced.
func CopyTree(src, dst string) error {
    return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
        if err != nil { return err }
        rel, err := filepath.Rel(src, path)
        if err != nil { return err }
        target := filepath.Join(dst, rel)
        if d.IsDir() {
            return os.MkdirAll(target, 0o755)
        }
        return CopyFile(path, target)
    })
}

// CopyEntry copies a file or directory tree, dispatching on the source kind.
func CopyEntry(src, dst string) error {
    info, err := os.Stat(src)
    if err != nil { return err }
    if info.IsDir() { return CopyTree(src, dst) }
    return CopyFile(src, dst)
}
