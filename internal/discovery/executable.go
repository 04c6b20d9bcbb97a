package discovery

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// findExecutable returns the first file under dir, in lexical walk order,
// whose extension is in exts. Unreadable subdirectories are skipped and the
// walk stops when ctx is cancelled.
func findExecutable(ctx context.Context, dir string, exts []string) (string, bool) {
	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == dir {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if hasExt(path, exts) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil || found == "" {
		return "", false
	}
	return found, true
}

// hasExt reports whether path ends in one of exts, ignoring case.
func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// resolvePath picks the executable inside installDir, falling back to the
// directory itself when none exists. ok is false when installDir is missing.
func resolvePath(ctx context.Context, installDir string, exts []string) (string, bool) {
	if !isDir(installDir) {
		return "", false
	}
	if exe, ok := findExecutable(ctx, installDir, exts); ok {
		return exe, true
	}
	if ctx.Err() != nil {
		return "", false
	}
	return installDir, true
}
