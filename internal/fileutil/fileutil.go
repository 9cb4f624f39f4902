// Package fileutil provides the small file operations asset staging relies
// on.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CopyFile streams src to dst with default permissions (0o644), creating
// dst's directory as needed.
func CopyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// CopyIfMissing copies src to dst unless dst already exists. Staged assets
// are static, so an existing destination is always current and re-copying is
// skipped.
func CopyIfMissing(src, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", dst, err)
	}
	return CopyFile(src, dst)
}
