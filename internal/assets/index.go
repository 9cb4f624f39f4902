package assets

import (
	"io/fs"
	"path/filepath"
)

// Index maps file basenames to full paths under one root.
type Index map[string]string

// BuildIndex walks root and records every file under its basename. The walk
// follows the natural directory-tree order; the first occurrence of a
// basename wins.
func BuildIndex(root string) (Index, error) {
	idx := make(Index)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if _, seen := idx[name]; !seen {
			idx[name] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}
