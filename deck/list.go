package deck

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry is a directory or deck file found by List.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Format  Format
	Size    int64
	ModTime time.Time
}

// List returns the subdirectories and deck files of dir. Hidden entries
// are skipped. Directories come first, then decks, each sorted by name.
func List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		e := Entry{Name: name, Path: filepath.Join(dir, name), IsDir: de.IsDir()}
		if !e.IsDir {
			format, err := FormatOf(name)
			if err != nil {
				continue
			}
			e.Format = format
		}
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
			e.ModTime = info.ModTime()
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
