package vocab

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed data/*.json
var lessonData embed.FS

// LoadEmbedded builds a catalog from the lesson files shipped with the
// binary.
func LoadEmbedded() (*Catalog, error) {
	return loadFS(lessonData, "data")
}

// LoadDir builds a catalog from a directory of lesson JSON files, one lesson
// per file. Used to replace the built-in dataset wholesale.
func LoadDir(dir string) (*Catalog, error) {
	return loadFS(os.DirFS(dir), ".")
}

func loadFS(fsys fs.FS, root string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("read lesson dir: %w", err)
	}

	var lessons []Lesson
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		var lesson Lesson
		if err := json.Unmarshal(data, &lesson); err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}
		lessons = append(lessons, lesson)
	}

	return NewCatalog(lessons)
}
