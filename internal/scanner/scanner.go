// Package scanner enumerates the JSON source files of a directory.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/planmerge/planmerge/internal/errors"
)

// Extension is the suffix a file must carry to be considered a source
// document. Matching is case-sensitive, so "plan.JSON" is excluded.
const Extension = ".json"

// ListJSON returns the paths of every regular .json file directly inside dir,
// in lexicographic filename order. Subdirectories and files with other
// extensions are ignored. The lexicographic order is a stable contract:
// key-collision and concatenation semantics downstream depend on it.
func ListJSON(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("source directory '%s' not found", dir),
				errors.ErrSourceNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to access source directory '%s'", dir),
			err,
		)
	}
	if !info.IsDir() {
		return nil, errors.NewInputError(
			fmt.Sprintf("source path '%s' is not a directory", dir),
			errors.ErrNotADirectory,
		)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read source directory '%s'", dir),
			err,
		)
	}

	// os.ReadDir already sorts entries by filename.
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
