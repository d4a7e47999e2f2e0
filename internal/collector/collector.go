// Package collector implements the list-collection aggregation policy: every
// parseable source document, whatever its JSON type, becomes one element of a
// single output array.
package collector

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/planmerge/planmerge/internal/errors"
	"github.com/planmerge/planmerge/internal/models"
	"github.com/planmerge/planmerge/internal/parser"
	"github.com/planmerge/planmerge/internal/scanner"
	"github.com/planmerge/planmerge/internal/writer"
)

// Options configures a collection run.
type Options struct {
	SourceDir  string
	OutputPath string
}

// Summary reports what a run did. Merged counts successfully parsed files,
// not directory entries scanned.
type Summary struct {
	Merged  int
	Skipped int
	Output  string
}

// CollectDir gathers every .json document in the source directory, in
// lexicographic filename order, into one array and writes it to the
// destination path. Malformed files get a one-line diagnostic on warn and
// are skipped.
func CollectDir(opts Options, warn io.Writer) (Summary, error) {
	paths, err := scanner.ListJSON(opts.SourceDir)
	if err != nil {
		return Summary{}, err
	}

	all := models.JSONArray{}
	summary := Summary{Output: opts.OutputPath}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return Summary{}, errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", path),
				err,
			)
		}
		value, err := parser.ParseBytes(data)
		if err != nil {
			fmt.Fprintf(warn, "Error in %s: %v\n", filepath.Base(path), err)
			summary.Skipped++
			continue
		}
		all = append(all, value)
		summary.Merged++
	}

	if err := writer.WriteJSON(opts.OutputPath, all); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
