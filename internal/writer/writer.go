// Package writer serializes aggregation results to disk.
package writer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/planmerge/planmerge/internal/errors"
)

// WriteJSON writes value to path as 2-space-indented JSON, truncating any
// existing file. HTML escaping is disabled so string content round-trips
// unchanged.
func WriteJSON(path string, value interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewOutputError(
			fmt.Sprintf("failed to create output file '%s'", path),
			err,
		)
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		_ = file.Close()
		return errors.NewOutputError(
			fmt.Sprintf("failed to encode JSON to '%s'", path),
			err,
		)
	}

	if err := file.Close(); err != nil {
		return errors.NewOutputError(
			fmt.Sprintf("failed to close output file '%s'", path),
			err,
		)
	}
	return nil
}
