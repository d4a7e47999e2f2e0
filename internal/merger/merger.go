// Package merger implements the key-union aggregation policy: every
// object-shaped source document contributes its top-level keys to a single
// merged object, with later files overwriting earlier ones on collision, and
// array-shaped documents are concatenated under a reserved list key.
package merger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/qjebbs/go-jsons"

	"github.com/planmerge/planmerge/internal/errors"
	"github.com/planmerge/planmerge/internal/models"
	"github.com/planmerge/planmerge/internal/parser"
	"github.com/planmerge/planmerge/internal/scanner"
	"github.com/planmerge/planmerge/internal/writer"
)

// DefaultListKey is the accumulator key collecting elements of array-shaped
// source documents.
const DefaultListKey = "merged_list"

// KeyCase names an optional rewrite applied to the top-level keys of the
// merged object.
type KeyCase string

const (
	KeyCaseNone  KeyCase = ""
	KeyCaseSnake KeyCase = "snake"
	KeyCaseCamel KeyCase = "camel"
	KeyCaseKebab KeyCase = "kebab"
)

// Options configures a key-union run.
type Options struct {
	SourceDir  string
	OutputPath string
	ListKey    string // defaults to DefaultListKey when empty
	Deep       bool   // recursively merge nested objects instead of overwriting top-level keys
	KeyCase    KeyCase
}

// Summary reports what a run did.
type Summary struct {
	Merged  int // files parsed and folded into the accumulator
	Skipped int // files skipped because of invalid JSON
	Output  string
}

// Merger accumulates source documents into a single object.
type Merger struct {
	opts    Options
	acc     models.JSONObject
	list    models.JSONArray
	hasList bool
	raw     [][]byte // raw object documents, retained only in deep mode
}

// New creates an empty accumulator for the given options.
func New(opts Options) *Merger {
	if opts.ListKey == "" {
		opts.ListKey = DefaultListKey
	}
	return &Merger{
		opts: opts,
		acc:  models.JSONObject{},
		list: models.JSONArray{},
	}
}

// Add parses one source document and folds it into the accumulator.
// Objects merge by top-level key (last caller wins), arrays extend the
// reserved list. A document whose root is any other JSON type (string,
// number, boolean, null) is dropped without a diagnostic, matching the
// historical behavior of the merge script.
func (m *Merger) Add(data []byte) error {
	value, err := parser.ParseBytes(data)
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case models.JSONObject:
		if m.opts.Deep {
			m.raw = append(m.raw, data)
			return nil
		}
		for key, val := range v {
			m.acc[m.renameKey(key)] = val
		}
	case models.JSONArray:
		// The reserved key materializes on the first array-shaped file,
		// even an empty one.
		m.hasList = true
		m.list = append(m.list, v...)
	}
	return nil
}

// Result finalizes and returns the merged object. In deep mode the retained
// object documents are merged recursively here; the reserved list key is
// attached last, so a colliding source key is overwritten by the list.
func (m *Merger) Result() (models.JSONObject, error) {
	out := m.acc
	if m.opts.Deep && len(m.raw) > 0 {
		merged, err := jsons.Merge(m.raw)
		if err != nil {
			return nil, errors.NewMergeError("failed to deep-merge documents", err)
		}
		value, err := parser.ParseBytes(merged)
		if err != nil {
			return nil, errors.NewMergeError("deep merge produced invalid JSON", err)
		}
		obj, ok := value.(models.JSONObject)
		if !ok {
			return nil, errors.NewMergeError(fmt.Sprintf("deep merge produced %T, expected an object", value), nil)
		}
		out = make(models.JSONObject, len(obj))
		for key, val := range obj {
			out[m.renameKey(key)] = val
		}
	}
	if m.hasList {
		out[m.opts.ListKey] = m.list
	}
	return out, nil
}

// renameKey applies the configured key-case rewrite to a top-level key.
func (m *Merger) renameKey(key string) string {
	switch m.opts.KeyCase {
	case KeyCaseSnake:
		return strcase.ToSnake(key)
	case KeyCaseCamel:
		return strcase.ToLowerCamel(key)
	case KeyCaseKebab:
		return strcase.ToKebab(key)
	}
	return key
}

// MergeDir runs the key-union aggregation over every .json file in the
// source directory, in lexicographic filename order, and writes the merged
// object to the destination path. Malformed files get a one-line diagnostic
// on warn and are skipped; any other failure aborts the run before the
// output file is touched.
func MergeDir(opts Options, warn io.Writer) (Summary, error) {
	switch opts.KeyCase {
	case KeyCaseNone, KeyCaseSnake, KeyCaseCamel, KeyCaseKebab:
	default:
		return Summary{}, errors.NewInputError(
			fmt.Sprintf("unsupported key case '%s' (want snake, camel or kebab)", opts.KeyCase),
			nil,
		)
	}

	paths, err := scanner.ListJSON(opts.SourceDir)
	if err != nil {
		return Summary{}, err
	}

	m := New(opts)
	summary := Summary{Output: opts.OutputPath}
	for _, path := range paths {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return Summary{}, errors.NewInputError(
				fmt.Sprintf("failed to read file '%s'", path),
				err,
			)
		}
		if err := m.Add(data); err != nil {
			if errors.IsParsing(err) {
				fmt.Fprintf(warn, "Skipping %s, invalid JSON: %v\n", name, err)
				summary.Skipped++
				continue
			}
			return Summary{}, err
		}
		summary.Merged++
	}

	result, err := m.Result()
	if err != nil {
		return Summary{}, err
	}
	if err := writer.WriteJSON(opts.OutputPath, result); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
