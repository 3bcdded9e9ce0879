// Package csvio reads closeness tables: header-less CSV rows of
// "name,name,weight".
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/buddies/core"
)

// FieldsPerRow is the record arity.
const FieldsPerRow = 3

// ErrOpen wraps file-system failures of ReadFile.
var ErrOpen = errors.New("csvio: cannot open input")

// Options tunes ReadEdges.
type Options struct {
	// SkipMalformed drops rows whose field count is not FieldsPerRow
	// instead of failing. Bad names or weights still fail.
	SkipMalformed bool
}

// ReadEdges parses every record of r.
//
// Fields are whitespace-trimmed and the weight is parsed as a float64.
// Blank lines are ignored. Errors are *core.MalformedInputError with the
// 1-based record number, so errors.Is(err, core.ErrMalformedInput) holds.
func ReadEdges(r io.Reader, opts Options) ([]core.Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		out []core.Edge
		row int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			return nil, &core.MalformedInputError{Row: row, Reason: "unreadable CSV", Err: err}
		}
		if len(rec) != FieldsPerRow {
			if opts.SkipMalformed {
				continue
			}
			return nil, &core.MalformedInputError{
				Row:    row,
				Reason: fmt.Sprintf("want %d fields, got %d", FieldsPerRow, len(rec)),
			}
		}

		w, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			return nil, &core.MalformedInputError{Row: row, Reason: "bad weight", Err: err}
		}
		e := core.Edge{
			From:   strings.TrimSpace(rec[0]),
			To:     strings.TrimSpace(rec[1]),
			Weight: w,
		}
		if err = core.ValidateEdge(row, e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}

// ReadFile opens path and calls ReadEdges.
func ReadFile(path string, opts Options) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	return ReadEdges(f, opts)
}
