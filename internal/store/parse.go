// Package store reads and parses the flat-text password file.
//
// Each non-blank line that does not start with '#' is an entry:
//
//	MARKER NAME LINK USERNAME PASSWORD [ignored...]
//
// where MARKER is '+' (current), '-' (inactive) or '*' (needs changing).
package store

import (
	"bytes"
	"iter"

	"github.com/org/pw/pkg/models"
)

// missingField is indexed by the number of tokens present on a short line.
var missingField = [...]error{
	1: ErrMissingName,
	2: ErrMissingLink,
	3: ErrMissingUsername,
	4: ErrMissingPassword,
}

// Parse returns the entries of data in file order. Iteration stops after
// the first malformed entry, which is yielded as a *ParseError.
// Record fields alias data; nothing is copied.
func Parse(data []byte) iter.Seq2[models.Record, error] {
	return func(yield func(models.Record, error) bool) {
		num := 0
		rest := data
		for len(rest) > 0 {
			var line []byte
			if i := bytes.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
			} else {
				line, rest = rest, nil
			}
			num++

			line = bytes.TrimSpace(line)
			if len(line) == 0 || line[0] == '#' {
				continue
			}
			rec, err := parseLine(num, line)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func parseLine(num int, line []byte) (models.Record, error) {
	fields := bytes.Fields(line)
	if len(fields) == 0 {
		return models.Record{}, &ParseError{Line: num, Kind: ErrMissingMarker}
	}
	status, ok := models.ParseStatus(string(fields[0]))
	if !ok {
		return models.Record{}, &ParseError{Line: num, Kind: ErrInvalidMarker, Marker: string(fields[0])}
	}
	if len(fields) < 5 {
		return models.Record{}, &ParseError{Line: num, Kind: missingField[len(fields)]}
	}
	return models.Record{
		Line:     num,
		Status:   status,
		Name:     fields[1],
		Link:     fields[2],
		Username: fields[3],
		Secret:   fields[4],
	}, nil
}
