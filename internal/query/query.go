// Package query selects entries from a parsed password file.
package query

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	"github.com/org/pw/pkg/models"
)

var (
	// ErrNoMatches is returned by Exact when no current entry has the name.
	ErrNoMatches = errors.New("no matches found")
	// ErrAmbiguous is returned by Exact when several current entries share the name.
	ErrAmbiguous = errors.New("found more than 1 match")
)

// Error reports a failed lookup for Query.
type Error struct {
	Query string
	Kind  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v for %s", e.Kind, e.Query)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Exact returns the single current entry whose name equals name byte for
// byte. Parse errors from records are returned as is.
func Exact(records iter.Seq2[models.Record, error], name string) (models.Record, error) {
	var (
		match models.Record
		found bool
	)
	want := []byte(name)
	for rec, err := range records {
		if err != nil {
			return models.Record{}, err
		}
		if rec.Status != models.Active || !bytes.Equal(rec.Name, want) {
			continue
		}
		if found {
			return models.Record{}, &Error{Query: name, Kind: ErrAmbiguous}
		}
		match, found = rec, true
	}
	if !found {
		return models.Record{}, &Error{Query: name, Kind: ErrNoMatches}
	}
	return match, nil
}

// Search calls fn, in file order, for every current entry whose name
// contains q ignoring case. An empty q matches every current entry.
func Search(records iter.Seq2[models.Record, error], q string, fn func(models.Record) error) error {
	needle := bytes.ToLower([]byte(q))
	for rec, err := range records {
		if err != nil {
			return err
		}
		if rec.Status != models.Active {
			continue
		}
		if !bytes.Contains(bytes.ToLower(rec.Name), needle) {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// Count tallies every entry by status.
func Count(records iter.Seq2[models.Record, error]) (models.Tally, error) {
	var t models.Tally
	for rec, err := range records {
		if err != nil {
			return models.Tally{}, err
		}
		t.Add(rec.Status)
	}
	return t, nil
}
