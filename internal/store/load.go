package store

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"unicode/utf8"

	"github.com/org/pw/internal/secmem"
	"github.com/org/pw/pkg/models"
	"github.com/rs/zerolog"
)

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Buffer holds the raw contents of a password file. Records parsed from it
// alias its memory, so they must not be used after Close.
type Buffer struct {
	data   []byte
	locked bool
}

// Load reads the whole password file at path. The file must be UTF-8.
func Load(path string, log zerolog.Logger) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.Valid(data) {
		secmem.Zero(data)
		return nil, fmt.Errorf("%w: %w", ErrRead, errInvalidUTF8)
	}
	log.Debug().Int("bytes", len(data)).Msg("password file loaded")
	return newBuffer(data, log), nil
}

// newBuffer takes ownership of data. The slice is zeroed on Close.
func newBuffer(data []byte, log zerolog.Logger) *Buffer {
	b := &Buffer{data: data}
	if err := secmem.Lock(data); err != nil {
		log.Debug().Err(err).Msg("could not lock password file in memory")
	} else {
		b.locked = len(data) > 0
	}
	return b
}

// Records parses the buffer. It may be ranged over more than once.
func (b *Buffer) Records() iter.Seq2[models.Record, error] {
	return Parse(b.data)
}

// Close wipes the buffer and releases its memory lock.
func (b *Buffer) Close() error {
	secmem.Zero(b.data)
	var err error
	if b.locked {
		err = secmem.Unlock(b.data)
		b.locked = false
	}
	b.data = nil
	return err
}
