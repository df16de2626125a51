// Package pwgen produces new passwords from an external generator.
//
// Candidates whose first character is ASCII punctuation are thrown away and
// a new one is requested, since a leading symbol is easy to mangle when the
// password is pasted into a shell. There is deliberately no attempt limit:
// a generator that only ever emits such candidates makes Generate spin
// forever. Process failures are never retried.
package pwgen

import (
	"bytes"
	"context"

	"github.com/org/pw/internal/secmem"
	"github.com/rs/zerolog"
)

// Source yields one candidate password per call.
type Source interface {
	Candidate(ctx context.Context) ([]byte, error)
}

// Observer is notified of each attempt. metrics.Recorder implements it.
type Observer interface {
	GenerateAttempt()
	GenerateRejected()
}

// Generator applies the leading-character policy to a Source.
type Generator struct {
	src Source
	log zerolog.Logger
	obs Observer
}

// New creates a Generator. obs may be nil.
func New(src Source, log zerolog.Logger, obs Observer) *Generator {
	if obs == nil {
		obs = nopObserver{}
	}
	return &Generator{src: src, log: log, obs: obs}
}

// Generate returns the first acceptable candidate from the source.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		g.obs.GenerateAttempt()
		raw, err := g.src.Candidate(ctx)
		if err != nil {
			return nil, err
		}
		pw := bytes.TrimSpace(raw)
		if len(pw) == 0 {
			return nil, &Error{Program: "generator", Kind: KindProducedNothing}
		}
		if Acceptable(pw) {
			return pw, nil
		}

		g.obs.GenerateRejected()
		g.log.Debug().
			Int("attempt", attempt).
			Int("length", len(pw)).
			Str("leading", string(pw[:1])).
			Msg("password starts with a symbol, regenerating")
		secmem.Zero(raw)
	}
}

// Acceptable reports whether pw may be handed out.
func Acceptable(pw []byte) bool {
	return len(pw) > 0 && !isASCIIPunct(pw[0])
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') ||
		(c >= ':' && c <= '@') ||
		(c >= '[' && c <= '`') ||
		(c >= '{' && c <= '~')
}

type nopObserver struct{}

func (nopObserver) GenerateAttempt()  {}
func (nopObserver) GenerateRejected() {}
