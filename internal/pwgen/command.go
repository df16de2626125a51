package pwgen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Command runs an external pwgen-compatible program once per candidate.
type Command struct {
	Path    string
	Options Options

	newCmd func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewCommand returns a Command for the program at path.
func NewCommand(path string, opts Options) *Command {
	return &Command{Path: path, Options: opts, newCmd: exec.CommandContext}
}

// result is what one run of the program left behind.
type result struct {
	stdout, stderr       []byte
	stdoutErr, stderrErr error
	waitErr              error
}

// Candidate runs the program to completion and returns its trimmed output.
func (c *Command) Candidate(ctx context.Context) ([]byte, error) {
	cmd := c.newCmd(ctx, c.Path, c.Options.Args()...)
	cmd.Stdin = nil // os.DevNull

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, c.fail(KindSpawn, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, c.fail(KindSpawn, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, c.fail(KindSpawn, err)
	}

	// Both pipes are drained before Wait, which closes them.
	var res result
	var g errgroup.Group
	g.Go(func() error {
		res.stdout, res.stdoutErr = io.ReadAll(stdout)
		return res.stdoutErr
	})
	g.Go(func() error {
		res.stderr, res.stderrErr = io.ReadAll(stderr)
		return res.stderrErr
	})
	// Each pipe's read error is kept in res and classified below.
	_ = g.Wait()
	res.waitErr = cmd.Wait()

	return c.classify(res)
}

func (c *Command) classify(res result) ([]byte, error) {
	if res.waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(res.waitErr, &exitErr) {
			return nil, c.fail(KindWait, res.waitErr)
		}
		code := exitErr.ExitCode()
		if code < 0 {
			return nil, &Error{Program: c.program(), Kind: KindKilled, Err: res.waitErr}
		}
		if res.stderrErr != nil {
			return nil, &Error{Program: c.program(), Kind: KindStderrUnreadable, Code: code, Err: res.stderrErr}
		}
		return nil, &Error{
			Program: c.program(),
			Kind:    KindFailed,
			Code:    code,
			Message: strings.TrimSpace(string(res.stderr)),
		}
	}

	if res.stdoutErr != nil {
		return nil, c.fail(KindStdoutUnreadable, res.stdoutErr)
	}
	out := bytes.TrimSpace(res.stdout)
	if len(out) == 0 {
		return nil, c.fail(KindProducedNothing, nil)
	}
	return out, nil
}

func (c *Command) fail(kind Kind, err error) *Error {
	return &Error{Program: c.program(), Kind: kind, Err: err}
}

func (c *Command) program() string {
	return filepath.Base(c.Path)
}
