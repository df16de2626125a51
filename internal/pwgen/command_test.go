package pwgen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// helperCommand re-runs the test binary as a fake pwgen in the given mode.
func helperCommand(mode string, env ...string) func(context.Context, string, ...string) *exec.Cmd {
	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", mode}, args...)
		cmd := exec.CommandContext(ctx, os.Args[0], cs...)
		cmd.Env = append(append(os.Environ(), "GO_WANT_HELPER_PROCESS=1"), env...)
		return cmd
	}
}

func newHelper(mode string, env ...string) *Command {
	c := NewCommand("/usr/bin/pwgen", DefaultOptions())
	c.newCmd = helperCommand(mode, env...)
	return c
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	mode, rest := args[1], args[2:]

	switch mode {
	case "ok":
		fmt.Println("Xq7vR2mKp9")
	case "args":
		fmt.Println(strings.Join(rest, " "))
	case "empty":
	case "blank":
		fmt.Println("   ")
	case "exit":
		os.Exit(3)
	case "exit-msg":
		fmt.Fprintln(os.Stderr, "  pwgen: invalid option  ")
		os.Exit(2)
	case "exit-with-stdout":
		fmt.Println("Xq7vR2mKp9")
		os.Exit(1)
	case "kill":
		p, _ := os.FindProcess(os.Getpid())
		p.Kill() //nolint:errcheck
		time.Sleep(time.Minute)
	case "sequence":
		// Emits a punctuation-led candidate until the state file counts to 2.
		state := os.Getenv("PW_HELPER_STATE")
		data, _ := os.ReadFile(state)
		n, _ := strconv.Atoi(string(data))
		os.WriteFile(state, []byte(strconv.Itoa(n+1)), 0o600) //nolint:errcheck
		if n < 2 {
			fmt.Println("%leading-symbol")
		} else {
			fmt.Println("Kgood-one")
		}
	}
}

func TestCommandCandidate(t *testing.T) {
	out, err := newHelper("ok").Candidate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Xq7vR2mKp9", string(out))
}

func TestCommandPassesOptions(t *testing.T) {
	out, err := newHelper("args").Candidate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "-c -n -y -s -B -1 34 1", string(out))
}

func TestCommandFailures(t *testing.T) {
	cases := []struct {
		mode string
		kind Kind
		msg  string
	}{
		{"empty", KindProducedNothing, "pwgen succeeded but did not generate anything"},
		{"blank", KindProducedNothing, "pwgen succeeded but did not generate anything"},
		{"exit", KindFailed, "pwgen failed with exit code 3"},
		{"exit-msg", KindFailed, "pwgen failed (exit code 2): pwgen: invalid option"},
		{"exit-with-stdout", KindFailed, "pwgen failed with exit code 1"},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			_, err := newHelper(tc.mode).Candidate(context.Background())
			require.Error(t, err)
			assert.Equal(t, tc.kind, KindOf(err))
			assert.EqualError(t, err, tc.msg)
		})
	}
}

func TestCommandKilled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no signal exit status on windows")
	}
	_, err := newHelper("kill").Candidate(context.Background())
	assert.Equal(t, KindKilled, KindOf(err))
	assert.EqualError(t, err, "pwgen died from a signal")
}

func TestCommandSpawnFailure(t *testing.T) {
	c := NewCommand(filepath.Join(t.TempDir(), "no-such-pwgen"), DefaultOptions())
	_, err := c.Candidate(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindSpawn, KindOf(err))
	assert.True(t, strings.HasPrefix(err.Error(), "could not run no-such-pwgen: "))
}

func TestClassifyUnreadablePipes(t *testing.T) {
	c := NewCommand("pwgen", DefaultOptions())
	readErr := errors.New("read |0: file already closed")

	_, err := c.classify(result{stdout: []byte("Xabc\n"), stdoutErr: readErr})
	assert.Equal(t, KindStdoutUnreadable, KindOf(err))
	assert.ErrorIs(t, err, readErr)

	_, err = c.classify(result{waitErr: errors.New("wait: no child processes")})
	assert.Equal(t, KindWait, KindOf(err))
}

func TestClassifyStderrUnreadable(t *testing.T) {
	// A real *exec.ExitError is needed for the exit code.
	cmd := exec.Command(os.Args[0], "-test.run=TestHelperProcess", "--", "exit")
	cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")
	runErr := cmd.Run()
	require.Error(t, runErr)

	readErr := errors.New("bad read")
	c := NewCommand("pwgen", DefaultOptions())
	_, err := c.classify(result{waitErr: runErr, stderrErr: readErr})
	require.Equal(t, KindStderrUnreadable, KindOf(err))
	assert.EqualError(t, err, "pwgen failed (exit code 3) but could not read its error message: bad read")
}

func TestGenerateWithCommand(t *testing.T) {
	state := filepath.Join(t.TempDir(), "count")
	obs := &counter{}
	g := New(newHelper("sequence", "PW_HELPER_STATE="+state), zerolog.Nop(), obs)

	pw, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Kgood-one", string(pw))
	assert.Equal(t, &counter{attempts: 3, rejected: 2}, obs)
}
