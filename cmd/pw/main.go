package main

import (
	"context"
	"os"
	"time"

	"github.com/org/pw/internal/config"
	"github.com/org/pw/internal/metrics"
	"github.com/org/pw/internal/pwgen"
	"github.com/org/pw/internal/query"
	"github.com/org/pw/internal/render"
	"github.com/org/pw/internal/store"
	"github.com/org/pw/pkg/models"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cli carries the state shared by all subcommands of one invocation.
type cli struct {
	configPath string
	verbose    int

	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Recorder

	// newSource builds the password source for gen.
	newSource func(program string) pwgen.Source
}

func newCLI() *cli {
	return &cli{
		log:     zerolog.Nop(),
		metrics: metrics.New(),
		newSource: func(program string) pwgen.Source {
			return pwgen.NewCommand(program, pwgen.DefaultOptions())
		},
	}
}

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "pw",
		Short:         "Dumb password manager",
		Long:          "Look up and generate passwords kept in a plain-text password file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}
	root.PersistentFlags().CountVarP(&c.verbose, "verbose", "v", "Increase log verbosity (repeatable)")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default $HOME/.pw/config.yaml)")

	root.AddCommand(checkCmd(c), genCmd(c), getCmd(c), lsCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	path := c.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = newLogger(cmd.ErrOrStderr(), c.verbose, cfg.LogLevel)
	c.log.Debug().Str("config", path).Msg("configuration loaded")
	return nil
}

// run times fn and writes the metrics textfile when one is configured.
func (c *cli) run(name string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		err := fn(cmd, args)
		c.metrics.ObserveCommand(name, time.Since(start))
		if c.cfg != nil && c.cfg.MetricsFile != "" {
			if werr := c.metrics.WriteTextfile(c.cfg.MetricsFile); werr != nil {
				c.log.Warn().Err(werr).Str("file", c.cfg.MetricsFile).Msg("could not write metrics")
			}
		}
		return err
	}
}

// openStore resolves and loads the password file. The caller must Close it.
func (c *cli) openStore(explicit string) (*store.Buffer, error) {
	path, err := c.cfg.ResolveStore(explicit)
	if err != nil {
		return nil, err
	}
	c.log.Info().Str("path", path).Msg("found password file")
	return store.Load(path, c.log)
}

func (c *cli) closeStore(buf *store.Buffer) {
	if err := buf.Close(); err != nil {
		c.log.Debug().Err(err).Msg("could not unlock password file memory")
	}
}

// --- check ---

func checkCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Check and print password stats",
		Args:  cobra.MaximumNArgs(1),
		RunE: c.run("check", func(cmd *cobra.Command, args []string) error {
			buf, err := c.openStore(argAt(args, 0))
			if err != nil {
				return err
			}
			defer c.closeStore(buf)

			tally, err := query.Count(buf.Records())
			if err != nil {
				return err
			}
			c.metrics.ObserveTally(tally)
			printTally(cmd.OutOrStdout(), tally)
			return nil
		}),
	}
}

// --- gen ---

func genCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gen",
		Short: "Generate a password",
		Args:  cobra.NoArgs,
		RunE: c.run("gen", func(cmd *cobra.Command, args []string) error {
			gen := pwgen.New(c.newSource(c.cfg.Generator), c.log, c.metrics)
			pw, err := gen.Generate(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printSecretLine(cmd.OutOrStdout(), pw)
		}),
	}
}

// --- get ---

func getCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <account name> <format> [file]",
		Short: "Retrieve a password",
		Long: "Print the current entry whose name is exactly <account name>.\n\n" +
			"Format: %N = Name, %L = Link, %U = Username, %P = Password",
		Args: cobra.RangeArgs(2, 3),
		RunE: c.run("get", func(cmd *cobra.Command, args []string) error {
			buf, err := c.openStore(argAt(args, 2))
			if err != nil {
				return err
			}
			defer c.closeStore(buf)

			rec, err := query.Exact(buf.Records(), args[0])
			if err != nil {
				return err
			}
			return printSecretLine(cmd.OutOrStdout(), render.Format(args[1], rec))
		}),
	}
}

// --- ls ---

func lsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <query> [file]",
		Short: "Search for passwords",
		Args:  cobra.RangeArgs(1, 2),
		RunE: c.run("ls", func(cmd *cobra.Command, args []string) error {
			buf, err := c.openStore(argAt(args, 1))
			if err != nil {
				return err
			}
			defer c.closeStore(buf)

			out := cmd.OutOrStdout()
			return query.Search(buf.Records(), args[0], func(rec models.Record) error {
				return printSecretLine(out, render.Format(render.ListTemplate, rec))
			})
		}),
	}
}

// helpers

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
