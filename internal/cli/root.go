// Package cli implements the sqbgen command line.
package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxshaw/sqb/catalog"
	"github.com/maxshaw/sqb/gen"
	"github.com/maxshaw/sqb/internal/logging"
)

type options struct {
	logLevel string
	pretty   bool
	catalog  string
}

func (o *options) logger(cmd *cobra.Command, component string) zerolog.Logger {
	return logging.NewWithComponent(logging.Config{
		Level:  o.logLevel,
		Pretty: o.pretty,
		Output: cmd.ErrOrStderr(),
	}, component)
}

// NewRootCmd builds the sqbgen command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "sqbgen",
		Short: "Render and generate SQL from a query catalog",
		Long: `sqbgen reads a YAML catalog of select statements.

Use "generate" to write a Go file with one constant per statement and
"render" to print a single statement.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := logging.DefaultConfig()
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaults.Level, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", defaults.Pretty, "human-readable log output")
	root.PersistentFlags().StringVarP(&opts.catalog, "catalog", "c", "queries.yaml", "path of the query catalog")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newRenderCmd(opts))

	return root
}

func newGenerateCmd(opts *options) *cobra.Command {
	var out, pkg string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go constants for every query in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return gen.Gen(gen.Config{
				Catalog: opts.catalog,
				Output:  out,
				Package: pkg,
				Logger:  opts.logger(cmd, "generate"),
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "queries_gen.go", "output file")
	cmd.Flags().StringVarP(&pkg, "package", "p", "queries", "package of the generated file")

	return cmd
}

func newRenderCmd(opts *options) *cobra.Command {
	var count, unpaged bool

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Print the SQL of one query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count && unpaged {
				return errors.New("--count and --unpaged are mutually exclusive")
			}

			logger := opts.logger(cmd, "render")

			c, err := catalog.Load(opts.catalog)
			if err != nil {
				return err
			}

			b, err := c.Builder(args[0])
			if err != nil {
				return err
			}

			sql := b.Build()
			switch {
			case count:
				sql = b.BuildCount()
			case unpaged:
				sql = b.BuildUnpaged()
			}

			logger.Debug().Str("query", args[0]).Msg("Rendered query")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), sql)
			return err
		},
	}

	cmd.Flags().BoolVar(&count, "count", false, "render the count statement")
	cmd.Flags().BoolVar(&unpaged, "unpaged", false, "render without limit and offset")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
