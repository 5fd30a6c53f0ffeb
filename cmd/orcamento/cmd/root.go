// Package cmd provides the commands of the orcamento CLI.
package cmd

import (
	"orcamentos_arq/internal/domain/pricing"
	"orcamentos_arq/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	tablesFile string
	logLevel   string
}

// NewRootCmd builds the command tree. Output goes to cmd.OutOrStdout, logs to stderr.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "orcamento",
		Short: "Price architecture and interior-design quotes",
		Long: `orcamento prices quotes with the same calculator used by the API.

Examples:
  orcamento calc --file request.json
  orcamento calc --tables tables.yaml < request.yaml
  orcamento tables > tables.yaml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.tablesFile, "tables", "t", "", "pricing tables YAML file (default: built-in tables)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(newCalcCmd(opts))
	root.AddCommand(newTablesCmd(opts))
	return root
}

func (o *rootOptions) logger() *zap.Logger {
	return logger.NewStderr(o.logLevel)
}

func (o *rootOptions) loadTables() (pricing.Tables, error) {
	return pricing.LoadTables(o.tablesFile)
}
