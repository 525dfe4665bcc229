// Package cli implements the storefront command-line catalog browser.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/Lixing-Zhang/vape-store/pkg/logger"
)

type rootOptions struct {
	output   string
	logLevel string
}

// NewRootCommand builds the storefront command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the vape store catalog",
		Long:          `Query the storefront catalog with the same filters the catalog page offers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logger.NewWithWriter(cmd.ErrOrStderr(), opts.logLevel)
			log.Debug("running command", "command", cmd.Name(), "output", opts.output)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format: table, json, yaml")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newProductsCommand(opts),
		newFeaturedCommand(opts),
		newFiltersCommand(opts),
	)
	return cmd
}
