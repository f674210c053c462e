package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the newsctl command tree
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "newsctl",
		Short:         "Query the HPA news API through the same dispatcher the Lambda uses",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newFetchCommand(defaultRunner))

	return cmd
}

// Execute executes the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
