package cmd

import "github.com/spf13/cobra"

// newVersionCmd creates the version subcommand.
func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the nbquality version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("nbquality %s\n", version)
		},
	}
}
