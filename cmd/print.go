package cmd

import (
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:     "print [schemaFile]",
	Short:   "print writes the canonical SDL to std out",
	Example: "petgraph print\npetgraph print schema.graphql > formatted.graphql",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema(args)
		if err != nil {
			return err
		}

		return schema.Format(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
