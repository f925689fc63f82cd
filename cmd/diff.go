package cmd

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/phoebusgraph/petgraph/pkg/introspection"
)

var diffCmd = &cobra.Command{
	Use:     "diff <schemaFile> <schemaFile>",
	Short:   "diff compares the type graphs of two schema files",
	Example: "petgraph diff schema.graphql other.graphql",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		left, err := loadSchema(args[:1])
		if err != nil {
			return err
		}
		right, err := loadSchema(args[1:])
		if err != nil {
			return err
		}

		var leftData, rightData introspection.Data
		generator := introspection.NewGenerator()
		generator.Generate(left.Document(), &leftData)
		generator.Generate(right.Document(), &rightData)

		diff := cmp.Diff(leftData, rightData)
		if diff == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "type graphs are identical")
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), diff)
		return fmt.Errorf("type graphs differ")
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
