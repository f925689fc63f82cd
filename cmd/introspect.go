package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/phoebusgraph/petgraph/pkg/introspection"
)

var introspectIndent string

var introspectCmd = &cobra.Command{
	Use:     "introspect [schemaFile]",
	Short:   "introspect renders the schema's introspection document as JSON",
	Example: "petgraph introspect schema.graphql",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema(args)
		if err != nil {
			return err
		}

		var data introspection.Data
		introspection.NewGenerator().Generate(schema.Document(), &data)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", introspectIndent)
		return encoder.Encode(data)
	},
}

func init() {
	introspectCmd.Flags().StringVar(&introspectIndent, "indent", "  ", "indentation for the JSON output")
	rootCmd.AddCommand(introspectCmd)
}
