package cmd

import (
	"fmt"

	log "github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"

	"github.com/phoebusgraph/petgraph/pkg/schemavalidation"
)

var validateCmd = &cobra.Command{
	Use:     "validate [schemaFile]",
	Short:   "validate checks a schema against the people/pets contract",
	Example: "petgraph validate schema.graphql",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema(args)
		if err != nil {
			return err
		}

		logger := logger()

		violations := 0
		validator := schemavalidation.DefaultDefinitionValidator()
		for _, result := range validator.Validate(schema.Document()) {
			if result.ValidationState == schemavalidation.Valid {
				logger.Debug("rule satisfied", log.String("rule", result.RuleName))
				continue
			}
			violations++
			logger.Error("rule violated",
				log.String("rule", result.RuleName),
				log.String("explanation", result.Explanation),
			)
		}

		if violations != 0 {
			return fmt.Errorf("schema does not conform: %d rule(s) violated", violations)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "schema conforms")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
