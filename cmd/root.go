// Package cmd holds the petgraph CLI commands.
package cmd

import (
	"os"

	log "github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phoebusgraph/petgraph/pkg/graphql"
)

var rootCmd = &cobra.Command{
	Use:   "petgraph",
	Short: "petgraph inspects the people/pets demo graph schema",
	Long: `petgraph treats the people/pets demo graph schema as a first-class
artifact: it prints the canonical SDL, checks structural conformance,
renders the introspection document and diffs schema type graphs.

Commands default to the embedded schema when no file argument is given.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logger() log.Logger {
	zapLogger, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		panic(err)
	}

	return log.NewZapLogger(zapLogger, log.InfoLevel)
}

// loadSchema loads the schema from the optional file argument, falling
// back to the embedded fixture.
func loadSchema(args []string) (*graphql.Schema, error) {
	if len(args) == 0 {
		return graphql.Default()
	}

	file, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return graphql.NewSchemaFromReader(file)
}
