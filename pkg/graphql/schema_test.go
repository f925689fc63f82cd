package graphql

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jensneuse/diffview"
	"github.com/sebdah/goldie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phoebusgraph/petgraph/pkg/introspection"
)

func TestNewSchemaFromReader(t *testing.T) {
	t.Run("should return error when the input is no SDL", func(t *testing.T) {
		schemaBytes := []byte("query: Query")
		schemaReader := bytes.NewBuffer(schemaBytes)
		schema, err := NewSchemaFromReader(schemaReader)

		assert.Error(t, err)
		assert.Nil(t, schema)
	})

	t.Run("should successfully read from io.Reader", func(t *testing.T) {
		schemaBytes := []byte("type Query { hello: String }")
		schemaReader := bytes.NewBuffer(schemaBytes)
		schema, err := NewSchemaFromReader(schemaReader)

		assert.NoError(t, err)
		assert.Equal(t, schemaBytes, schema.rawInput)
	})
}

func TestNewSchemaFromString(t *testing.T) {
	t.Run("should return error when a type is undefined", func(t *testing.T) {
		schema, err := NewSchemaFromString("type Query { hello: Missing }")

		assert.Error(t, err)
		assert.Nil(t, schema)
	})

	t.Run("should successfully read from string", func(t *testing.T) {
		schema, err := NewSchemaFromString("type Query { hello: String }")

		assert.NoError(t, err)
		assert.Equal(t, []byte("type Query { hello: String }"), schema.rawInput)
	})
}

func TestDefault(t *testing.T) {
	schema, err := Default()
	require.NoError(t, err)

	assert.True(t, schema.HasQueryType())
	assert.Equal(t, "Query", schema.QueryTypeName())
	assert.Equal(t, []string{"Cat", "CatBreed", "Dog", "DogBreed", "Person", "Pet", "Query"}, schema.TypeNames())

	require.NotNil(t, schema.Definition("Person"))
	assert.Nil(t, schema.Definition("Alien"))
}

func TestSchema_Format(t *testing.T) {
	schema, err := Default()
	require.NoError(t, err)

	out := &bytes.Buffer{}
	require.NoError(t, schema.Format(out))

	goldie.Assert(t, "petgraph", out.Bytes())
	if t.Failed() {
		fixture, err := os.ReadFile("./fixtures/petgraph.golden")
		require.NoError(t, err)

		diffview.NewGoland().DiffViewBytes("petgraph", fixture, out.Bytes())
	}
}

// Formatting the schema and loading the output again must yield an
// identical type graph.
func TestSchema_FormatRoundTrip(t *testing.T) {
	schema, err := Default()
	require.NoError(t, err)

	formatted, err := schema.FormatString()
	require.NoError(t, err)

	reloaded, err := NewSchemaFromString(formatted)
	require.NoError(t, err)

	generator := introspection.NewGenerator()
	var original, roundTripped introspection.Data
	generator.Generate(schema.Document(), &original)
	generator.Generate(reloaded.Document(), &roundTripped)

	if diff := cmp.Diff(original, roundTripped); diff != "" {
		t.Fatalf("type graph changed after round trip:\n%s", diff)
	}

	reformatted, err := reloaded.FormatString()
	require.NoError(t, err)
	assert.Equal(t, formatted, reformatted)
}
