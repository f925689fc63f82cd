package introspection

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jensneuse/diffview"
	"github.com/sebdah/goldie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/phoebusgraph/petgraph/pkg/graphql"
)

func TestGenerator_Generate(t *testing.T) {
	schema, err := graphql.Default()
	require.NoError(t, err)

	var data Data
	NewGenerator().Generate(schema.Document(), &data)

	outputPretty, err := json.MarshalIndent(data, "", "  ")
	require.NoError(t, err)

	goldie.Assert(t, "petgraph", outputPretty)
	if t.Failed() {
		fixture, err := os.ReadFile("./fixtures/petgraph.golden")
		require.NoError(t, err)

		diffview.NewGoland().DiffViewBytes("petgraph", fixture, outputPretty)
	}

	t.Run("root types", func(t *testing.T) {
		assert.Equal(t, "Query", gjson.GetBytes(outputPretty, "__schema.queryType.name").String())
		assert.Equal(t, gjson.Null, gjson.GetBytes(outputPretty, "__schema.mutationType").Type)
		assert.Equal(t, gjson.Null, gjson.GetBytes(outputPretty, "__schema.subscriptionType").Type)
	})

	t.Run("schema's own types only", func(t *testing.T) {
		assert.Equal(t, int64(7), gjson.GetBytes(outputPretty, "__schema.types.#").Int())
	})

	t.Run("breed enums are exact", func(t *testing.T) {
		dogBreeds := gjson.GetBytes(outputPretty, `__schema.types.#(name=="DogBreed").enumValues.#.name`)
		assert.Equal(t, `["CHIHUAHUA","RETRIEVER","LAB"]`, dogBreeds.Raw)

		catBreeds := gjson.GetBytes(outputPretty, `__schema.types.#(name=="CatBreed").enumValues.#.name`)
		assert.Equal(t, `["TABBY","MIX"]`, catBreeds.Raw)
	})

	t.Run("pet possible types", func(t *testing.T) {
		possibleTypes := gjson.GetBytes(outputPretty, `__schema.types.#(name=="Pet").possibleTypes.#.name`)
		assert.Equal(t, `["Cat","Dog"]`, possibleTypes.Raw)
	})

	t.Run("person field accepts four optional arguments", func(t *testing.T) {
		args := gjson.GetBytes(outputPretty, `__schema.types.#(name=="Query").fields.#(name=="person").args`)
		assert.Equal(t, int64(4), args.Get("#").Int())
		for _, arg := range args.Array() {
			assert.NotEqual(t, string(NONNULL), arg.Get("type.kind").String())
		}
	})

	t.Run("pets wrapper chain", func(t *testing.T) {
		pets := gjson.GetBytes(outputPretty, `__schema.types.#(name=="Person").fields.#(name=="pets").type`)
		assert.Equal(t, "NON_NULL", pets.Get("kind").String())
		assert.Equal(t, "LIST", pets.Get("ofType.kind").String())
		assert.Equal(t, "NON_NULL", pets.Get("ofType.ofType.kind").String())
		assert.Equal(t, "Pet", pets.Get("ofType.ofType.ofType.name").String())
	})
}

func TestGenerator_Generate_Deprecation(t *testing.T) {
	schema := gqlparser.MustLoadSchema(&ast.Source{
		Name: "deprecated.graphql",
		Input: `
			type Query {
				current: String
				old: String @deprecated(reason: "use current")
				gone: String @deprecated
			}`,
	})

	var data Data
	NewGenerator().Generate(schema, &data)

	require.Len(t, data.Schema.Types, 1)
	fields := data.Schema.Types[0].Fields
	require.Len(t, fields, 3)

	assert.False(t, fields[0].IsDeprecated)
	assert.Nil(t, fields[0].DeprecationReason)

	assert.True(t, fields[1].IsDeprecated)
	require.NotNil(t, fields[1].DeprecationReason)
	assert.Equal(t, "use current", *fields[1].DeprecationReason)

	assert.True(t, fields[2].IsDeprecated)
	assert.Nil(t, fields[2].DeprecationReason)
}

func TestGenerator_Generate_DefaultValues(t *testing.T) {
	schema := gqlparser.MustLoadSchema(&ast.Source{
		Name: "defaults.graphql",
		Input: `
			type Query {
				items(first: Int = 10, label: String = "all"): String
			}`,
	})

	var data Data
	NewGenerator().Generate(schema, &data)

	args := data.Schema.Types[0].Fields[0].Args
	require.Len(t, args, 2)

	require.NotNil(t, args[0].DefaultValue)
	assert.Equal(t, "10", *args[0].DefaultValue)

	require.NotNil(t, args[1].DefaultValue)
	assert.Equal(t, `"all"`, *args[1].DefaultValue)
}

func TestGenerator_Generate_RootTypeNames(t *testing.T) {
	schema := gqlparser.MustLoadSchema(&ast.Source{
		Name:  "mutation.graphql",
		Input: `type Query { ok: Boolean } type Mutation { set(ok: Boolean): Boolean }`,
	})

	var data Data
	NewGenerator().Generate(schema, &data)

	query, mutation, subscription := data.Schema.TypeNames()
	assert.Equal(t, "Query", query)
	assert.Equal(t, "Mutation", mutation)
	assert.Equal(t, "", subscription)
}
