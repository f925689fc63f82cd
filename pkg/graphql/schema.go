// Package graphql wraps the people/pets demo graph schema as a loadable,
// printable artifact. Parsing and validation of the SDL is delegated to
// vektah/gqlparser; this package never executes queries.
package graphql

import (
	_ "embed"
	"io"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/phoebusgraph/petgraph/pkg/sdlprinter"
)

//go:embed schema.graphql
var petgraphSchema []byte

// Schema is a successfully loaded schema document together with the raw
// input it was loaded from.
type Schema struct {
	rawInput []byte
	document *ast.Schema
}

// Default returns the embedded people/pets schema.
func Default() (*Schema, error) {
	return NewSchemaFromString(string(petgraphSchema))
}

func NewSchemaFromReader(reader io.Reader) (*Schema, error) {
	schemaContent, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	return createSchema(schemaContent)
}

func NewSchemaFromString(schema string) (*Schema, error) {
	return createSchema([]byte(schema))
}

func createSchema(rawInput []byte) (*Schema, error) {
	document, err := gqlparser.LoadSchema(&ast.Source{
		Name:  "schema.graphql",
		Input: string(rawInput),
	})
	if err != nil {
		return nil, err
	}

	return &Schema{
		rawInput: rawInput,
		document: document,
	}, nil
}

// Document exposes the underlying gqlparser schema.
func (s *Schema) Document() *ast.Schema {
	return s.document
}

// RawInput returns the schema text the document was loaded from.
func (s *Schema) RawInput() []byte {
	return s.rawInput
}

func (s *Schema) HasQueryType() bool {
	return s.document.Query != nil
}

func (s *Schema) QueryTypeName() string {
	if !s.HasQueryType() {
		return ""
	}
	return s.document.Query.Name
}

// Definition returns the named type definition, nil if absent.
func (s *Schema) Definition(name string) *ast.Definition {
	return s.document.Types[name]
}

// TypeNames lists the schema's own type names in lexical order. Built-in
// scalars and introspection types are skipped.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.document.Types))
	for name, definition := range s.document.Types {
		if definition.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format writes the schema in its canonical SDL form.
func (s *Schema) Format(out io.Writer) error {
	return sdlprinter.Print(s.document, out)
}

func (s *Schema) FormatString() (string, error) {
	return sdlprinter.PrintString(s.document)
}
