// Package sdlprinter renders a loaded schema back into canonical SDL.
// Directive definitions print before type definitions, each group in
// lexical order, fields and enum values in declaration order, so
// equivalent schemas always print byte-identical.
package sdlprinter

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

func Print(schema *ast.Schema, out io.Writer) error {
	p := printer{schema: schema, out: out}
	p.printSchema()
	return p.err
}

func PrintString(schema *ast.Schema) (string, error) {
	buff := &bytes.Buffer{}
	err := Print(schema, buff)
	return buff.String(), err
}

type printer struct {
	schema *ast.Schema
	out    io.Writer
	err    error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.out, s)
}

func (p *printer) printSchema() {
	first := true
	if p.schemaDefinitionNeeded() {
		p.printSchemaDefinition()
		first = false
	}

	for _, definition := range p.ownDirectives() {
		if !first {
			p.write("\n")
		}
		first = false
		p.printDirectiveDefinition(definition)
	}

	for _, definition := range p.ownDefinitions() {
		if !first {
			p.write("\n")
		}
		first = false
		p.printDefinition(definition)
	}
}

// ownDirectives returns the schema's own directive definitions in lexical
// order, without the ones supplied by the parser prelude.
func (p *printer) ownDirectives() []*ast.DirectiveDefinition {
	directives := make([]*ast.DirectiveDefinition, 0, len(p.schema.Directives))
	for _, definition := range p.schema.Directives {
		if definition.Position != nil && definition.Position.Src != nil && definition.Position.Src.BuiltIn {
			continue
		}
		directives = append(directives, definition)
	}
	sort.Slice(directives, func(i, j int) bool {
		return directives[i].Name < directives[j].Name
	})
	return directives
}

func (p *printer) printDirectiveDefinition(definition *ast.DirectiveDefinition) {
	p.printDescription(definition.Description)
	p.write("directive @" + definition.Name)
	p.printArguments(definition.Arguments)
	if definition.IsRepeatable {
		p.write(" repeatable")
	}

	locations := make([]string, 0, len(definition.Locations))
	for _, location := range definition.Locations {
		locations = append(locations, string(location))
	}
	p.write(" on " + strings.Join(locations, " | ") + "\n")
}

// ownDefinitions returns the schema's own type definitions in lexical
// order, without the built-in scalars and introspection types.
func (p *printer) ownDefinitions() []*ast.Definition {
	definitions := make([]*ast.Definition, 0, len(p.schema.Types))
	for name, definition := range p.schema.Types {
		if definition.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		definitions = append(definitions, definition)
	}
	sort.Slice(definitions, func(i, j int) bool {
		return definitions[i].Name < definitions[j].Name
	})
	return definitions
}

// schemaDefinitionNeeded reports whether an explicit schema block must be
// printed. Root types following the Query/Mutation/Subscription naming
// convention round-trip without one.
func (p *printer) schemaDefinitionNeeded() bool {
	if p.schema.Query != nil && p.schema.Query.Name != "Query" {
		return true
	}
	if p.schema.Mutation != nil && p.schema.Mutation.Name != "Mutation" {
		return true
	}
	if p.schema.Subscription != nil && p.schema.Subscription.Name != "Subscription" {
		return true
	}
	return false
}

func (p *printer) printSchemaDefinition() {
	p.write("schema {\n")
	if p.schema.Query != nil {
		p.write("  query: " + p.schema.Query.Name + "\n")
	}
	if p.schema.Mutation != nil {
		p.write("  mutation: " + p.schema.Mutation.Name + "\n")
	}
	if p.schema.Subscription != nil {
		p.write("  subscription: " + p.schema.Subscription.Name + "\n")
	}
	p.write("}\n")
}

func (p *printer) printDefinition(definition *ast.Definition) {
	p.printDescription(definition.Description)

	switch definition.Kind {
	case ast.Scalar:
		p.write("scalar " + definition.Name)
		p.printDirectives(definition.Directives)
		p.write("\n")
	case ast.Object:
		p.write("type " + definition.Name)
		p.printImplements(definition.Interfaces)
		p.printDirectives(definition.Directives)
		p.printFieldBlock(definition.Fields)
	case ast.Interface:
		p.write("interface " + definition.Name)
		p.printImplements(definition.Interfaces)
		p.printDirectives(definition.Directives)
		p.printFieldBlock(definition.Fields)
	case ast.Union:
		p.write("union " + definition.Name)
		p.printDirectives(definition.Directives)
		p.write(" = " + strings.Join(definition.Types, " | "))
		p.write("\n")
	case ast.Enum:
		p.write("enum " + definition.Name)
		p.printDirectives(definition.Directives)
		p.write(" {\n")
		for _, value := range definition.EnumValues {
			p.printDescriptionIndented(value.Description)
			p.write("  " + value.Name)
			p.printDirectives(value.Directives)
			p.write("\n")
		}
		p.write("}\n")
	case ast.InputObject:
		p.write("input " + definition.Name)
		p.printDirectives(definition.Directives)
		p.printFieldBlock(definition.Fields)
	}
}

func (p *printer) printImplements(interfaces []string) {
	if len(interfaces) == 0 {
		return
	}
	p.write(" implements " + strings.Join(interfaces, " & "))
}

func (p *printer) printFieldBlock(fields ast.FieldList) {
	p.write(" {\n")
	for _, field := range fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}
		p.printDescriptionIndented(field.Description)
		p.write("  " + field.Name)
		p.printArguments(field.Arguments)
		p.write(": " + field.Type.String())
		if field.DefaultValue != nil {
			p.write(" = " + field.DefaultValue.String())
		}
		p.printDirectives(field.Directives)
		p.write("\n")
	}
	p.write("}\n")
}

func (p *printer) printArguments(arguments ast.ArgumentDefinitionList) {
	if len(arguments) == 0 {
		return
	}
	p.write("(")
	for i, argument := range arguments {
		if i != 0 {
			p.write(", ")
		}
		p.write(argument.Name + ": " + argument.Type.String())
		if argument.DefaultValue != nil {
			p.write(" = " + argument.DefaultValue.String())
		}
		p.printDirectives(argument.Directives)
	}
	p.write(")")
}

func (p *printer) printDirectives(directives ast.DirectiveList) {
	for _, directive := range directives {
		p.write(" @" + directive.Name)
		if len(directive.Arguments) == 0 {
			continue
		}
		p.write("(")
		for i, argument := range directive.Arguments {
			if i != 0 {
				p.write(", ")
			}
			p.write(argument.Name + ": " + argument.Value.String())
		}
		p.write(")")
	}
}

func (p *printer) printDescription(description string) {
	if description == "" {
		return
	}
	p.write("\"\"\"\n" + description + "\n\"\"\"\n")
}

func (p *printer) printDescriptionIndented(description string) {
	if description == "" {
		return
	}
	p.write("  \"\"\"\n  " + description + "\n  \"\"\"\n")
}
