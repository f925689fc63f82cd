package introspection

import (
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

// Generator converts a loaded schema document into introspection Data.
// Output is deterministic: types and directives in lexical order, fields,
// arguments and enum values in declaration order. Built-in scalars,
// built-in directives and introspection types are excluded, matching the
// schema's own SDL.
type Generator struct {
	schema *ast.Schema
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(schema *ast.Schema, data *Data) {
	g.schema = schema

	data.Schema = Schema{
		QueryType:        rootTypeName(schema.Query),
		MutationType:     rootTypeName(schema.Mutation),
		SubscriptionType: rootTypeName(schema.Subscription),
		Types:            g.fullTypes(),
		Directives:       g.directives(),
	}
}

func rootTypeName(definition *ast.Definition) *TypeName {
	if definition == nil {
		return nil
	}
	return &TypeName{Name: definition.Name}
}

func (g *Generator) fullTypes() []FullType {
	names := make([]string, 0, len(g.schema.Types))
	for name, definition := range g.schema.Types {
		if definition.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	types := make([]FullType, 0, len(names))
	for _, name := range names {
		types = append(types, g.fullType(g.schema.Types[name]))
	}
	return types
}

func (g *Generator) fullType(definition *ast.Definition) FullType {
	fullType := FullType{
		Kind:        kindOf(definition.Kind),
		Name:        definition.Name,
		Description: definition.Description,
	}

	switch definition.Kind {
	case ast.Object:
		fullType.Fields = g.fields(definition.Fields)
		fullType.Interfaces = g.namedTypeRefs(definition.Interfaces)
	case ast.Interface:
		fullType.Fields = g.fields(definition.Fields)
		fullType.Interfaces = g.namedTypeRefs(definition.Interfaces)
		fullType.PossibleTypes = g.possibleTypes(definition.Name)
	case ast.Union:
		fullType.PossibleTypes = g.namedTypeRefs(definition.Types)
	case ast.Enum:
		fullType.EnumValues = g.enumValues(definition.EnumValues)
	case ast.InputObject:
		fullType.InputFields = g.inputFields(definition.Fields)
	}

	return fullType
}

func (g *Generator) fields(fieldList ast.FieldList) []Field {
	fields := make([]Field, 0, len(fieldList))
	for _, definition := range fieldList {
		if strings.HasPrefix(definition.Name, "__") {
			continue
		}

		field := Field{
			Name:        definition.Name,
			Description: definition.Description,
			Type:        g.typeRef(definition.Type),
		}
		field.IsDeprecated, field.DeprecationReason = deprecation(definition.Directives)

		for _, argument := range definition.Arguments {
			field.Args = append(field.Args, g.inputValue(argument))
		}

		fields = append(fields, field)
	}
	return fields
}

func (g *Generator) inputFields(fieldList ast.FieldList) []InputValue {
	inputValues := make([]InputValue, 0, len(fieldList))
	for _, definition := range fieldList {
		inputValue := InputValue{
			Name:        definition.Name,
			Description: definition.Description,
			Type:        g.typeRef(definition.Type),
		}
		if definition.DefaultValue != nil {
			rendered := definition.DefaultValue.String()
			inputValue.DefaultValue = &rendered
		}
		inputValues = append(inputValues, inputValue)
	}
	return inputValues
}

func (g *Generator) inputValue(definition *ast.ArgumentDefinition) InputValue {
	inputValue := InputValue{
		Name:        definition.Name,
		Description: definition.Description,
		Type:        g.typeRef(definition.Type),
	}
	if definition.DefaultValue != nil {
		rendered := definition.DefaultValue.String()
		inputValue.DefaultValue = &rendered
	}
	return inputValue
}

func (g *Generator) enumValues(valueList ast.EnumValueList) []EnumValue {
	enumValues := make([]EnumValue, 0, len(valueList))
	for _, definition := range valueList {
		enumValue := EnumValue{
			Name:        definition.Name,
			Description: definition.Description,
		}
		enumValue.IsDeprecated, enumValue.DeprecationReason = deprecation(definition.Directives)
		enumValues = append(enumValues, enumValue)
	}
	return enumValues
}

// possibleTypes resolves the object types implementing an interface, in
// lexical order.
func (g *Generator) possibleTypes(interfaceName string) []TypeRef {
	names := make([]string, 0, len(g.schema.PossibleTypes[interfaceName]))
	for _, definition := range g.schema.PossibleTypes[interfaceName] {
		names = append(names, definition.Name)
	}
	sort.Strings(names)
	return g.namedTypeRefs(names)
}

func (g *Generator) namedTypeRefs(names []string) []TypeRef {
	refs := make([]TypeRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, g.namedTypeRef(name))
	}
	return refs
}

func (g *Generator) namedTypeRef(name string) TypeRef {
	kind := SCALAR
	if definition, ok := g.schema.Types[name]; ok {
		kind = kindOf(definition.Kind)
	}
	ref := TypeRef{Kind: kind}
	ref.Name = &name
	return ref
}

// typeRef unwraps gqlparser's combined type representation into the
// introspection NON_NULL/LIST wrapper chain.
func (g *Generator) typeRef(t *ast.Type) TypeRef {
	if t.NonNull {
		nullable := *t
		nullable.NonNull = false
		ofType := g.typeRef(&nullable)
		return TypeRef{Kind: NONNULL, OfType: &ofType}
	}
	if t.Elem != nil {
		ofType := g.typeRef(t.Elem)
		return TypeRef{Kind: LIST, OfType: &ofType}
	}
	return g.namedTypeRef(t.NamedType)
}

func (g *Generator) directives() []Directive {
	names := make([]string, 0, len(g.schema.Directives))
	for name, definition := range g.schema.Directives {
		if definitionIsBuiltIn(definition) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	directives := make([]Directive, 0, len(names))
	for _, name := range names {
		definition := g.schema.Directives[name]

		directive := Directive{
			Name:        definition.Name,
			Description: definition.Description,
			Locations:   make([]string, 0, len(definition.Locations)),
		}
		for _, location := range definition.Locations {
			directive.Locations = append(directive.Locations, string(location))
		}
		for _, argument := range definition.Arguments {
			directive.Args = append(directive.Args, g.inputValue(argument))
		}

		directives = append(directives, directive)
	}
	return directives
}

// definitionIsBuiltIn reports whether a directive definition comes from the
// gqlparser prelude rather than the schema's own source.
func definitionIsBuiltIn(definition *ast.DirectiveDefinition) bool {
	return definition.Position != nil && definition.Position.Src != nil && definition.Position.Src.BuiltIn
}

func deprecation(directives ast.DirectiveList) (deprecated bool, reason *string) {
	directive := directives.ForName("deprecated")
	if directive == nil {
		return false, nil
	}
	if argument := directive.Arguments.ForName("reason"); argument != nil {
		raw := argument.Value.Raw
		return true, &raw
	}
	return true, nil
}

func kindOf(kind ast.DefinitionKind) TypeKind {
	switch kind {
	case ast.Object:
		return OBJECT
	case ast.Interface:
		return INTERFACE
	case ast.Union:
		return UNION
	case ast.Enum:
		return ENUM
	case ast.InputObject:
		return INPUTOBJECT
	default:
		return SCALAR
	}
}
