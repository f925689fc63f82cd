// Package schemavalidation checks a loaded schema against the people/pets
// graph contract: the seven named types, their field shapes and
// nullability, the Pet capability contract and exact breed enum
// membership.
package schemavalidation

import (
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

type ValidationState int

func (v ValidationState) String() string {
	switch v {
	case UnknownState:
		return "UnknownState"
	case Valid:
		return "Valid"
	case Invalid:
		return "Invalid"
	default:
		return "String() not implemented for ValidationState: " + strconv.Itoa(int(v))
	}
}

const (
	UnknownState ValidationState = iota
	Valid
	Invalid
)

// Rule checks one aspect of the schema contract.
type Rule func(schema *ast.Schema) Result

type Result struct {
	RuleName        string
	ValidationState ValidationState
	Explanation     string
}

type DefinitionValidator struct {
	rules   []Rule
	results []Result
}

func NewDefinitionValidator(rules ...Rule) *DefinitionValidator {
	return &DefinitionValidator{
		rules:   rules,
		results: make([]Result, 0, len(rules)),
	}
}

// DefaultDefinitionValidator runs every rule of the people/pets contract.
func DefaultDefinitionValidator() *DefinitionValidator {
	return NewDefinitionValidator(
		RequiredTypesDefined(),
		QueryContract(),
		PersonContract(),
		PetImplementors(),
		BreedEnums(),
	)
}

func (d *DefinitionValidator) Validate(schema *ast.Schema) []Result {
	d.results = d.results[:0]

	for i := range d.rules {
		d.results = append(d.results, d.rules[i](schema))
	}

	return d.results
}

func valid(ruleName string) Result {
	return Result{
		RuleName:        ruleName,
		ValidationState: Valid,
	}
}

func invalid(ruleName, format string, args ...interface{}) Result {
	return Result{
		RuleName:        ruleName,
		ValidationState: Invalid,
		Explanation:     fmt.Sprintf(format, args...),
	}
}

// RequiredTypesDefined verifies that all seven contract types exist and
// have the declared kind.
func RequiredTypesDefined() Rule {
	const ruleName = "RequiredTypesDefined"

	required := []struct {
		name string
		kind ast.DefinitionKind
	}{
		{"Query", ast.Object},
		{"Person", ast.Object},
		{"Pet", ast.Interface},
		{"Dog", ast.Object},
		{"Cat", ast.Object},
		{"DogBreed", ast.Enum},
		{"CatBreed", ast.Enum},
	}

	return func(schema *ast.Schema) Result {
		for _, want := range required {
			definition := schema.Types[want.name]
			if definition == nil {
				return invalid(ruleName, "type '%s' is not defined", want.name)
			}
			if definition.Kind != want.kind {
				return invalid(ruleName, "type '%s' must be declared as %s, got %s", want.name, want.kind, definition.Kind)
			}
		}
		if schema.Query == nil || schema.Query.Name != "Query" {
			return invalid(ruleName, "'Query' must be the query root operation type")
		}
		return valid(ruleName)
	}
}

// QueryContract verifies Query.peopleCount and Query.person including the
// four optional scalar arguments.
func QueryContract() Rule {
	const ruleName = "QueryContract"

	arguments := []struct {
		name string
		typ  string
	}{
		{"testStringArg", "String"},
		{"testIntArg", "Int"},
		{"testFloatArg", "Float"},
		{"testBoolArg", "Boolean"},
	}

	return func(schema *ast.Schema) Result {
		query := schema.Types["Query"]
		if query == nil {
			return invalid(ruleName, "type 'Query' is not defined")
		}

		if explanation, ok := expectField(query, "peopleCount", "Int!"); !ok {
			return invalid(ruleName, explanation)
		}
		if explanation, ok := expectField(query, "person", "Person!"); !ok {
			return invalid(ruleName, explanation)
		}

		person := query.Fields.ForName("person")
		if len(person.Arguments) != len(arguments) {
			return invalid(ruleName, "'Query.person' must accept exactly %d arguments, got %d", len(arguments), len(person.Arguments))
		}
		for _, want := range arguments {
			argument := person.Arguments.ForName(want.name)
			if argument == nil {
				return invalid(ruleName, "'Query.person' is missing argument '%s'", want.name)
			}
			if argument.Type.String() != want.typ {
				return invalid(ruleName, "argument '%s' of 'Query.person' must have type %s, got %s", want.name, want.typ, argument.Type.String())
			}
		}

		return valid(ruleName)
	}
}

// PersonContract verifies the Person field table, nullability included.
func PersonContract() Rule {
	const ruleName = "PersonContract"

	fields := []struct {
		name string
		typ  string
	}{
		{"firstName", "String!"},
		{"lastName", "String!"},
		{"age", "Int"},
		{"stringArgVal", "String"},
		{"intArgVal", "Int"},
		{"floatArgVal", "Float"},
		{"boolArgVal", "Boolean"},
		{"pets", "[Pet!]!"},
	}

	return func(schema *ast.Schema) Result {
		person := schema.Types["Person"]
		if person == nil {
			return invalid(ruleName, "type 'Person' is not defined")
		}

		if len(person.Fields) != len(fields) {
			return invalid(ruleName, "'Person' must declare exactly %d fields, got %d", len(fields), len(person.Fields))
		}
		for _, want := range fields {
			if explanation, ok := expectField(person, want.name, want.typ); !ok {
				return invalid(ruleName, explanation)
			}
		}

		return valid(ruleName)
	}
}

// PetImplementors verifies that Dog and Cat implement Pet, structurally
// satisfy its capability contract and carry their breed field.
func PetImplementors() Rule {
	const ruleName = "PetImplementors"

	implementors := []struct {
		name       string
		breedField string
		breedType  string
	}{
		{"Dog", "dogBreed", "DogBreed!"},
		{"Cat", "catBreed", "CatBreed!"},
	}

	return func(schema *ast.Schema) Result {
		pet := schema.Types["Pet"]
		if pet == nil || pet.Kind != ast.Interface {
			return invalid(ruleName, "interface 'Pet' is not defined")
		}
		if explanation, ok := expectField(pet, "name", "String!"); !ok {
			return invalid(ruleName, explanation)
		}

		for _, want := range implementors {
			definition := schema.Types[want.name]
			if definition == nil {
				return invalid(ruleName, "type '%s' is not defined", want.name)
			}
			if !implementsInterface(schema, definition, "Pet") {
				return invalid(ruleName, "type '%s' must implement 'Pet'", want.name)
			}
			if explanation, ok := expectField(definition, "name", "String!"); !ok {
				return invalid(ruleName, explanation)
			}
			if explanation, ok := expectField(definition, want.breedField, want.breedType); !ok {
				return invalid(ruleName, explanation)
			}
		}

		return valid(ruleName)
	}
}

// BreedEnums verifies exact membership of both breed enums.
func BreedEnums() Rule {
	const ruleName = "BreedEnums"

	enums := []struct {
		name   string
		values []string
	}{
		{"DogBreed", []string{"CHIHUAHUA", "RETRIEVER", "LAB"}},
		{"CatBreed", []string{"TABBY", "MIX"}},
	}

	return func(schema *ast.Schema) Result {
		for _, want := range enums {
			definition := schema.Types[want.name]
			if definition == nil || definition.Kind != ast.Enum {
				return invalid(ruleName, "enum '%s' is not defined", want.name)
			}
			if len(definition.EnumValues) != len(want.values) {
				return invalid(ruleName, "enum '%s' must contain exactly %d values, got %d", want.name, len(want.values), len(definition.EnumValues))
			}
			for _, value := range want.values {
				if definition.EnumValues.ForName(value) == nil {
					return invalid(ruleName, "enum '%s' is missing value '%s'", want.name, value)
				}
			}
		}

		return valid(ruleName)
	}
}

func expectField(definition *ast.Definition, fieldName, wantType string) (explanation string, ok bool) {
	field := definition.Fields.ForName(fieldName)
	if field == nil {
		return fmt.Sprintf("'%s' must declare field '%s'", definition.Name, fieldName), false
	}
	if field.Type.String() != wantType {
		return fmt.Sprintf("field '%s.%s' must have type %s, got %s", definition.Name, fieldName, wantType, field.Type.String()), false
	}
	return "", true
}

func implementsInterface(schema *ast.Schema, definition *ast.Definition, interfaceName string) bool {
	for _, implementor := range schema.PossibleTypes[interfaceName] {
		if implementor.Name == definition.Name {
			return true
		}
	}
	return false
}
