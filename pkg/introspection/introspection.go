// Package introspection turns a loaded schema into the standard GraphQL
// introspection document shape. The model is position-free: two loads of
// equivalent SDL always produce equal values, which makes it the witness
// for round-trip comparisons between schema documents.
package introspection

type TypeKind string

const (
	SCALAR      TypeKind = "SCALAR"
	OBJECT      TypeKind = "OBJECT"
	INTERFACE   TypeKind = "INTERFACE"
	UNION       TypeKind = "UNION"
	ENUM        TypeKind = "ENUM"
	INPUTOBJECT TypeKind = "INPUT_OBJECT"
	LIST        TypeKind = "LIST"
	NONNULL     TypeKind = "NON_NULL"
)

type Data struct {
	Schema Schema `json:"__schema"`
}

type Schema struct {
	QueryType        *TypeName   `json:"queryType"`
	MutationType     *TypeName   `json:"mutationType"`
	SubscriptionType *TypeName   `json:"subscriptionType"`
	Types            []FullType  `json:"types"`
	Directives       []Directive `json:"directives"`
}

// TypeNames returns the root operation type names, empty strings for
// operations the schema does not define.
func (s Schema) TypeNames() (query, mutation, subscription string) {
	if s.QueryType != nil {
		query = s.QueryType.Name
	}
	if s.MutationType != nil {
		mutation = s.MutationType.Name
	}
	if s.SubscriptionType != nil {
		subscription = s.SubscriptionType.Name
	}
	return
}

type TypeName struct {
	Name string `json:"name"`
}

type FullType struct {
	Kind          TypeKind     `json:"kind"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	Fields        []Field      `json:"fields,omitempty"`
	InputFields   []InputValue `json:"inputFields,omitempty"`
	Interfaces    []TypeRef    `json:"interfaces,omitempty"`
	EnumValues    []EnumValue  `json:"enumValues,omitempty"`
	PossibleTypes []TypeRef    `json:"possibleTypes,omitempty"`
}

type Field struct {
	Name              string       `json:"name"`
	Description       string       `json:"description,omitempty"`
	Args              []InputValue `json:"args,omitempty"`
	Type              TypeRef      `json:"type"`
	IsDeprecated      bool         `json:"isDeprecated"`
	DeprecationReason *string      `json:"deprecationReason"`
}

type InputValue struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Type         TypeRef `json:"type"`
	DefaultValue *string `json:"defaultValue"`
}

type EnumValue struct {
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason *string `json:"deprecationReason"`
}

// TypeRef is a named type or a NON_NULL/LIST wrapper chain ending in one.
type TypeRef struct {
	Kind   TypeKind `json:"kind"`
	Name   *string  `json:"name,omitempty"`
	OfType *TypeRef `json:"ofType,omitempty"`
}

type Directive struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Locations   []string     `json:"locations"`
	Args        []InputValue `json:"args,omitempty"`
}
