// petgraph ships the people/pets demo graph schema as a first-class artifact.
//
// The schema
//
// The graph exposes a Query root with a peopleCount and a parameterized
// person field, a Person type whose scalar echo fields mirror the query
// arguments, a Pet interface implemented by Dog and Cat, and the DogBreed
// and CatBreed enums. The canonical SDL is embedded and shipped as
// schema.graphql.
//
// About this repository
//
// This is not a GraphQL engine. Parsing and SDL validation are delegated
// to vektah/gqlparser and no queries are ever executed. What lives here is
// the contract around the schema text itself: canonical printing
// (pkg/sdlprinter), structural conformance rules (pkg/schemavalidation)
// and the position-free introspection model used for round-trip and diff
// comparisons (pkg/introspection). The petgraph CLI exposes all of it.
package main
