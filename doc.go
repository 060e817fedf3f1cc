// Package schemaxform synthesizes data-transformation functions between two
// JSON Schemas.
//
// Given a source schema and a target schema, [Parse] builds each into a
// [Schema] tree, [github.com/kschead/schemaxform/search.Searcher.Find] searches for a
// sequence of primitive rewriting instructions
// ([github.com/kschead/schemaxform/ir]) that witnesses a conversion from one
// to the other, and a backend under
// [github.com/kschead/schemaxform/codegen] turns that sequence into
// executable source in a target language.
//
// The package understands a deliberately small subset of JSON Schema:
// booleans, the four scalar "type"s, homogeneous arrays via "items", and
// objects via "properties". It does not implement allOf/anyOf/oneOf, $ref,
// regex patternProperties, numeric ranges, or required-property enforcement.
package schemaxform
