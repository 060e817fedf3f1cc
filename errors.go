package schemaxform

import "errors"

// Schema-parse errors, surfaced to callers of [Parse].
var (
	// ErrInvalidSchema is returned when a JSON value has a shape [Parse]
	// does not recognize as a schema at all.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrArrNeedsItems is returned when an array schema ("type": "array")
	// is missing its required "items" subschema.
	ErrArrNeedsItems = errors.New("array schema needs items")

	// ErrObjNeedsProperties is returned when an object schema
	// ("type": "object") is missing its required "properties" object.
	ErrObjNeedsProperties = errors.New("object schema needs properties")
)
