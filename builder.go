package schemaxform

// Parse builds a [Schema] from a parsed JSON value — the shape produced by
// any standard JSON (or, via internal/loader, YAML) decoder: bool,
// map[string]any, []any, string, float64/json.Number, or nil. Parsing
// itself is pure and synchronous; on any unrecognized shape it returns one
// of [ErrInvalidSchema], [ErrArrNeedsItems], or [ErrObjNeedsProperties].
//
// Equal subtrees encountered while parsing a single document are interned
// to the same *Schema pointer (see the builder type below). This lets a
// [github.com/kschead/schemaxform/search.Searcher] key its memo table by
// pointer identity instead of by a deep-equality comparison on every
// lookup, while two independently-[Parse]d schemas remain safe to compare
// and combine via [Schema.Equal].
func Parse(v any) (*Schema, error) {
	b := &builder{intern: make(map[string]*Schema)}
	return b.parse(v)
}

// builder threads an interning cache through one parse of a schema
// document. It is not safe for concurrent use and is not exported: callers
// only ever see its result, a fully-built [Schema] tree.
type builder struct {
	intern map[string]*Schema
}

func (b *builder) parse(v any) (*Schema, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return b.canonicalize(TrueSchema()), nil
		}
		return b.canonicalize(FalseSchema()), nil
	case map[string]any:
		return b.parseObject(val)
	default:
		return nil, ErrInvalidSchema
	}
}

func (b *builder) parseObject(m map[string]any) (*Schema, error) {
	rawType, ok := m["type"]
	if !ok {
		return nil, ErrInvalidSchema
	}
	typeName, ok := rawType.(string)
	if !ok {
		return nil, ErrInvalidSchema
	}

	if g, ok := groundFromTypeName(typeName); ok {
		return b.canonicalize(GroundSchema(g)), nil
	}

	switch typeName {
	case "array":
		rawItems, ok := m["items"]
		if !ok {
			return nil, ErrArrNeedsItems
		}
		elem, err := b.parse(rawItems)
		if err != nil {
			return nil, err
		}
		return b.canonicalize(ArrSchema(elem)), nil

	case "object":
		rawProps, ok := m["properties"]
		if !ok {
			return nil, ErrObjNeedsProperties
		}
		propsMap, ok := rawProps.(map[string]any)
		if !ok {
			return nil, ErrObjNeedsProperties
		}

		props := make(SchemaMap, len(propsMap))
		for name, rawChild := range propsMap {
			child, err := b.parse(rawChild)
			if err != nil {
				return nil, err
			}
			props[name] = child
		}
		return b.canonicalize(ObjSchema(props)), nil

	default:
		return nil, ErrInvalidSchema
	}
}

// canonicalize returns s, or a previously-built schema structurally equal
// to it, so that repeated identical subtrees within one document share a
// single pointer.
func (b *builder) canonicalize(s *Schema) *Schema {
	key := s.String()
	if existing, ok := b.intern[key]; ok {
		if existing.Equal(s) {
			return existing
		}
		return s
	}
	b.intern[key] = s
	return s
}
