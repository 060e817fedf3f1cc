package schemaxform

// SchemaEditDistance computes a recursive structural distance between two
// schemas, used for heuristics and diagnostics. It is not consulted by the
// searcher (see [github.com/kschead/schemaxform/search]) — the chosen
// design finds any sound path rather than an optimal one — but is kept as
// a standalone utility for callers that want a similarity measure.
//
// Rules:
//   - 0 when from and to are structurally equal.
//   - recursive on matching Arr/Arr pairs.
//   - for Obj/Obj: Infinite if to has any property missing from from,
//     otherwise the sum over from's properties of the per-property
//     distance, counting a property present only in from as 1.
//   - for Obj/non-Obj: Nat(1) if some property of the object equals the
//     target schema, else Infinite.
//   - otherwise Nat(1).
func SchemaEditDistance(from, to *Schema) ExtNat {
	if from.Equal(to) {
		return NatN(0)
	}

	if fe, ok := from.IsArr(); ok {
		if te, ok := to.IsArr(); ok {
			return SchemaEditDistance(fe, te)
		}
	}

	if fm, ok := from.IsObj(); ok {
		if tm, ok := to.IsObj(); ok {
			for k := range tm {
				if _, ok := fm[k]; !ok {
					return Infinite
				}
			}
			total := NatN(0)
			for _, k := range fm.Keys() {
				if tv, ok := tm[k]; ok {
					total = total.Add(SchemaEditDistance(fm[k], tv))
				} else {
					total = total.Add(NatN(1))
				}
			}
			return total
		}

		for _, k := range fm.Keys() {
			if fm[k].Equal(to) {
				return NatN(1)
			}
		}
		return Infinite
	}

	return NatN(1)
}
