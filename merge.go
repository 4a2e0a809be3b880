package sym

// DeepMerge combines overlay onto base and returns the result as a new
// value; neither argument is mutated. Two objects are merged key by
// key, recursing into any key present as an object on both sides.
// Every other combination — including object-over-scalar,
// array-over-array, or mismatched kinds — resolves to overlay, since
// only objects have a meaningful per-key composition (spec.md §4.5,
// §9).
func DeepMerge(base, overlay Value) Value {
	baseObj, baseIsObj := base.AsObject()
	overlayObj, overlayIsObj := overlay.AsObject()

	if !baseIsObj || !overlayIsObj {
		return DeepCopy(overlay)
	}

	merged := make(map[string]Value, len(baseObj)+len(overlayObj))

	for k, v := range baseObj {
		merged[k] = DeepCopy(v)
	}

	for k, v := range overlayObj {
		if existing, ok := merged[k]; ok {
			merged[k] = DeepMerge(existing, v)
		} else {
			merged[k] = DeepCopy(v)
		}
	}

	return ObjectValue(merged)
}
