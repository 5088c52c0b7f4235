package signal

// ReadHandle returns a handle's current resolved value. If the value is
// an unsettled *Async the read suspends: the returned error is a
// *Suspension carrying the Async so the host can retry once it settles.
// A fulfilled Async reads as its value; a rejected one re-raises its
// stored reason as the error.
func ReadHandle(h *Handle) (any, error) {
	v := h.Get()
	a, ok := v.(*Async)
	if !ok {
		return v, nil
	}

	value, err, settled := a.Poll()
	if !settled {
		return nil, &Suspension{Async: a}
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Resolve mirrors FindAll's shape-walk but substitutes each handle with
// its current resolved value. Slices and maps are rebuilt only when at
// least one descendant actually changed; unaffected subtrees come back
// by reference, so a structure containing no handles resolves to the
// identical structure.
func Resolve(value any) (any, error) {
	out, _, err := resolveValue(value)
	return out, err
}

func resolveValue(value any) (out any, changed bool, err error) {
	switch v := value.(type) {
	case *Handle:
		if v == nil {
			return nil, false, nil
		}
		resolved, err := ReadHandle(v)
		if err != nil {
			return nil, false, err
		}
		return resolved, true, nil

	case []any:
		var copied []any
		for i, elem := range v {
			r, elemChanged, err := resolveValue(elem)
			if err != nil {
				return nil, false, err
			}
			if elemChanged && copied == nil {
				copied = make([]any, len(v))
				copy(copied, v)
			}
			if copied != nil {
				copied[i] = r
			}
		}
		if copied == nil {
			return v, false, nil
		}
		return copied, true, nil

	case map[string]any:
		var copied map[string]any
		for _, key := range sortedKeys(v) {
			r, elemChanged, err := resolveValue(v[key])
			if err != nil {
				return nil, false, err
			}
			if elemChanged && copied == nil {
				copied = make(map[string]any, len(v))
				for k, e := range v {
					copied[k] = e
				}
			}
			if copied != nil {
				copied[key] = r
			}
		}
		if copied == nil {
			return v, false, nil
		}
		return copied, true, nil

	default:
		return value, false, nil
	}
}
