package signal

import "sort"

// FindAll walks an element-creation argument and returns every embedded
// handle, in traversal order, without evaluating any of them.
//
// A handle yields itself. A []any yields the concatenation of its
// elements' results. A map[string]any yields the concatenation over its
// values in sorted key order (keys themselves are ignored; the sort
// only makes the order deterministic across calls). Anything else
// yields nothing. Traversal stops at handles: their internal state is
// never walked as a nested structure.
//
// No deduplication happens here; the render coordinator's positional
// diff takes care of repeated entries.
func FindAll(value any) []*Handle {
	return appendHandles(nil, value)
}

func appendHandles(acc []*Handle, value any) []*Handle {
	switch v := value.(type) {
	case *Handle:
		if v != nil {
			acc = append(acc, v)
		}
	case []any:
		for _, elem := range v {
			acc = appendHandles(acc, elem)
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			acc = appendHandles(acc, v[key])
		}
	}
	return acc
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
