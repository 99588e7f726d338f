package scoring

import "sort"

// sortedKeys returns map keys in lexical order. Scorers iterate requirements
// in this order so that traces and reports are byte-identical across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
