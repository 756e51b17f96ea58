package query

// Group folds repeated names into one entry each. A name seen once maps to its string
// value, a name seen more than once maps to a []string in appearance order.
func Group(entries []Entry) map[string]any {
	collected := make(map[string][]string, len(entries))
	for _, e := range entries {
		collected[e.Name] = append(collected[e.Name], e.Value)
	}

	out := make(map[string]any, len(collected))
	for name, values := range collected {
		if len(values) == 1 {
			out[name] = values[0]
			continue
		}
		out[name] = values
	}
	return out
}
