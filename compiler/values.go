package compiler

import (
	"fmt"
	"sort"
)

// sortedValues returns the distinct values of vs in a stable order: booleans
// (false first), then numbers, then strings, then anything else by its
// printed form.
func sortedValues(vs []any) []any {
	seen := make(map[string]struct{}, len(vs))
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		k := valueKey(v)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return lessValue(out[i], out[j]) })
	return out
}

// complement returns the sorted values of domain that are not in values.
func complement(domain, values []any) []any {
	drop := make(map[string]struct{}, len(values))
	for _, v := range values {
		drop[valueKey(v)] = struct{}{}
	}
	var rest []any
	for _, v := range domain {
		if _, ok := drop[valueKey(v)]; !ok {
			rest = append(rest, v)
		}
	}
	return sortedValues(rest)
}

func valueKey(v any) string {
	if f, ok := asFloat(v); ok {
		return fmt.Sprintf("n:%v", f)
	}
	return fmt.Sprintf("%T:%v", v, v)
}

func rank(v any) int {
	switch v.(type) {
	case bool:
		return 0
	case string:
		return 2
	}
	if _, ok := asFloat(v); ok {
		return 1
	}
	return 3
}

func lessValue(a, b any) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		return !a.(bool) && b.(bool)
	case 1:
		fa, _ := asFloat(a)
		fb, _ := asFloat(b)
		return fa < fb
	case 2:
		return a.(string) < b.(string)
	default:
		return fmt.Sprint(a) < fmt.Sprint(b)
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
