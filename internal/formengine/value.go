// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package formengine

// Value helpers implement the change propagation contract: every mutation
// shallow-copies only the immediate container and substitutes the changed
// child, so a leaf edit rebuilds its ancestor chain while untouched sibling
// subtrees are shared by reference with the previous root.

// asObject treats v as a mapping, substituting an empty one when v is not
// object-shaped. The returned map is read-only from the engine's side.
func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// asArray treats v as a sequence, substituting an empty one when v is not
// array-shaped.
func asArray(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}

// truthy coerces a value to a strict boolean for two-state toggles.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

// objectWith returns a copy of m with key set to v. A nil v means the value
// became absent and the key is dropped, so downstream defaulting can take
// over.
func objectWith(m map[string]any, key string, v any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, existing := range m {
		out[k] = existing
	}
	if v == nil {
		delete(out, key)
	} else {
		out[key] = v
	}
	return out
}

// arrayWith returns a shallow copy of s with position i replaced.
func arrayWith(s []any, i int, v any) []any {
	out := make([]any, len(s))
	copy(out, s)
	if i >= 0 && i < len(out) {
		out[i] = v
	}
	return out
}

// arrayAppend returns a copy of s with v appended.
func arrayAppend(s []any, v any) []any {
	out := make([]any, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

// arrayRemove returns a copy of s with the element at i excluded; subsequent
// elements shift down with no gaps.
func arrayRemove(s []any, i int) []any {
	if i < 0 || i >= len(s) {
		out := make([]any, len(s))
		copy(out, s)
		return out
	}
	out := make([]any, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
