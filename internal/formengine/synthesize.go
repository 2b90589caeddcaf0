// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package formengine

import "github.com/krallice/azure-tenancy-hub/internal/jschema"

// Synthesize produces a schema-conformant empty value for a node: the
// declared default verbatim when present, otherwise the zero value of the
// resolved kind. Only array append uses this; absent scalars stay absent so
// "unset" remains distinguishable from "explicitly empty".
func Synthesize(s *jschema.Schema) any {
	if s != nil && s.Default != nil {
		return s.Default
	}
	switch Resolve(s) {
	case KindObject:
		return map[string]any{}
	case KindArray:
		return []any{}
	case KindBoolean:
		return false
	case KindNumber:
		return float64(0)
	case KindInteger:
		return int64(0)
	default:
		return ""
	}
}
