// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package formengine

import "github.com/krallice/azure-tenancy-hub/internal/jschema"

// Classify partitions an object node's properties into simple (scalar) and
// complex (object or array) name lists. Both lists preserve the original
// declaration order; this is a stable partition, not a re-sort. Scalar
// fields are rendered inline, composite fields as collapsible sections.
func Classify(s *jschema.Schema) (simple, complex []string) {
	for _, name := range s.OrderedProperties() {
		if Resolve(s.Properties[name]).Composite() {
			complex = append(complex, name)
		} else {
			simple = append(simple, name)
		}
	}
	return simple, complex
}
