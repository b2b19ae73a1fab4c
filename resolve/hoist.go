package resolve

import "sort"

// Hoist merges per-function resolutions into one module-level resolution.
// The union is sorted — capabilities by numeric value, extensions by
// name — so hoisted output is stable regardless of function order.
func Hoist(resolutions ...*Resolution) *Resolution {
	caps := newCapabilitySet()
	exts := newExtensionSet()
	for _, res := range resolutions {
		if res == nil {
			continue
		}
		for _, c := range res.Capabilities {
			caps.add(c)
		}
		for _, e := range res.Extensions {
			exts.add(e)
		}
	}
	merged := &Resolution{
		Capabilities: caps.list(),
		Extensions:   exts.list(),
	}
	sort.Slice(merged.Capabilities, func(i, j int) bool {
		return merged.Capabilities[i] < merged.Capabilities[j]
	})
	sort.Slice(merged.Extensions, func(i, j int) bool {
		return merged.Extensions[i] < merged.Extensions[j]
	})
	return merged
}
