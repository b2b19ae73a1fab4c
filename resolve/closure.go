package resolve

import "github.com/gogpu/spvreq/spirv"

// capabilitySet is an insertion-ordered set of capabilities. Order
// matters: declarations are emitted in the order requirements were
// discovered, which keeps output deterministic across runs.
type capabilitySet struct {
	order []spirv.Capability
	index map[spirv.Capability]struct{}
}

func newCapabilitySet() *capabilitySet {
	return &capabilitySet{index: make(map[spirv.Capability]struct{})}
}

func (s *capabilitySet) contains(c spirv.Capability) bool {
	_, ok := s.index[c]
	return ok
}

// add inserts c and reports whether it was newly added.
func (s *capabilitySet) add(c spirv.Capability) bool {
	if s.contains(c) {
		return false
	}
	s.index[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// enable inserts c and the transitive closure of its prerequisites.
// c is inserted before its prerequisites are visited; membership acts as
// the memo, so shared prerequisites are walked once.
func (s *capabilitySet) enable(c spirv.Capability) {
	if !s.add(c) {
		return
	}
	for _, dep := range spirv.CapabilityDependencies(c) {
		s.enable(dep)
	}
}

// containsAll reports whether every capability in caps is in the set.
func (s *capabilitySet) containsAll(caps []spirv.Capability) bool {
	for _, c := range caps {
		if !s.contains(c) {
			return false
		}
	}
	return true
}

func (s *capabilitySet) list() []spirv.Capability {
	out := make([]spirv.Capability, len(s.order))
	copy(out, s.order)
	return out
}

// extensionSet is an insertion-ordered set of extensions.
type extensionSet struct {
	order []spirv.Extension
	index map[spirv.Extension]struct{}
}

func newExtensionSet() *extensionSet {
	return &extensionSet{index: make(map[spirv.Extension]struct{})}
}

func (s *extensionSet) contains(e spirv.Extension) bool {
	_, ok := s.index[e]
	return ok
}

func (s *extensionSet) add(e spirv.Extension) bool {
	if s.contains(e) {
		return false
	}
	s.index[e] = struct{}{}
	s.order = append(s.order, e)
	return true
}

func (s *extensionSet) list() []spirv.Extension {
	out := make([]spirv.Extension, len(s.order))
	copy(out, s.order)
	return out
}
