package resolve

import (
	"fmt"

	"github.com/gogpu/spvreq/spirv"
)

// Accumulator collects the capabilities and extensions a module needs,
// validating each addition against a target profile and closing over
// capability prerequisites as it goes.
//
// Adding something already present is a no-op, so accumulation is
// idempotent: feeding the same instruction stream twice yields the same
// sets.
type Accumulator struct {
	profile *Profile
	caps    *capabilitySet
	exts    *extensionSet
}

// NewAccumulator creates an empty accumulator for the given target.
func NewAccumulator(p *Profile) *Accumulator {
	return &Accumulator{
		profile: p,
		caps:    newCapabilitySet(),
		exts:    newExtensionSet(),
	}
}

// AddCapability enables c, its transitive prerequisites, and whatever
// extensions gate c at the profile's version. It fails if c or any
// prerequisite is unavailable on the target.
func (a *Accumulator) AddCapability(c spirv.Capability) error {
	if a.caps.contains(c) {
		return nil
	}
	if !a.profile.CanUseCapability(c) {
		return NewError(ErrUnmetCapability,
			fmt.Sprintf("capability %s not available on %s target", c, a.profile.Env()))
	}
	a.caps.add(c)
	for _, dep := range spirv.CapabilityDependencies(c) {
		if err := a.AddCapability(dep); err != nil {
			return err
		}
	}
	if req, ok := spirv.CapabilityRequirement(c); ok {
		if err := a.addGatedExtensions(req); err != nil {
			return err
		}
	}
	return nil
}

// AddExtension records an explicitly required extension. It fails if the
// target does not support it.
func (a *Accumulator) AddExtension(e spirv.Extension) error {
	if a.exts.contains(e) {
		return nil
	}
	if !a.profile.CanUseExtension(e) {
		return NewError(ErrUnmetExtension,
			fmt.Sprintf("extension %s not supported by %s target", e, a.profile.Env()))
	}
	a.exts.add(e)
	return nil
}

// AddRequirement satisfies req against the target.
//
// If any alternative capability set is already fully enabled the
// capability part is satisfied for free. Otherwise the first alternative
// whose members are all available is enabled, in declaration order. If no
// alternative is available the requirement is unmet.
func (a *Accumulator) AddRequirement(req spirv.Requirement) error {
	if req.IsEmpty() {
		return nil
	}
	if len(req.Alternatives) > 0 {
		if err := a.addAlternatives(req.Alternatives); err != nil {
			return err
		}
	}
	return a.addGatedExtensions(req)
}

func (a *Accumulator) addAlternatives(alts [][]spirv.Capability) error {
	for _, alt := range alts {
		if a.caps.containsAll(alt) {
			return nil
		}
	}
	for _, alt := range alts {
		if !a.available(alt) {
			continue
		}
		for _, c := range alt {
			if err := a.AddCapability(c); err != nil {
				return err
			}
		}
		return nil
	}
	return NewError(ErrUnmetCapability,
		fmt.Sprintf("no available alternative among %s on %s target",
			describeAlternatives(alts), a.profile.Env()))
}

func (a *Accumulator) available(caps []spirv.Capability) bool {
	for _, c := range caps {
		if !a.profile.CanUseCapability(c) {
			return false
		}
	}
	return true
}

// addGatedExtensions records req's extensions unless the profile's
// version falls inside the window where the feature is core. A
// requirement with no core version always needs its extensions.
func (a *Accumulator) addGatedExtensions(req spirv.Requirement) error {
	if len(req.Extensions) == 0 {
		return nil
	}
	if !req.MinVersion.IsZero() && a.profile.Version().InWindow(req.MinVersion, req.MaxVersion) {
		return nil
	}
	for _, e := range req.Extensions {
		if err := a.AddExtension(e); err != nil {
			return err
		}
	}
	return nil
}

// Capabilities returns the enabled capabilities in discovery order.
func (a *Accumulator) Capabilities() []spirv.Capability {
	return a.caps.list()
}

// Extensions returns the required extensions in discovery order.
func (a *Accumulator) Extensions() []spirv.Extension {
	return a.exts.list()
}

// HasCapability reports whether c is already enabled.
func (a *Accumulator) HasCapability(c spirv.Capability) bool {
	return a.caps.contains(c)
}

func describeAlternatives(alts [][]spirv.Capability) string {
	s := ""
	for i, alt := range alts {
		if i > 0 {
			s += " | "
		}
		for j, c := range alt {
			if j > 0 {
				s += "+"
			}
			s += c.String()
		}
	}
	return s
}
