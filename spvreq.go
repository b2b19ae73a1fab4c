// Package spvreq analyzes the capability and extension requirements of
// SPIR-V modules.
//
// SPIR-V gates most features behind OpCapability and OpExtension
// declarations. spvreq decodes a module, walks its instructions, and
// computes the declarations the module actually needs on a given target
// environment — closing over capability prerequisites, honoring
// version-gated extensions, and validating everything against the
// target's available feature set.
//
// Example usage:
//
//	report, err := spvreq.Analyze(binary, resolve.DefaultVulkanOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range report.MissingCapabilities {
//	    fmt.Println("missing:", c)
//	}
//
// Normalize rewrites a module with exactly the declarations it needs:
//
//	fixed, err := spvreq.Normalize(binary, resolve.DefaultVulkanOptions())
//
// For lower-level control, use the resolve package directly: build a
// resolve.Profile, feed instructions to a resolve.Resolver, and hoist the
// per-function results with resolve.Hoist.
package spvreq

import (
	"fmt"

	"github.com/gogpu/spvreq/resolve"
	"github.com/gogpu/spvreq/spirv"
)

// Report describes a module's requirements against a target.
type Report struct {
	// Version is the module's SPIR-V version from its header.
	Version spirv.Version

	// Required holds the capabilities and extensions the module's
	// instructions need, hoisted and sorted.
	Required *resolve.Resolution

	// Declared holds what the module actually declares, in declaration
	// order.
	Declared *resolve.Resolution

	// MissingCapabilities are required but not declared.
	MissingCapabilities []spirv.Capability

	// MissingExtensions are required but not declared.
	MissingExtensions []spirv.Extension

	// SuperfluousCapabilities are declared but not required by any
	// instruction.
	SuperfluousCapabilities []spirv.Capability

	// SuperfluousExtensions are declared but not required.
	SuperfluousExtensions []spirv.Extension

	// UnavailableCapabilities are declared but not available on the
	// target.
	UnavailableCapabilities []spirv.Capability

	// UnsupportedExtensions are declared but not supported by the
	// target.
	UnsupportedExtensions []spirv.Extension
}

// Satisfied reports whether the module declares everything it needs and
// nothing the target lacks.
func (r *Report) Satisfied() bool {
	return len(r.MissingCapabilities) == 0 &&
		len(r.MissingExtensions) == 0 &&
		len(r.UnavailableCapabilities) == 0 &&
		len(r.UnsupportedExtensions) == 0
}

// Analyze decodes a SPIR-V binary and reports its requirements against
// the target described by opts.
func Analyze(data []byte, opts resolve.Options) (*Report, error) {
	m, err := spirv.DecodeModule(data)
	if err != nil {
		return nil, err
	}
	return AnalyzeModule(m, opts)
}

// AnalyzeModule reports a decoded module's requirements against the
// target described by opts. When opts leaves the SPIR-V version zero, the
// module header's version is used.
func AnalyzeModule(m *spirv.Module, opts resolve.Options) (*Report, error) {
	if opts.Version.IsZero() {
		opts.Version = m.Version
	}
	profile := resolve.NewProfile(opts)

	required, err := Resolve(m, profile)
	if err != nil {
		return nil, err
	}
	declared := declarations(m)

	report := &Report{
		Version:  m.Version,
		Required: required,
		Declared: declared,
	}
	report.diffCapabilities(profile)
	report.diffExtensions(profile)
	return report, nil
}

// Resolve computes the module's hoisted requirements on a target. Globals
// and each function body are resolved independently, then merged.
func Resolve(m *spirv.Module, profile *resolve.Profile) (*resolve.Resolution, error) {
	types := resolve.NewTypeRegistry(m.Instructions)

	global := resolve.NewResolver(profile, types)
	if err := global.Instructions(0, m.Globals()); err != nil {
		return nil, err
	}

	results := []*resolve.Resolution{global.Result()}
	for _, fn := range m.Functions() {
		fr := resolve.NewResolver(profile, types)
		if err := fr.Instructions(fn.Start, fn.Body); err != nil {
			return nil, err
		}
		results = append(results, fr.Result())
	}
	return resolve.Hoist(results...), nil
}

// Normalize rewrites a module so it declares exactly what it requires:
// existing OpCapability and OpExtension instructions are dropped and the
// resolved declarations are placed at the front, in sorted order.
func Normalize(data []byte, opts resolve.Options) ([]byte, error) {
	m, err := spirv.DecodeModule(data)
	if err != nil {
		return nil, err
	}
	if opts.Version.IsZero() {
		opts.Version = m.Version
	}
	required, err := Resolve(m, resolve.NewProfile(opts))
	if err != nil {
		return nil, fmt.Errorf("resolve requirements: %w", err)
	}

	rest := make([]spirv.Instruction, 0, len(m.Instructions))
	for _, in := range m.Instructions {
		if in.Op == spirv.OpCapability || in.Op == spirv.OpExtension {
			continue
		}
		rest = append(rest, in)
	}
	m.Instructions = append(required.Declarations(), rest...)
	return m.Bytes(), nil
}

// declarations collects the module's declared capabilities and
// extensions in declaration order.
func declarations(m *spirv.Module) *resolve.Resolution {
	decl := &resolve.Resolution{}
	for _, in := range m.Instructions {
		switch in.Op {
		case spirv.OpCapability:
			if in.NumOperands() >= 1 {
				decl.Capabilities = append(decl.Capabilities, spirv.Capability(in.Operand(0)))
			}
		case spirv.OpExtension:
			if name, ok := in.LiteralString(0); ok {
				decl.Extensions = append(decl.Extensions, spirv.Extension(name))
			}
		}
	}
	return decl
}

func (r *Report) diffCapabilities(profile *resolve.Profile) {
	declared := make(map[spirv.Capability]struct{}, len(r.Declared.Capabilities))
	for _, c := range r.Declared.Capabilities {
		declared[c] = struct{}{}
		if !profile.CanUseCapability(c) {
			r.UnavailableCapabilities = append(r.UnavailableCapabilities, c)
		}
	}
	required := make(map[spirv.Capability]struct{}, len(r.Required.Capabilities))
	for _, c := range r.Required.Capabilities {
		required[c] = struct{}{}
		if _, ok := declared[c]; !ok {
			r.MissingCapabilities = append(r.MissingCapabilities, c)
		}
	}
	for _, c := range r.Declared.Capabilities {
		if _, ok := required[c]; !ok {
			r.SuperfluousCapabilities = append(r.SuperfluousCapabilities, c)
		}
	}
}

func (r *Report) diffExtensions(profile *resolve.Profile) {
	declared := make(map[spirv.Extension]struct{}, len(r.Declared.Extensions))
	for _, e := range r.Declared.Extensions {
		declared[e] = struct{}{}
		if !profile.CanUseExtension(e) {
			r.UnsupportedExtensions = append(r.UnsupportedExtensions, e)
		}
	}
	required := make(map[spirv.Extension]struct{}, len(r.Required.Extensions))
	for _, e := range r.Required.Extensions {
		required[e] = struct{}{}
		if _, ok := declared[e]; !ok {
			r.MissingExtensions = append(r.MissingExtensions, e)
		}
	}
	for _, e := range r.Declared.Extensions {
		if _, ok := required[e]; !ok {
			r.SuperfluousExtensions = append(r.SuperfluousExtensions, e)
		}
	}
}
