package resolve

import (
	"errors"
	"testing"

	"github.com/gogpu/spvreq/spirv"
)

func capsEqual(t *testing.T, got, want []spirv.Capability) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("capabilities = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("capabilities = %v, want %v", got, want)
		}
	}
}

func kindOf(t *testing.T, err error) ErrorKind {
	t.Helper()
	var re *Error
	if !errors.As(err, &re) {
		t.Fatalf("error %v is not a *resolve.Error", err)
	}
	return re.Kind
}

// TestAddCapabilityClosure enables a capability with a three-deep
// prerequisite chain and checks the closure order.
func TestAddCapabilityClosure(t *testing.T) {
	a := NewAccumulator(NewProfile(DefaultVulkanOptions()))
	if err := a.AddCapability(spirv.CapabilityDerivativeControl); err != nil {
		t.Fatalf("AddCapability: %v", err)
	}
	capsEqual(t, a.Capabilities(), []spirv.Capability{
		spirv.CapabilityDerivativeControl,
		spirv.CapabilityShader,
		spirv.CapabilityMatrix,
	})
}

// TestAddCapabilityIdempotent adds the same capability twice.
func TestAddCapabilityIdempotent(t *testing.T) {
	a := NewAccumulator(NewProfile(DefaultVulkanOptions()))
	for i := 0; i < 2; i++ {
		if err := a.AddCapability(spirv.CapabilityShader); err != nil {
			t.Fatalf("AddCapability #%d: %v", i, err)
		}
	}
	capsEqual(t, a.Capabilities(), []spirv.Capability{
		spirv.CapabilityShader,
		spirv.CapabilityMatrix,
	})
}

// TestAddCapabilityUnavailable fails with ErrUnmetCapability and leaves
// nothing partially enabled for the failed addition.
func TestAddCapabilityUnavailable(t *testing.T) {
	a := NewAccumulator(NewProfile(DefaultVulkanOptions()))
	err := a.AddCapability(spirv.CapabilityKernel)
	if err == nil {
		t.Fatal("AddCapability(Kernel) on Vulkan succeeded")
	}
	if kindOf(t, err) != ErrUnmetCapability {
		t.Errorf("kind = %s, want UnmetCapability", kindOf(t, err))
	}
	if len(a.Capabilities()) != 0 {
		t.Errorf("capabilities after failure = %v", a.Capabilities())
	}
}

// TestAddRequirementAlternatives: an already-enabled alternative wins
// over an earlier-listed available one.
func TestAddRequirementAlternatives(t *testing.T) {
	p := NewProfile(Options{
		Env:          EnvVulkan,
		Capabilities: []spirv.Capability{spirv.CapabilityGeometry, spirv.CapabilityTessellation},
	})
	a := NewAccumulator(p)
	if err := a.AddCapability(spirv.CapabilityTessellation); err != nil {
		t.Fatalf("AddCapability: %v", err)
	}

	// Geometry|Tessellation: Tessellation is already enabled, so no new
	// capability should appear.
	req := spirv.Requirement{Alternatives: [][]spirv.Capability{
		{spirv.CapabilityGeometry},
		{spirv.CapabilityTessellation},
	}}
	if err := a.AddRequirement(req); err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}
	if a.HasCapability(spirv.CapabilityGeometry) {
		t.Error("Geometry enabled although Tessellation already satisfied the requirement")
	}
}

// TestAddRequirementFirstAvailable picks the first available alternative
// in declaration order.
func TestAddRequirementFirstAvailable(t *testing.T) {
	p := NewProfile(Options{
		Env:          EnvVulkan,
		Capabilities: []spirv.Capability{spirv.CapabilityTessellation},
	})
	a := NewAccumulator(p)
	req := spirv.Requirement{Alternatives: [][]spirv.Capability{
		{spirv.CapabilityGeometry},     // unavailable
		{spirv.CapabilityTessellation}, // available
	}}
	if err := a.AddRequirement(req); err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}
	if !a.HasCapability(spirv.CapabilityTessellation) {
		t.Error("Tessellation not enabled")
	}
}

// TestAddRequirementNoAlternative fails when nothing is available.
func TestAddRequirementNoAlternative(t *testing.T) {
	a := NewAccumulator(NewProfile(DefaultVulkanOptions()))
	req := spirv.Requirement{Alternatives: [][]spirv.Capability{
		{spirv.CapabilityGeometry},
		{spirv.CapabilityTessellation},
	}}
	err := a.AddRequirement(req)
	if err == nil || kindOf(t, err) != ErrUnmetCapability {
		t.Fatalf("AddRequirement = %v, want UnmetCapability", err)
	}
}

// TestExtensionVersionGate: below the core version the extension is
// required, at or above it nothing is.
func TestExtensionVersionGate(t *testing.T) {
	req := spirv.Requirement{
		Extensions: []spirv.Extension{spirv.ExtKHRNoIntegerWrapDecoration},
		MinVersion: spirv.Version1_4,
	}

	// 1.3 target with the extension available: extension required.
	a := NewAccumulator(NewProfile(Options{
		Env:        EnvVulkan,
		Version:    spirv.Version1_3,
		Extensions: []spirv.Extension{spirv.ExtKHRNoIntegerWrapDecoration},
	}))
	if err := a.AddRequirement(req); err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}
	if len(a.Extensions()) != 1 {
		t.Errorf("extensions = %v, want the wrap decoration extension", a.Extensions())
	}

	// 1.4 target: the feature is core, no extension needed.
	a = NewAccumulator(NewProfile(Options{Env: EnvVulkan, Version: spirv.Version1_4}))
	if err := a.AddRequirement(req); err != nil {
		t.Fatalf("AddRequirement at 1.4: %v", err)
	}
	if len(a.Extensions()) != 0 {
		t.Errorf("extensions at 1.4 = %v, want none", a.Extensions())
	}

	// 1.3 target without the extension: unmet.
	a = NewAccumulator(NewProfile(Options{Env: EnvVulkan, Version: spirv.Version1_3}))
	err := a.AddRequirement(req)
	if err == nil || kindOf(t, err) != ErrUnmetExtension {
		t.Fatalf("AddRequirement = %v, want UnmetExtension", err)
	}
}

// TestUngatedExtensionAlwaysRequired: a requirement with no core version
// needs its extension at any target version.
func TestUngatedExtensionAlwaysRequired(t *testing.T) {
	req := spirv.Requirement{Extensions: []spirv.Extension{spirv.ExtKHRPostDepthCoverage}}
	a := NewAccumulator(NewProfile(Options{
		Env:        EnvVulkan,
		Version:    spirv.Version1_6,
		Extensions: []spirv.Extension{spirv.ExtKHRPostDepthCoverage},
	}))
	if err := a.AddRequirement(req); err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}
	if len(a.Extensions()) != 1 {
		t.Errorf("extensions = %v", a.Extensions())
	}
}

// TestGatedCapabilityPullsExtension: enabling a gated capability on an
// old target records its providing extension.
func TestGatedCapabilityPullsExtension(t *testing.T) {
	a := NewAccumulator(NewProfile(Options{
		Env:          EnvVulkan,
		Version:      spirv.Version1_0,
		Capabilities: []spirv.Capability{spirv.CapabilityDrawParameters},
		Extensions:   []spirv.Extension{spirv.ExtKHRShaderDrawParameters},
	}))
	if err := a.AddCapability(spirv.CapabilityDrawParameters); err != nil {
		t.Fatalf("AddCapability: %v", err)
	}
	exts := a.Extensions()
	if len(exts) != 1 || exts[0] != spirv.ExtKHRShaderDrawParameters {
		t.Errorf("extensions = %v", exts)
	}

	// On a 1.3 target the capability is core: no extension.
	a = NewAccumulator(NewProfile(Options{
		Env:          EnvVulkan,
		Version:      spirv.Version1_3,
		Capabilities: []spirv.Capability{spirv.CapabilityDrawParameters},
	}))
	if err := a.AddCapability(spirv.CapabilityDrawParameters); err != nil {
		t.Fatalf("AddCapability at 1.3: %v", err)
	}
	if len(a.Extensions()) != 0 {
		t.Errorf("extensions at 1.3 = %v, want none", a.Extensions())
	}
}
