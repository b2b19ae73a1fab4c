package resolve

import "github.com/gogpu/spvreq/spirv"

// Environment identifies the client API consuming the module.
type Environment uint8

const (
	// EnvVulkan targets a Vulkan implementation.
	EnvVulkan Environment = iota

	// EnvOpenCL targets an OpenCL implementation.
	EnvOpenCL
)

// String returns a human-readable environment name.
func (e Environment) String() string {
	switch e {
	case EnvVulkan:
		return "vulkan"
	case EnvOpenCL:
		return "opencl"
	default:
		return "unknown"
	}
}

// Options configures a target Profile.
type Options struct {
	// Env is the client API.
	Env Environment

	// Version is the SPIR-V version the target consumes. Zero means
	// unspecified and is treated as current: it satisfies any version
	// gate in the metadata tables.
	Version spirv.Version

	// ClientVersion is the client API version (Vulkan or OpenCL,
	// depending on Env). Zero means unspecified.
	ClientVersion spirv.Version

	// Logical selects the Logical addressing model. Defaults to true
	// for Vulkan and false for OpenCL; set LogicalSet to override.
	Logical    bool
	LogicalSet bool

	// FullProfile marks an OpenCL full-profile device (as opposed to
	// embedded profile). Full profile implies 64-bit integer support.
	FullProfile bool

	// ImageSupport marks an OpenCL device with image support.
	ImageSupport bool

	// Extensions lists the SPIR-V extensions the target supports.
	Extensions []spirv.Extension

	// Capabilities lists capabilities available beyond the
	// environment's baseline.
	Capabilities []spirv.Capability
}

// DefaultVulkanOptions returns options for a current Vulkan target.
func DefaultVulkanOptions() Options {
	return Options{
		Env: EnvVulkan,
	}
}

// DefaultOpenCLOptions returns options for a current full-profile OpenCL
// target with image support.
func DefaultOpenCLOptions() Options {
	return Options{
		Env:          EnvOpenCL,
		FullProfile:  true,
		ImageSupport: true,
	}
}

// Profile is a resolved target environment: the capabilities and
// extensions available on it, and the predicates the per-instruction
// rules consult. Construct with NewProfile; a Profile is immutable and
// safe for concurrent use.
type Profile struct {
	env     Environment
	version spirv.Version
	client  spirv.Version
	logical bool

	caps    *capabilitySet
	exts    *extensionSet
	extSets map[spirv.ExtInstSet]struct{}
}

// NewProfile builds a Profile from opts, seeding the available capability
// set with the environment's baseline.
func NewProfile(opts Options) *Profile {
	p := &Profile{
		env:     opts.Env,
		version: opts.Version,
		client:  opts.ClientVersion,
		caps:    newCapabilitySet(),
		exts:    newExtensionSet(),
	}
	if opts.LogicalSet {
		p.logical = opts.Logical
	} else {
		p.logical = opts.Env == EnvVulkan
	}

	switch opts.Env {
	case EnvVulkan:
		p.addCaps(
			spirv.CapabilityMatrix,
			spirv.CapabilityShader,
			spirv.CapabilityInputAttachment,
			spirv.CapabilitySampled1D,
			spirv.CapabilityImage1D,
			spirv.CapabilitySampledBuffer,
			spirv.CapabilityImageBuffer,
			spirv.CapabilityImageQuery,
			spirv.CapabilityDerivativeControl,
		)
	case EnvOpenCL:
		p.addCaps(
			spirv.CapabilityAddresses,
			spirv.CapabilityFloat16Buffer,
			spirv.CapabilityInt16,
			spirv.CapabilityInt8,
			spirv.CapabilityKernel,
			spirv.CapabilityLinkage,
			spirv.CapabilityVector16,
			spirv.CapabilityFloat16,
			spirv.CapabilityFloat64,
		)
		if opts.FullProfile {
			p.addCaps(spirv.CapabilityInt64)
		}
		if opts.ImageSupport {
			p.addCaps(
				spirv.CapabilityImageBasic,
				spirv.CapabilityLiteralSampler,
				spirv.CapabilitySampled1D,
				spirv.CapabilityImage1D,
				spirv.CapabilitySampledBuffer,
				spirv.CapabilityImageBuffer,
			)
			if p.client.AtLeast(spirv.Version{Major: 2}) {
				p.addCaps(spirv.CapabilityImageReadWrite)
			}
		}
		if p.client.AtLeast(spirv.Version{Major: 2}) {
			p.addCaps(
				spirv.CapabilityDeviceEnqueue,
				spirv.CapabilityGenericPointer,
				spirv.CapabilityGroups,
				spirv.CapabilityPipes,
			)
		}
		if p.version.AtLeast(spirv.Version1_1) && p.client.AtLeast(spirv.Version{Major: 2, Minor: 2}) {
			p.addCaps(spirv.CapabilityPipeStorage)
		}
	}

	p.addCaps(opts.Capabilities...)
	for _, e := range opts.Extensions {
		p.exts.add(e)
	}

	p.extSets = map[spirv.ExtInstSet]struct{}{}
	if p.env == EnvVulkan {
		p.extSets[spirv.ExtInstSetGLSL450] = struct{}{}
	} else {
		p.extSets[spirv.ExtInstSetOpenCL] = struct{}{}
	}
	// Extensions can bring their own instruction sets.
	if p.exts.contains(spirv.ExtAMDShaderTrinaryMinmax) {
		p.extSets[spirv.ExtInstSetAMDTrinaryMinmax] = struct{}{}
	}
	return p
}

// addCaps makes each capability available together with its transitive
// prerequisites.
func (p *Profile) addCaps(caps ...spirv.Capability) {
	for _, c := range caps {
		p.caps.enable(c)
	}
}

// Env returns the client API.
func (p *Profile) Env() Environment { return p.env }

// Version returns the SPIR-V version the target consumes.
func (p *Profile) Version() spirv.Version { return p.version }

// ClientVersion returns the client API version.
func (p *Profile) ClientVersion() spirv.Version { return p.client }

// IsLogical reports whether the target uses the Logical addressing model.
func (p *Profile) IsLogical() bool { return p.logical }

// IsKernel reports whether modules for this target are kernels: OpenCL
// targets, and any target with a physical addressing model.
func (p *Profile) IsKernel() bool {
	return p.env == EnvOpenCL || !p.logical
}

// IsShader reports whether modules for this target are shaders.
func (p *Profile) IsShader() bool {
	return p.env == EnvVulkan || p.logical
}

// CanUseCapability reports whether c is available on the target.
func (p *Profile) CanUseCapability(c spirv.Capability) bool {
	return p.caps.contains(c)
}

// CanUseExtension reports whether e is supported by the target.
func (p *Profile) CanUseExtension(e spirv.Extension) bool {
	return p.exts.contains(e)
}

// CanUseExtInstSet reports whether the extended instruction set s can be
// imported on the target. Each environment carries its standard set;
// further sets come from supported extensions.
func (p *Profile) CanUseExtInstSet(s spirv.ExtInstSet) bool {
	_, ok := p.extSets[s]
	return ok
}

// CanDirectlyComparePointers reports whether pointer values can be
// compared without variable-pointer support, core since SPIR-V 1.4.
func (p *Profile) CanDirectlyComparePointers() bool {
	return p.version.AtLeast(spirv.Version1_4)
}

// AvailableCapabilities returns the available capability set in the order
// it was built.
func (p *Profile) AvailableCapabilities() []spirv.Capability {
	return p.caps.list()
}

// SupportedExtensions returns the supported extension set.
func (p *Profile) SupportedExtensions() []spirv.Extension {
	return p.exts.list()
}
