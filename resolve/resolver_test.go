package resolve

import (
	"errors"
	"testing"

	"github.com/gogpu/spvreq/spirv"
)

// resolveOne feeds a single instruction through a fresh resolver.
func resolveOne(t *testing.T, p *Profile, types TypeLookup, in spirv.Instruction) (*Resolution, error) {
	t.Helper()
	r := NewResolver(p, types)
	if err := r.Instruction(0, in); err != nil {
		return nil, err
	}
	return r.Result(), nil
}

func mustResolveOne(t *testing.T, p *Profile, types TypeLookup, in spirv.Instruction) *Resolution {
	t.Helper()
	res, err := resolveOne(t, p, types, in)
	if err != nil {
		t.Fatalf("resolve %s: %v", in.Op, err)
	}
	return res
}

func hasCap(res *Resolution, c spirv.Capability) bool {
	for _, got := range res.Capabilities {
		if got == c {
			return true
		}
	}
	return false
}

// openclProfile is a permissive OpenCL target for opcode rule tests.
func openclProfile(extra ...spirv.Capability) *Profile {
	opts := DefaultOpenCLOptions()
	opts.ClientVersion = spirv.Version{Major: 2, Minor: 2}
	opts.Version = spirv.Version1_2
	opts.Capabilities = extra
	return NewProfile(opts)
}

// TestResolveTypeInt covers the width rules, including the no-op 32.
func TestResolveTypeInt(t *testing.T) {
	p := openclProfile()
	tests := []struct {
		width uint32
		want  spirv.Capability
	}{
		{8, spirv.CapabilityInt8},
		{16, spirv.CapabilityInt16},
		{64, spirv.CapabilityInt64},
	}
	for _, tt := range tests {
		res := mustResolveOne(t, p, nil, spirv.Instruction{
			Op:       spirv.OpTypeInt,
			Operands: []uint32{1, tt.width, 0},
		})
		if !hasCap(res, tt.want) {
			t.Errorf("width %d: capabilities = %v, want %s", tt.width, res.Capabilities, tt.want)
		}
	}
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpTypeInt,
		Operands: []uint32{1, 32, 1},
	})
	if len(res.Capabilities) != 0 {
		t.Errorf("32-bit int: capabilities = %v, want none", res.Capabilities)
	}
}

// TestResolveTypeFloat covers 16 and 64 bit widths.
func TestResolveTypeFloat(t *testing.T) {
	p := openclProfile()
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpTypeFloat,
		Operands: []uint32{1, 16},
	})
	if !hasCap(res, spirv.CapabilityFloat16) {
		t.Errorf("half: %v", res.Capabilities)
	}
	res = mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpTypeFloat,
		Operands: []uint32{1, 64},
	})
	if !hasCap(res, spirv.CapabilityFloat64) {
		t.Errorf("double: %v", res.Capabilities)
	}
}

// TestResolveTypeVector: wide vectors need Vector16.
func TestResolveTypeVector(t *testing.T) {
	p := openclProfile()
	for _, n := range []uint32{8, 16} {
		res := mustResolveOne(t, p, nil, spirv.Instruction{
			Op:       spirv.OpTypeVector,
			Operands: []uint32{2, 1, n},
		})
		if !hasCap(res, spirv.CapabilityVector16) {
			t.Errorf("vec%d: %v", n, res.Capabilities)
		}
	}
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpTypeVector,
		Operands: []uint32{2, 1, 4},
	})
	if len(res.Capabilities) != 0 {
		t.Errorf("vec4: %v", res.Capabilities)
	}
}

// TestResolveBuiltInDecorationChain is the two-level lookup: decorating
// with BuiltIn FragCoord pulls the built-in's requirement, which closes
// over Shader's prerequisite Matrix.
func TestResolveBuiltInDecorationChain(t *testing.T) {
	p := NewProfile(DefaultVulkanOptions())
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpDecorate,
		Operands: []uint32{5, uint32(spirv.DecorationBuiltIn), uint32(spirv.BuiltInFragCoord)},
	})
	if !hasCap(res, spirv.CapabilityShader) || !hasCap(res, spirv.CapabilityMatrix) {
		t.Errorf("capabilities = %v, want Shader and Matrix", res.Capabilities)
	}
}

// TestResolveMemberDecoration reads the decoration one operand later.
func TestResolveMemberDecoration(t *testing.T) {
	p := NewProfile(Options{
		Env:          EnvVulkan,
		Capabilities: []spirv.Capability{spirv.CapabilityTessellation},
	})
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpMemberDecorate,
		Operands: []uint32{9, 0, uint32(spirv.DecorationPatch)},
	})
	if !hasCap(res, spirv.CapabilityTessellation) {
		t.Errorf("capabilities = %v, want Tessellation", res.Capabilities)
	}
}

// TestResolveDecorationUnmet: a decoration needing an unavailable
// capability reports UnmetCapability with an instruction reference.
func TestResolveDecorationUnmet(t *testing.T) {
	p := NewProfile(DefaultVulkanOptions()) // no Tessellation
	_, err := resolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpDecorate,
		Operands: []uint32{9, uint32(spirv.DecorationPatch)},
	})
	var re *Error
	if !errors.As(err, &re) || !re.IsUnmetCapability() {
		t.Fatalf("err = %v, want UnmetCapability", err)
	}
	if re.Instr == nil || re.Instr.Op != spirv.OpDecorate {
		t.Errorf("instruction ref = %+v", re.Instr)
	}
}

// TestResolveExecutionModel maps entry points to stage capabilities.
func TestResolveExecutionModel(t *testing.T) {
	p := NewProfile(DefaultVulkanOptions())
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpEntryPoint,
		Operands: append([]uint32{uint32(spirv.ExecutionModelFragment), 4}, spirv.LiteralWords("main")...),
	})
	if !hasCap(res, spirv.CapabilityShader) {
		t.Errorf("fragment entry point: %v", res.Capabilities)
	}

	_, err := resolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpEntryPoint,
		Operands: append([]uint32{uint32(spirv.ExecutionModelKernel), 4}, spirv.LiteralWords("main")...),
	})
	if err == nil {
		t.Error("Kernel entry point on Vulkan succeeded")
	}
}

// TestResolveMemoryModel requires both operand models.
func TestResolveMemoryModel(t *testing.T) {
	p := openclProfile()
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpMemoryModel,
		Operands: []uint32{uint32(spirv.AddressingModelPhysical64), uint32(spirv.MemoryModelOpenCL)},
	})
	if !hasCap(res, spirv.CapabilityAddresses) || !hasCap(res, spirv.CapabilityKernel) {
		t.Errorf("capabilities = %v, want Addresses and Kernel", res.Capabilities)
	}
}

// TestResolveImageTable exercises the OpTypeImage decision table on a
// shader target.
func TestResolveImageTable(t *testing.T) {
	p := NewProfile(Options{
		Env: EnvVulkan,
		Capabilities: []spirv.Capability{
			spirv.CapabilitySampledCubeArray,
			spirv.CapabilityImageCubeArray,
			spirv.CapabilityImageMSArray,
			spirv.CapabilityStorageImageExtendedFormats,
		},
	})

	// Operand layout: result, sampled type, dim, depth, arrayed, ms,
	// sampled, format.
	img := func(dim spirv.Dim, arrayed, ms, sampled uint32, format spirv.ImageFormat) spirv.Instruction {
		return spirv.Instruction{
			Op:       spirv.OpTypeImage,
			Operands: []uint32{10, 1, uint32(dim), 0, arrayed, ms, sampled, uint32(format)},
		}
	}

	tests := []struct {
		name string
		in   spirv.Instruction
		want spirv.Capability
	}{
		{"sampled 1D", img(spirv.Dim1D, 0, 0, 1, spirv.ImageFormatUnknown), spirv.CapabilitySampled1D},
		{"unknown-usage 1D", img(spirv.Dim1D, 0, 0, 0, spirv.ImageFormatUnknown), spirv.CapabilitySampled1D},
		{"storage 1D", img(spirv.Dim1D, 0, 0, 2, spirv.ImageFormatUnknown), spirv.CapabilityImage1D},
		{"sampled cube array", img(spirv.DimCube, 1, 0, 1, spirv.ImageFormatUnknown), spirv.CapabilitySampledCubeArray},
		{"storage cube array", img(spirv.DimCube, 1, 0, 2, spirv.ImageFormatUnknown), spirv.CapabilityImageCubeArray},
		{"sampled buffer", img(spirv.DimBuffer, 0, 0, 1, spirv.ImageFormatUnknown), spirv.CapabilitySampledBuffer},
		{"storage buffer image", img(spirv.DimBuffer, 0, 0, 2, spirv.ImageFormatUnknown), spirv.CapabilityImageBuffer},
		{"subpass data", img(spirv.DimSubpassData, 0, 0, 2, spirv.ImageFormatUnknown), spirv.CapabilityInputAttachment},
		{"multisampled storage 2D", img(spirv.Dim2D, 0, 1, 2, spirv.ImageFormatUnknown), spirv.CapabilityImageMSArray},
		{"extended format", img(spirv.Dim2D, 0, 0, 2, spirv.ImageFormatRg16f), spirv.CapabilityStorageImageExtendedFormats},
	}
	for _, tt := range tests {
		res := mustResolveOne(t, p, nil, tt.in)
		if !hasCap(res, tt.want) {
			t.Errorf("%s: capabilities = %v, want %s", tt.name, res.Capabilities, tt.want)
		}
	}

	// Only a storage usage picks the storage-image capability: an
	// unspecified usage stays on the sampled path.
	res := mustResolveOne(t, p, nil, img(spirv.Dim1D, 0, 0, 0, spirv.ImageFormatUnknown))
	if hasCap(res, spirv.CapabilityImage1D) {
		t.Errorf("unknown-usage 1D: capabilities = %v, must not include Image1D", res.Capabilities)
	}

	// ImageMSArray applies to 2D storage images only; a sampled
	// multisampled array needs nothing extra.
	res = mustResolveOne(t, p, nil, img(spirv.Dim2D, 1, 1, 1, spirv.ImageFormatUnknown))
	if hasCap(res, spirv.CapabilityImageMSArray) {
		t.Errorf("sampled ms array: capabilities = %v, must not include ImageMSArray", res.Capabilities)
	}
	res = mustResolveOne(t, p, nil, img(spirv.DimBuffer, 1, 1, 2, spirv.ImageFormatUnknown))
	if hasCap(res, spirv.CapabilityImageMSArray) {
		t.Errorf("ms buffer image: capabilities = %v, must not include ImageMSArray", res.Capabilities)
	}
}

// TestResolveImageKernel: kernel targets add ImageBasic, or ImageReadWrite
// for read_write access, on top of the dimension rules.
func TestResolveImageKernel(t *testing.T) {
	p := openclProfile()
	res := mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpTypeImage,
		Operands: []uint32{10, 1, uint32(spirv.Dim2D), 0, 0, 0, 0, 0, uint32(spirv.AccessQualifierReadWrite)},
	})
	if !hasCap(res, spirv.CapabilityImageBasic) || !hasCap(res, spirv.CapabilityImageReadWrite) {
		t.Errorf("capabilities = %v", res.Capabilities)
	}
	if !hasCap(res, spirv.CapabilityKernel) {
		t.Error("ImageBasic closure should include Kernel")
	}

	// The dimension rules run on kernel targets too: a buffer-dim storage
	// image needs ImageBuffer.
	res = mustResolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpTypeImage,
		Operands: []uint32{10, 1, uint32(spirv.DimBuffer), 0, 0, 0, 2, 0},
	})
	if !hasCap(res, spirv.CapabilityImageBuffer) {
		t.Errorf("buffer-dim kernel image: capabilities = %v, want ImageBuffer", res.Capabilities)
	}
	if !hasCap(res, spirv.CapabilityImageBasic) {
		t.Errorf("buffer-dim kernel image: capabilities = %v, want ImageBasic", res.Capabilities)
	}
}

// TestResolveImageMalformed: fewer than eight operand words is an error.
func TestResolveImageMalformed(t *testing.T) {
	p := NewProfile(DefaultVulkanOptions())
	_, err := resolveOne(t, p, nil, spirv.Instruction{
		Op:       spirv.OpTypeImage,
		Operands: []uint32{10, 1, 0},
	})
	var re *Error
	if !errors.As(err, &re) || re.Kind != ErrMalformedInstruction {
		t.Fatalf("err = %v, want MalformedInstruction", err)
	}
}

// TestResolveVariablePointers: a pointer-producing OpSelect under logical
// addressing needs VariablePointers, whatever the pointee's storage class.
func TestResolveVariablePointers(t *testing.T) {
	types := NewTypeRegistry([]spirv.Instruction{
		{Op: spirv.OpTypeInt, Operands: []uint32{1, 32, 0}},
		{Op: spirv.OpTypePointer, Operands: []uint32{2, uint32(spirv.StorageClassStorageBuffer), 1}},
		{Op: spirv.OpTypePointer, Operands: []uint32{3, uint32(spirv.StorageClassWorkgroup), 1}},
		{Op: spirv.OpTypePointer, Operands: []uint32{4, uint32(spirv.StorageClassFunction), 1}},
	})
	sel := func(typeID uint32) spirv.Instruction {
		return spirv.Instruction{Op: spirv.OpSelect, Operands: []uint32{typeID, 9, 5, 6, 7}}
	}

	logical := NewProfile(Options{
		Env: EnvVulkan,
		Capabilities: []spirv.Capability{
			spirv.CapabilityVariablePointers,
		},
		Extensions: []spirv.Extension{spirv.ExtKHRVariablePointers},
	})

	for _, typeID := range []uint32{2, 3, 4} {
		res := mustResolveOne(t, logical, types, sel(typeID))
		if !hasCap(res, spirv.CapabilityVariablePointers) {
			t.Errorf("pointer select (type %d): %v", typeID, res.Capabilities)
		}
	}
	// The capability closure pulls in the storage-buffer form.
	res := mustResolveOne(t, logical, types, sel(2))
	if !hasCap(res, spirv.CapabilityVariablePointersStorageBuffer) {
		t.Errorf("storage buffer select: %v", res.Capabilities)
	}

	// Selecting a non-pointer value needs nothing.
	res = mustResolveOne(t, logical, types, sel(1))
	if len(res.Capabilities) != 0 {
		t.Errorf("int select: %v", res.Capabilities)
	}

	// Physical addressing never needs variable pointers.
	physical := openclProfile()
	res = mustResolveOne(t, physical, types, sel(2))
	if len(res.Capabilities) != 0 {
		t.Errorf("physical select: %v", res.Capabilities)
	}
}

// TestResolvePtrAccessChain follows the variable-pointer rule: nothing
// under physical addressing, VariablePointers under logical.
func TestResolvePtrAccessChain(t *testing.T) {
	types := NewTypeRegistry([]spirv.Instruction{
		{Op: spirv.OpTypeInt, Operands: []uint32{1, 32, 0}},
		{Op: spirv.OpTypePointer, Operands: []uint32{2, uint32(spirv.StorageClassStorageBuffer), 1}},
	})
	in := spirv.Instruction{Op: spirv.OpPtrAccessChain, Operands: []uint32{2, 9, 5, 6}}

	res := mustResolveOne(t, openclProfile(), types, in)
	if len(res.Capabilities) != 0 {
		t.Errorf("physical: %v, want none", res.Capabilities)
	}

	logical := NewProfile(Options{
		Env:          EnvVulkan,
		Capabilities: []spirv.Capability{spirv.CapabilityVariablePointers},
		Extensions:   []spirv.Extension{spirv.ExtKHRVariablePointers},
	})
	res = mustResolveOne(t, logical, types, in)
	if !hasCap(res, spirv.CapabilityVariablePointers) {
		t.Errorf("logical: %v", res.Capabilities)
	}
	if hasCap(res, spirv.CapabilityAddresses) {
		t.Error("logical target required Addresses")
	}
}

// TestResolveForwardPointer: Addresses on kernel targets,
// PhysicalStorageBufferAddresses on shader targets.
func TestResolveForwardPointer(t *testing.T) {
	in := spirv.Instruction{Op: spirv.OpTypeForwardPointer, Operands: []uint32{2, uint32(spirv.StorageClassCrossWorkgroup)}}

	res := mustResolveOne(t, openclProfile(), nil, in)
	if !hasCap(res, spirv.CapabilityAddresses) {
		t.Errorf("kernel: %v, want Addresses", res.Capabilities)
	}

	shader := NewProfile(Options{
		Env:          EnvVulkan,
		Capabilities: []spirv.Capability{spirv.CapabilityPhysicalStorageBufferAddresses},
	})
	res = mustResolveOne(t, shader, nil, in)
	if !hasCap(res, spirv.CapabilityPhysicalStorageBufferAddresses) {
		t.Errorf("shader: %v, want PhysicalStorageBufferAddresses", res.Capabilities)
	}

	// A plain Vulkan target has no physical-storage-buffer support.
	if _, err := resolveOne(t, NewProfile(DefaultVulkanOptions()), nil, in); err == nil {
		t.Error("forward pointer on plain Vulkan target succeeded")
	}
}

// TestResolveExtInstImport: each environment accepts its own standard
// instruction set, and extensions bring their own.
func TestResolveExtInstImport(t *testing.T) {
	imp := func(set spirv.ExtInstSet) spirv.Instruction {
		return spirv.Instruction{
			Op:       spirv.OpExtInstImport,
			Operands: append([]uint32{1}, spirv.LiteralWords(string(set))...),
		}
	}

	vk := NewProfile(DefaultVulkanOptions())
	res := mustResolveOne(t, vk, nil, imp(spirv.ExtInstSetGLSL450))
	if len(res.Capabilities) != 0 || len(res.Extensions) != 0 {
		t.Errorf("GLSL.std.450 on Vulkan: %+v", res)
	}

	_, err := resolveOne(t, vk, nil, imp(spirv.ExtInstSetOpenCL))
	var re *Error
	if !errors.As(err, &re) || !re.IsUnmetExtension() {
		t.Fatalf("OpenCL.std on Vulkan: err = %v, want UnmetExtension", err)
	}
	if re.Instr == nil || re.Instr.Op != spirv.OpExtInstImport {
		t.Errorf("instruction ref = %+v", re.Instr)
	}

	cl := openclProfile()
	if _, err := resolveOne(t, cl, nil, imp(spirv.ExtInstSetGLSL450)); err == nil {
		t.Error("GLSL.std.450 on OpenCL succeeded")
	}
	res = mustResolveOne(t, cl, nil, imp(spirv.ExtInstSetOpenCL))
	if len(res.Extensions) != 0 {
		t.Errorf("OpenCL.std import recorded extensions: %v", res.Extensions)
	}

	opts := DefaultVulkanOptions()
	opts.Extensions = []spirv.Extension{spirv.ExtAMDShaderTrinaryMinmax}
	amd := NewProfile(opts)
	res = mustResolveOne(t, amd, nil, imp(spirv.ExtInstSetAMDTrinaryMinmax))
	if len(res.Extensions) != 1 || res.Extensions[0] != spirv.ExtAMDShaderTrinaryMinmax {
		t.Errorf("AMD trinary minmax import: extensions = %v", res.Extensions)
	}
}

// TestResolveFixedTypeCaps covers the fixed opcode-to-capability rows.
func TestResolveFixedTypeCaps(t *testing.T) {
	p := openclProfile()
	tests := []struct {
		op   spirv.OpCode
		want spirv.Capability
	}{
		{spirv.OpTypeOpaque, spirv.CapabilityKernel},
		{spirv.OpTypeEvent, spirv.CapabilityKernel},
		{spirv.OpTypeDeviceEvent, spirv.CapabilityDeviceEnqueue},
		{spirv.OpTypeQueue, spirv.CapabilityDeviceEnqueue},
		{spirv.OpTypePipe, spirv.CapabilityPipes},
		{spirv.OpTypeReserveId, spirv.CapabilityPipes},
		{spirv.OpConstantSampler, spirv.CapabilityLiteralSampler},
		{spirv.OpTypeSampler, spirv.CapabilityImageBasic},
		{spirv.OpInBoundsPtrAccessChain, spirv.CapabilityAddresses},
	}
	for _, tt := range tests {
		res := mustResolveOne(t, p, nil, spirv.Instruction{Op: tt.op, Operands: []uint32{1, 2, 3, 4}})
		if !hasCap(res, tt.want) {
			t.Errorf("%s: capabilities = %v, want %s", tt.op, res.Capabilities, tt.want)
		}
	}

	vk := NewProfile(DefaultVulkanOptions())
	res := mustResolveOne(t, vk, nil, spirv.Instruction{Op: spirv.OpTypeMatrix, Operands: []uint32{1, 2, 4}})
	if !hasCap(res, spirv.CapabilityMatrix) {
		t.Errorf("OpTypeMatrix: %v", res.Capabilities)
	}
	res = mustResolveOne(t, vk, nil, spirv.Instruction{Op: spirv.OpTypeRuntimeArray, Operands: []uint32{1, 2}})
	if !hasCap(res, spirv.CapabilityShader) {
		t.Errorf("OpTypeRuntimeArray: %v", res.Capabilities)
	}

	// Samplers carry no requirement on shader targets.
	res = mustResolveOne(t, vk, nil, spirv.Instruction{Op: spirv.OpTypeSampler, Operands: []uint32{1}})
	if len(res.Capabilities) != 0 {
		t.Errorf("shader sampler: %v", res.Capabilities)
	}
}

// TestResolverIdempotent resolves the same stream twice into one
// resolver; the result must match a single pass.
func TestResolverIdempotent(t *testing.T) {
	p := NewProfile(DefaultVulkanOptions())
	instrs := []spirv.Instruction{
		{Op: spirv.OpTypeMatrix, Operands: []uint32{1, 2, 4}},
		{Op: spirv.OpDecorate, Operands: []uint32{5, uint32(spirv.DecorationBuiltIn), uint32(spirv.BuiltInPosition)}},
	}
	once := NewResolver(p, nil)
	if err := once.Instructions(0, instrs); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	twice := NewResolver(p, nil)
	for i := 0; i < 2; i++ {
		if err := twice.Instructions(0, instrs); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	a, b := once.Result(), twice.Result()
	if len(a.Capabilities) != len(b.Capabilities) {
		t.Errorf("single pass %v, double pass %v", a.Capabilities, b.Capabilities)
	}
}

// TestDeclarations renders a resolution back to instructions.
func TestDeclarations(t *testing.T) {
	res := &Resolution{
		Capabilities: []spirv.Capability{spirv.CapabilityShader},
		Extensions:   []spirv.Extension{spirv.ExtKHR16BitStorage},
	}
	decls := res.Declarations()
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	if decls[0].Op != spirv.OpCapability || decls[0].Operand(0) != uint32(spirv.CapabilityShader) {
		t.Errorf("declaration 0 = %+v", decls[0])
	}
	name, ok := decls[1].LiteralString(0)
	if decls[1].Op != spirv.OpExtension || !ok || name != "SPV_KHR_16bit_storage" {
		t.Errorf("declaration 1 = %+v", decls[1])
	}
}
