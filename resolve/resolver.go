package resolve

import (
	"errors"
	"fmt"

	"github.com/gogpu/spvreq/spirv"
)

// Resolver walks instructions and accumulates the capabilities and
// extensions they need on a target. OpCapability and OpExtension
// declarations are skipped: the resolver derives requirements from uses,
// so its result can be compared against what the module declares.
type Resolver struct {
	profile *Profile
	types   TypeLookup
	acc     *Accumulator
}

// NewResolver creates a resolver for the given target. types may be nil
// when the instruction stream contains no value-producing instructions
// whose result types matter (no function bodies).
func NewResolver(p *Profile, types TypeLookup) *Resolver {
	return &Resolver{
		profile: p,
		types:   types,
		acc:     NewAccumulator(p),
	}
}

// Instructions resolves a whole instruction stream. base is the stream's
// offset within the module, used for error references.
func (r *Resolver) Instructions(base int, instrs []spirv.Instruction) error {
	for i, in := range instrs {
		if err := r.Instruction(base+i, in); err != nil {
			return err
		}
	}
	return nil
}

// Instruction resolves a single instruction.
func (r *Resolver) Instruction(index int, in spirv.Instruction) error {
	err := r.resolve(in)
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) && re.Instr == nil {
		return NewErrorAt(re.Kind, re.Message, index, in.Op)
	}
	return err
}

func (r *Resolver) resolve(in spirv.Instruction) error {
	switch in.Op {
	case spirv.OpExtInstImport:
		if in.NumOperands() < 2 {
			return malformed(in, 2)
		}
		name, ok := in.LiteralString(1)
		if !ok {
			return malformed(in, 2)
		}
		set := spirv.ExtInstSet(name)
		if !r.profile.CanUseExtInstSet(set) {
			return NewError(ErrUnmetExtension,
				fmt.Sprintf("extended instruction set %q not available on %s target", name, r.profile.Env()))
		}
		if set == spirv.ExtInstSetAMDTrinaryMinmax {
			return r.acc.AddExtension(spirv.ExtAMDShaderTrinaryMinmax)
		}
		return nil

	case spirv.OpMemoryModel:
		if in.NumOperands() < 2 {
			return malformed(in, 2)
		}
		if err := r.addLookup(spirv.AddressingModelRequirement(spirv.AddressingModel(in.Operand(0)))); err != nil {
			return err
		}
		return r.addLookup(spirv.MemoryModelRequirement(spirv.MemoryModel(in.Operand(1))))

	case spirv.OpEntryPoint:
		if in.NumOperands() < 2 {
			return malformed(in, 2)
		}
		return r.addLookup(spirv.ExecutionModelRequirement(spirv.ExecutionModel(in.Operand(0))))

	case spirv.OpExecutionMode, spirv.OpExecutionModeId:
		if in.NumOperands() < 2 {
			return malformed(in, 2)
		}
		return r.addLookup(spirv.ExecutionModeRequirement(spirv.ExecutionMode(in.Operand(1))))

	case spirv.OpTypeInt:
		if in.NumOperands() < 3 {
			return malformed(in, 3)
		}
		switch in.Operand(1) {
		case 8:
			return r.acc.AddCapability(spirv.CapabilityInt8)
		case 16:
			return r.acc.AddCapability(spirv.CapabilityInt16)
		case 64:
			return r.acc.AddCapability(spirv.CapabilityInt64)
		}
		return nil

	case spirv.OpTypeFloat:
		if in.NumOperands() < 2 {
			return malformed(in, 2)
		}
		switch in.Operand(1) {
		case 16:
			return r.acc.AddCapability(spirv.CapabilityFloat16)
		case 64:
			return r.acc.AddCapability(spirv.CapabilityFloat64)
		}
		return nil

	case spirv.OpTypeVector:
		if in.NumOperands() < 3 {
			return malformed(in, 3)
		}
		switch in.Operand(2) {
		case 8, 16:
			return r.acc.AddCapability(spirv.CapabilityVector16)
		}
		return nil

	case spirv.OpTypePointer:
		if in.NumOperands() < 3 {
			return malformed(in, 3)
		}
		return r.addLookup(spirv.StorageClassRequirement(spirv.StorageClass(in.Operand(1))))

	case spirv.OpTypeForwardPointer:
		// Kernels resolve forward pointers through physical addressing;
		// shaders need physical-storage-buffer pointers.
		if r.profile.IsKernel() {
			return r.acc.AddCapability(spirv.CapabilityAddresses)
		}
		return r.acc.AddCapability(spirv.CapabilityPhysicalStorageBufferAddresses)

	case spirv.OpTypeMatrix:
		return r.acc.AddCapability(spirv.CapabilityMatrix)

	case spirv.OpTypeRuntimeArray:
		return r.acc.AddCapability(spirv.CapabilityShader)

	case spirv.OpTypeOpaque, spirv.OpTypeEvent:
		return r.acc.AddCapability(spirv.CapabilityKernel)

	case spirv.OpTypeDeviceEvent, spirv.OpTypeQueue:
		return r.acc.AddCapability(spirv.CapabilityDeviceEnqueue)

	case spirv.OpTypePipe, spirv.OpTypeReserveId:
		return r.acc.AddCapability(spirv.CapabilityPipes)

	case spirv.OpTypeSampler:
		if r.profile.IsKernel() {
			return r.acc.AddCapability(spirv.CapabilityImageBasic)
		}
		return nil

	case spirv.OpConstantSampler:
		return r.acc.AddCapability(spirv.CapabilityLiteralSampler)

	case spirv.OpTypeImage:
		return r.resolveImageType(in)

	case spirv.OpDecorate, spirv.OpDecorateId, spirv.OpDecorateString:
		return r.resolveDecoration(in, 1)

	case spirv.OpMemberDecorate, spirv.OpMemberDecorateString:
		return r.resolveDecoration(in, 2)

	case spirv.OpInBoundsPtrAccessChain:
		return r.acc.AddCapability(spirv.CapabilityAddresses)

	case spirv.OpSelect, spirv.OpPhi, spirv.OpFunctionCall, spirv.OpPtrAccessChain,
		spirv.OpLoad, spirv.OpConstantNull:
		return r.resolvePointerResult(in)
	}
	return nil
}

// resolveImageType applies the OpTypeImage decision table: the format
// requirement, the dimension rules, and the kernel image capabilities for
// kernel targets. A sampled operand of 2 marks the type as used without a
// sampler, which selects the storage-image capability per dimension; 0
// and 1 both take the sampled-image path.
//
// Operand layout: result, sampled type, dim, depth, arrayed, ms, sampled,
// format, then an optional access qualifier.
func (r *Resolver) resolveImageType(in spirv.Instruction) error {
	if in.NumOperands() < 8 {
		return malformed(in, 8)
	}
	var (
		dim       = spirv.Dim(in.Operand(2))
		arrayed   = in.Operand(4) == 1
		ms        = in.Operand(5) == 1
		noSampler = in.Operand(6) == 2
		format    = spirv.ImageFormat(in.Operand(7))
	)
	if err := r.addLookup(spirv.ImageFormatRequirement(format)); err != nil {
		return err
	}

	pick := func(storage, withSampler spirv.Capability) error {
		if noSampler {
			return r.acc.AddCapability(storage)
		}
		return r.acc.AddCapability(withSampler)
	}
	switch dim {
	case spirv.Dim1D:
		if err := pick(spirv.CapabilityImage1D, spirv.CapabilitySampled1D); err != nil {
			return err
		}
	case spirv.Dim2D:
		if ms && noSampler {
			if err := r.acc.AddCapability(spirv.CapabilityImageMSArray); err != nil {
				return err
			}
		}
	case spirv.DimCube:
		if err := r.acc.AddCapability(spirv.CapabilityShader); err != nil {
			return err
		}
		if arrayed {
			if err := pick(spirv.CapabilityImageCubeArray, spirv.CapabilitySampledCubeArray); err != nil {
				return err
			}
		}
	case spirv.DimRect:
		if err := pick(spirv.CapabilityImageRect, spirv.CapabilitySampledRect); err != nil {
			return err
		}
	case spirv.DimBuffer:
		if err := pick(spirv.CapabilityImageBuffer, spirv.CapabilitySampledBuffer); err != nil {
			return err
		}
	case spirv.DimSubpassData:
		if err := r.acc.AddCapability(spirv.CapabilityInputAttachment); err != nil {
			return err
		}
	}

	if r.profile.IsKernel() {
		if in.NumOperands() > 8 && spirv.AccessQualifier(in.Operand(8)) == spirv.AccessQualifierReadWrite {
			return r.acc.AddCapability(spirv.CapabilityImageReadWrite)
		}
		return r.acc.AddCapability(spirv.CapabilityImageBasic)
	}
	return nil
}

// resolveDecoration handles the decorate family. decIndex is the operand
// index of the decoration: 1 for the plain forms, 2 for member forms.
func (r *Resolver) resolveDecoration(in spirv.Instruction, decIndex int) error {
	if in.NumOperands() < decIndex+1 {
		return malformed(in, decIndex+1)
	}
	dec := spirv.Decoration(in.Operand(decIndex))
	if dec == spirv.DecorationBuiltIn {
		if in.NumOperands() < decIndex+2 {
			return malformed(in, decIndex+2)
		}
		b := spirv.BuiltIn(in.Operand(decIndex + 1))
		if err := r.addLookup(spirv.BuiltInRequirement(b)); err != nil {
			return err
		}
	}
	return r.addLookup(spirv.DecorationRequirement(dec))
}

// resolvePointerResult applies the variable-pointer rule: under logical
// addressing, producing a pointer-typed value with one of the eligible
// opcodes needs VariablePointers, whatever the pointee's storage class.
func (r *Resolver) resolvePointerResult(in spirv.Instruction) error {
	if !r.profile.IsLogical() || r.types == nil {
		return nil
	}
	id := in.ResultTypeID()
	if id == 0 {
		return nil
	}
	def, ok := r.types.Type(id)
	if !ok || def.Op != spirv.OpTypePointer {
		return nil
	}
	return r.acc.AddCapability(spirv.CapabilityVariablePointers)
}

func (r *Resolver) addLookup(req spirv.Requirement, ok bool) error {
	if !ok {
		return nil
	}
	return r.acc.AddRequirement(req)
}

func malformed(in spirv.Instruction, want int) error {
	return NewError(ErrMalformedInstruction,
		fmt.Sprintf("%s has %d operand words, need at least %d", in.Op, in.NumOperands(), want))
}

// Result returns the resolved requirement sets in discovery order.
func (r *Resolver) Result() *Resolution {
	return &Resolution{
		Capabilities: r.acc.Capabilities(),
		Extensions:   r.acc.Extensions(),
	}
}

// Resolution is a resolved set of module-level declarations.
type Resolution struct {
	Capabilities []spirv.Capability
	Extensions   []spirv.Extension
}

// Declarations renders the resolution as the OpCapability and OpExtension
// instructions that belong at the top of a module.
func (r *Resolution) Declarations() []spirv.Instruction {
	out := make([]spirv.Instruction, 0, len(r.Capabilities)+len(r.Extensions))
	for _, c := range r.Capabilities {
		out = append(out, spirv.Instruction{
			Op:       spirv.OpCapability,
			Operands: []uint32{uint32(c)},
		})
	}
	for _, e := range r.Extensions {
		out = append(out, spirv.Instruction{
			Op:       spirv.OpExtension,
			Operands: spirv.LiteralWords(string(e)),
		})
	}
	return out
}
