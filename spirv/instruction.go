package spirv

import "unicode/utf8"

// Instruction is a decoded SPIR-V instruction: an opcode and the operand
// words that followed it. Operand index 0 is the first word after the
// opcode word, matching the layout in the binary.
type Instruction struct {
	Op       OpCode
	Operands []uint32
}

// NumOperands returns the number of operand words.
func (in Instruction) NumOperands() int {
	return len(in.Operands)
}

// Operand returns operand word i, or 0 if the instruction is too short.
// Callers that must distinguish a missing operand from a zero one check
// NumOperands first.
func (in Instruction) Operand(i int) uint32 {
	if i < 0 || i >= len(in.Operands) {
		return 0
	}
	return in.Operands[i]
}

// resultOperandIndex returns the operand index of the result id for
// opcodes the resolver cares about, or -1 when the opcode has none.
func (in Instruction) resultOperandIndex() int {
	switch in.Op {
	case OpTypeVoid, OpTypeBool, OpTypeInt, OpTypeFloat, OpTypeVector,
		OpTypeMatrix, OpTypeImage, OpTypeSampler, OpTypeSampledImage,
		OpTypeArray, OpTypeRuntimeArray, OpTypeStruct, OpTypeOpaque,
		OpTypePointer, OpTypeFunction, OpTypeEvent, OpTypeDeviceEvent,
		OpTypeReserveId, OpTypeQueue, OpTypePipe,
		OpString, OpExtInstImport, OpLabel:
		return 0
	case OpUndef, OpConstantTrue, OpConstantFalse, OpConstant,
		OpConstantComposite, OpConstantSampler, OpConstantNull,
		OpFunction, OpFunctionParameter, OpFunctionCall, OpVariable,
		OpLoad, OpAccessChain, OpInBoundsAccessChain, OpPtrAccessChain,
		OpInBoundsPtrAccessChain, OpSelect, OpPhi, OpExtInst:
		return 1
	default:
		return -1
	}
}

// ResultID returns the instruction's result id, or 0 when it has none.
func (in Instruction) ResultID() uint32 {
	i := in.resultOperandIndex()
	if i < 0 {
		return 0
	}
	return in.Operand(i)
}

// ResultTypeID returns the result type id for value-producing
// instructions, or 0 when the instruction has no result type.
func (in Instruction) ResultTypeID() uint32 {
	if in.resultOperandIndex() == 1 {
		return in.Operand(0)
	}
	return 0
}

// LiteralString decodes the nul-terminated literal string starting at
// operand i. Strings are packed little-endian, four bytes per word.
func (in Instruction) LiteralString(i int) (string, bool) {
	if i < 0 || i > len(in.Operands) {
		return "", false
	}
	buf := make([]byte, 0, (len(in.Operands)-i)*4)
	for _, w := range in.Operands[i:] {
		for shift := 0; shift < 32; shift += 8 {
			b := byte(w >> shift)
			if b == 0 {
				if !utf8.Valid(buf) {
					return "", false
				}
				return string(buf), true
			}
			buf = append(buf, b)
		}
	}
	// Missing terminator.
	return "", false
}

// LiteralWords encodes s as a nul-terminated literal string operand.
func LiteralWords(s string) []uint32 {
	b := []byte(s)
	words := make([]uint32, 0, len(b)/4+1)
	var w uint32
	var shift uint
	for _, c := range b {
		w |= uint32(c) << shift
		shift += 8
		if shift == 32 {
			words = append(words, w)
			w, shift = 0, 0
		}
	}
	// The terminating nul always fits: either the current word has room,
	// or a fresh zero word is appended.
	words = append(words, w)
	return words
}
