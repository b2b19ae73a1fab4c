package spirv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
)

// Magic is the SPIR-V magic number, first word of every module.
const Magic = 0x07230203

// Header layout: magic, version, generator, bound, schema.
const headerWords = 5

var (
	// ErrNotSPIRV reports input that does not start with the magic number.
	ErrNotSPIRV = errors.New("spirv: not a SPIR-V module")
	// ErrTruncated reports input that ends inside the header or an
	// instruction.
	ErrTruncated = errors.New("spirv: truncated module")
)

// Module is a decoded SPIR-V module.
type Module struct {
	Version      Version
	Generator    uint32
	Bound        uint32
	Instructions []Instruction
}

// DecodeModule decodes a SPIR-V binary. Byte-swapped modules (written by
// an opposite-endian producer) are detected via the magic number and
// decoded transparently.
func DecodeModule(data []byte) (*Module, error) {
	if len(data)%4 != 0 || len(data) < headerWords*4 {
		return nil, ErrTruncated
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	switch words[0] {
	case Magic:
	case bits.ReverseBytes32(Magic):
		for i := range words {
			words[i] = bits.ReverseBytes32(words[i])
		}
	default:
		return nil, fmt.Errorf("%w: magic %#08x", ErrNotSPIRV, words[0])
	}

	m := &Module{
		Version:   VersionFromWord(words[1]),
		Generator: words[2],
		Bound:     words[3],
	}

	for i := headerWords; i < len(words); {
		first := words[i]
		wc := int(first >> 16)
		if wc == 0 {
			return nil, fmt.Errorf("spirv: zero word count at word %d", i)
		}
		if i+wc > len(words) {
			return nil, fmt.Errorf("%w: instruction at word %d", ErrTruncated, i)
		}
		m.Instructions = append(m.Instructions, Instruction{
			Op:       OpCode(first & 0xffff),
			Operands: words[i+1 : i+wc],
		})
		i += wc
	}
	return m, nil
}

// Bytes re-encodes the module as a little-endian SPIR-V binary.
func (m *Module) Bytes() []byte {
	n := headerWords
	for _, in := range m.Instructions {
		n += 1 + len(in.Operands)
	}
	words := make([]uint32, 0, n)
	words = append(words, Magic, m.Version.Word(), m.Generator, m.Bound, 0)
	for _, in := range m.Instructions {
		words = append(words, uint32(1+len(in.Operands))<<16|uint32(in.Op))
		words = append(words, in.Operands...)
	}
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// Function is a contiguous run of instructions from OpFunction through its
// OpFunctionEnd, inclusive.
type Function struct {
	// Start is the index of the OpFunction in Module.Instructions.
	Start int
	Body  []Instruction
}

// Functions splits the module into its function bodies. Global
// instructions (capabilities, types, constants, module-scope variables)
// precede the first function and are not included.
func (m *Module) Functions() []Function {
	var fns []Function
	start := -1
	for i, in := range m.Instructions {
		switch in.Op {
		case OpFunction:
			if start < 0 {
				start = i
			}
		case OpFunctionEnd:
			if start >= 0 {
				fns = append(fns, Function{Start: start, Body: m.Instructions[start : i+1]})
				start = -1
			}
		}
	}
	return fns
}

// Globals returns the instructions before the first function body.
func (m *Module) Globals() []Instruction {
	for i, in := range m.Instructions {
		if in.Op == OpFunction {
			return m.Instructions[:i]
		}
	}
	return m.Instructions
}
