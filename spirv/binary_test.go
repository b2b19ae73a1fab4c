package spirv

import (
	"encoding/binary"
	"errors"
	"math/bits"
	"testing"
)

// assemble builds a SPIR-V binary from a version and instruction list.
func assemble(t *testing.T, version Version, instrs []Instruction) []byte {
	t.Helper()
	m := &Module{Version: version, Bound: 100, Instructions: instrs}
	return m.Bytes()
}

// TestDecodeModuleRoundTrip encodes a small module and decodes it back.
func TestDecodeModuleRoundTrip(t *testing.T) {
	instrs := []Instruction{
		{Op: OpCapability, Operands: []uint32{uint32(CapabilityShader)}},
		{Op: OpExtension, Operands: LiteralWords("SPV_KHR_variable_pointers")},
		{Op: OpMemoryModel, Operands: []uint32{0, 1}},
	}
	data := assemble(t, Version1_3, instrs)

	m, err := DecodeModule(data)
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	if m.Version != Version1_3 {
		t.Errorf("version = %s, want 1.3", m.Version)
	}
	if len(m.Instructions) != 3 {
		t.Fatalf("got %d instructions, want 3", len(m.Instructions))
	}
	if m.Instructions[0].Op != OpCapability || m.Instructions[0].Operand(0) != uint32(CapabilityShader) {
		t.Errorf("instruction 0 = %+v", m.Instructions[0])
	}
	name, ok := m.Instructions[1].LiteralString(0)
	if !ok || name != "SPV_KHR_variable_pointers" {
		t.Errorf("LiteralString = %q, %v", name, ok)
	}
}

// TestDecodeModuleByteSwapped decodes a module written with the opposite
// endianness.
func TestDecodeModuleByteSwapped(t *testing.T) {
	data := assemble(t, Version1_0, []Instruction{
		{Op: OpCapability, Operands: []uint32{uint32(CapabilityKernel)}},
	})
	swapped := make([]byte, len(data))
	for i := 0; i < len(data); i += 4 {
		w := binary.LittleEndian.Uint32(data[i:])
		binary.LittleEndian.PutUint32(swapped[i:], bits.ReverseBytes32(w))
	}

	m, err := DecodeModule(swapped)
	if err != nil {
		t.Fatalf("DecodeModule(swapped): %v", err)
	}
	if m.Instructions[0].Operand(0) != uint32(CapabilityKernel) {
		t.Errorf("instruction 0 = %+v", m.Instructions[0])
	}
}

// TestDecodeModuleErrors covers the rejection paths.
func TestDecodeModuleErrors(t *testing.T) {
	if _, err := DecodeModule([]byte{1, 2, 3}); !errors.Is(err, ErrTruncated) {
		t.Errorf("short input: %v, want ErrTruncated", err)
	}

	bad := assemble(t, Version1_0, nil)
	bad[0] = 0xFF
	if _, err := DecodeModule(bad); !errors.Is(err, ErrNotSPIRV) {
		t.Errorf("bad magic: %v, want ErrNotSPIRV", err)
	}

	// An instruction claiming more words than remain.
	trunc := assemble(t, Version1_0, nil)
	var word [4]byte
	binary.LittleEndian.PutUint32(word[:], 5<<16|uint32(OpCapability))
	trunc = append(trunc, word[:]...)
	if _, err := DecodeModule(trunc); !errors.Is(err, ErrTruncated) {
		t.Errorf("truncated instruction: %v, want ErrTruncated", err)
	}
}

// TestModuleFunctions splits function bodies out of the stream.
func TestModuleFunctions(t *testing.T) {
	instrs := []Instruction{
		{Op: OpCapability, Operands: []uint32{uint32(CapabilityShader)}},
		{Op: OpTypeVoid, Operands: []uint32{1}},
		{Op: OpFunction, Operands: []uint32{1, 2, 0, 3}},
		{Op: OpLabel, Operands: []uint32{4}},
		{Op: OpReturn},
		{Op: OpFunctionEnd},
		{Op: OpFunction, Operands: []uint32{1, 5, 0, 3}},
		{Op: OpFunctionEnd},
	}
	m := &Module{Version: Version1_0, Instructions: instrs}

	fns := m.Functions()
	if len(fns) != 2 {
		t.Fatalf("got %d functions, want 2", len(fns))
	}
	if fns[0].Start != 2 || len(fns[0].Body) != 4 {
		t.Errorf("function 0 = start %d, %d instructions", fns[0].Start, len(fns[0].Body))
	}
	if fns[1].Start != 6 || len(fns[1].Body) != 2 {
		t.Errorf("function 1 = start %d, %d instructions", fns[1].Start, len(fns[1].Body))
	}

	globals := m.Globals()
	if len(globals) != 2 {
		t.Errorf("got %d globals, want 2", len(globals))
	}
}

// TestLiteralWordsRoundTrip checks string encode/decode at word-boundary
// lengths, where the nul terminator placement differs.
func TestLiteralWordsRoundTrip(t *testing.T) {
	for _, s := range []string{"", "abc", "abcd", "abcdefg", "SPV_KHR_16bit_storage"} {
		in := Instruction{Op: OpExtension, Operands: LiteralWords(s)}
		got, ok := in.LiteralString(0)
		if !ok || got != s {
			t.Errorf("round trip %q = %q, %v", s, got, ok)
		}
	}
	// A four-byte string needs a fifth zero byte, so a second word.
	if n := len(LiteralWords("abcd")); n != 2 {
		t.Errorf("LiteralWords(abcd) = %d words, want 2", n)
	}
}

// TestResultIDs checks result and result-type extraction for both operand
// layouts.
func TestResultIDs(t *testing.T) {
	typ := Instruction{Op: OpTypeInt, Operands: []uint32{7, 32, 1}}
	if typ.ResultID() != 7 || typ.ResultTypeID() != 0 {
		t.Errorf("OpTypeInt result = %d, type = %d", typ.ResultID(), typ.ResultTypeID())
	}
	load := Instruction{Op: OpLoad, Operands: []uint32{3, 8, 5}}
	if load.ResultID() != 8 || load.ResultTypeID() != 3 {
		t.Errorf("OpLoad result = %d, type = %d", load.ResultID(), load.ResultTypeID())
	}
	ret := Instruction{Op: OpReturn}
	if ret.ResultID() != 0 {
		t.Errorf("OpReturn result = %d", ret.ResultID())
	}
}
