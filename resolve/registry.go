package resolve

import "github.com/gogpu/spvreq/spirv"

// TypeLookup resolves a result id to the type declaration that produced
// it. The resolver uses it to inspect the result types of value-producing
// instructions.
type TypeLookup interface {
	Type(id uint32) (spirv.Instruction, bool)
}

// TypeRegistry indexes a module's type declarations by result id.
type TypeRegistry struct {
	types map[uint32]spirv.Instruction
}

// NewTypeRegistry builds a registry from an instruction stream, keeping
// only OpType* declarations. Later declarations with a duplicate id win;
// a valid module never has any.
func NewTypeRegistry(instrs []spirv.Instruction) *TypeRegistry {
	r := &TypeRegistry{types: make(map[uint32]spirv.Instruction)}
	for _, in := range instrs {
		if !in.Op.IsTypeDecl() {
			continue
		}
		if id := in.ResultID(); id != 0 {
			r.types[id] = in
		}
	}
	return r
}

// Type returns the type declaration with the given result id.
func (r *TypeRegistry) Type(id uint32) (spirv.Instruction, bool) {
	in, ok := r.types[id]
	return in, ok
}

// PointerStorageClass returns the storage class of the pointer type with
// the given id, and whether id names a pointer type at all.
func (r *TypeRegistry) PointerStorageClass(id uint32) (spirv.StorageClass, bool) {
	in, ok := r.types[id]
	if !ok || in.Op != spirv.OpTypePointer || in.NumOperands() < 2 {
		return 0, false
	}
	return spirv.StorageClass(in.Operand(1)), true
}

// Len returns the number of indexed type declarations.
func (r *TypeRegistry) Len() int {
	return len(r.types)
}
