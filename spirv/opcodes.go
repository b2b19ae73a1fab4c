package spirv

import "fmt"

// OpCode represents a SPIR-V opcode.
type OpCode uint16

// Opcodes relevant to requirement resolution, plus the common surrounding
// set so decoded modules stay readable in diagnostics.
const (
	OpNop                    OpCode = 0
	OpUndef                  OpCode = 1
	OpSource                 OpCode = 3
	OpName                   OpCode = 5
	OpMemberName             OpCode = 6
	OpString                 OpCode = 7
	OpExtension              OpCode = 10
	OpExtInstImport          OpCode = 11
	OpExtInst                OpCode = 12
	OpMemoryModel            OpCode = 14
	OpEntryPoint             OpCode = 15
	OpExecutionMode          OpCode = 16
	OpCapability             OpCode = 17
	OpTypeVoid               OpCode = 19
	OpTypeBool               OpCode = 20
	OpTypeInt                OpCode = 21
	OpTypeFloat              OpCode = 22
	OpTypeVector             OpCode = 23
	OpTypeMatrix             OpCode = 24
	OpTypeImage              OpCode = 25
	OpTypeSampler            OpCode = 26
	OpTypeSampledImage       OpCode = 27
	OpTypeArray              OpCode = 28
	OpTypeRuntimeArray       OpCode = 29
	OpTypeStruct             OpCode = 30
	OpTypeOpaque             OpCode = 31
	OpTypePointer            OpCode = 32
	OpTypeFunction           OpCode = 33
	OpTypeEvent              OpCode = 34
	OpTypeDeviceEvent        OpCode = 35
	OpTypeReserveId          OpCode = 36
	OpTypeQueue              OpCode = 37
	OpTypePipe               OpCode = 38
	OpTypeForwardPointer     OpCode = 39
	OpConstantTrue           OpCode = 41
	OpConstantFalse          OpCode = 42
	OpConstant               OpCode = 43
	OpConstantComposite      OpCode = 44
	OpConstantSampler        OpCode = 45
	OpConstantNull           OpCode = 46
	OpFunction               OpCode = 54
	OpFunctionParameter      OpCode = 55
	OpFunctionEnd            OpCode = 56
	OpFunctionCall           OpCode = 57
	OpVariable               OpCode = 59
	OpLoad                   OpCode = 61
	OpStore                  OpCode = 62
	OpAccessChain            OpCode = 65
	OpInBoundsAccessChain    OpCode = 66
	OpPtrAccessChain         OpCode = 67
	OpInBoundsPtrAccessChain OpCode = 70
	OpDecorate               OpCode = 71
	OpMemberDecorate         OpCode = 72
	OpSelect                 OpCode = 179
	OpPhi                    OpCode = 245
	OpLabel                  OpCode = 248
	OpBranch                 OpCode = 249
	OpBranchConditional      OpCode = 250
	OpReturn                 OpCode = 253
	OpReturnValue            OpCode = 254
	OpExecutionModeId        OpCode = 331
	OpDecorateId             OpCode = 332
	OpDecorateString         OpCode = 5632
	OpMemberDecorateString   OpCode = 5633
)

var opcodeNames = map[OpCode]string{
	OpNop:                    "OpNop",
	OpUndef:                  "OpUndef",
	OpSource:                 "OpSource",
	OpName:                   "OpName",
	OpMemberName:             "OpMemberName",
	OpString:                 "OpString",
	OpExtension:              "OpExtension",
	OpExtInstImport:          "OpExtInstImport",
	OpExtInst:                "OpExtInst",
	OpMemoryModel:            "OpMemoryModel",
	OpEntryPoint:             "OpEntryPoint",
	OpExecutionMode:          "OpExecutionMode",
	OpCapability:             "OpCapability",
	OpTypeVoid:               "OpTypeVoid",
	OpTypeBool:               "OpTypeBool",
	OpTypeInt:                "OpTypeInt",
	OpTypeFloat:              "OpTypeFloat",
	OpTypeVector:             "OpTypeVector",
	OpTypeMatrix:             "OpTypeMatrix",
	OpTypeImage:              "OpTypeImage",
	OpTypeSampler:            "OpTypeSampler",
	OpTypeSampledImage:       "OpTypeSampledImage",
	OpTypeArray:              "OpTypeArray",
	OpTypeRuntimeArray:       "OpTypeRuntimeArray",
	OpTypeStruct:             "OpTypeStruct",
	OpTypeOpaque:             "OpTypeOpaque",
	OpTypePointer:            "OpTypePointer",
	OpTypeFunction:           "OpTypeFunction",
	OpTypeEvent:              "OpTypeEvent",
	OpTypeDeviceEvent:        "OpTypeDeviceEvent",
	OpTypeReserveId:          "OpTypeReserveId",
	OpTypeQueue:              "OpTypeQueue",
	OpTypePipe:               "OpTypePipe",
	OpTypeForwardPointer:     "OpTypeForwardPointer",
	OpConstantTrue:           "OpConstantTrue",
	OpConstantFalse:          "OpConstantFalse",
	OpConstant:               "OpConstant",
	OpConstantComposite:      "OpConstantComposite",
	OpConstantSampler:        "OpConstantSampler",
	OpConstantNull:           "OpConstantNull",
	OpFunction:               "OpFunction",
	OpFunctionParameter:      "OpFunctionParameter",
	OpFunctionEnd:            "OpFunctionEnd",
	OpFunctionCall:           "OpFunctionCall",
	OpVariable:               "OpVariable",
	OpLoad:                   "OpLoad",
	OpStore:                  "OpStore",
	OpAccessChain:            "OpAccessChain",
	OpInBoundsAccessChain:    "OpInBoundsAccessChain",
	OpPtrAccessChain:         "OpPtrAccessChain",
	OpInBoundsPtrAccessChain: "OpInBoundsPtrAccessChain",
	OpDecorate:               "OpDecorate",
	OpMemberDecorate:         "OpMemberDecorate",
	OpSelect:                 "OpSelect",
	OpPhi:                    "OpPhi",
	OpLabel:                  "OpLabel",
	OpBranch:                 "OpBranch",
	OpBranchConditional:      "OpBranchConditional",
	OpReturn:                 "OpReturn",
	OpReturnValue:            "OpReturnValue",
	OpExecutionModeId:        "OpExecutionModeId",
	OpDecorateId:             "OpDecorateId",
	OpDecorateString:         "OpDecorateString",
	OpMemberDecorateString:   "OpMemberDecorateString",
}

// String returns the opcode's mnemonic, or "Op<n>" for unknown opcodes.
func (op OpCode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op%d", uint16(op))
}

// IsTypeDecl reports whether op declares a type (OpType*).
func (op OpCode) IsTypeDecl() bool {
	return (op >= OpTypeVoid && op <= OpTypeForwardPointer)
}
