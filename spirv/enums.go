package spirv

import "fmt"

// Capability represents a SPIR-V capability: a named feature flag declared
// once per module, possibly with prerequisite capabilities.
type Capability uint32

const (
	CapabilityMatrix                                       Capability = 0
	CapabilityShader                                       Capability = 1
	CapabilityGeometry                                     Capability = 2
	CapabilityTessellation                                 Capability = 3
	CapabilityAddresses                                    Capability = 4
	CapabilityLinkage                                      Capability = 5
	CapabilityKernel                                       Capability = 6
	CapabilityVector16                                     Capability = 7
	CapabilityFloat16Buffer                                Capability = 8
	CapabilityFloat16                                      Capability = 9
	CapabilityFloat64                                      Capability = 10
	CapabilityInt64                                        Capability = 11
	CapabilityInt64Atomics                                 Capability = 12
	CapabilityImageBasic                                   Capability = 13
	CapabilityImageReadWrite                               Capability = 14
	CapabilityImageMipmap                                  Capability = 15
	CapabilityPipes                                        Capability = 17
	CapabilityGroups                                       Capability = 18
	CapabilityDeviceEnqueue                                Capability = 19
	CapabilityLiteralSampler                               Capability = 20
	CapabilityAtomicStorage                                Capability = 21
	CapabilityInt16                                        Capability = 22
	CapabilityTessellationPointSize                        Capability = 23
	CapabilityGeometryPointSize                            Capability = 24
	CapabilityImageGatherExtended                          Capability = 25
	CapabilityStorageImageMultisample                      Capability = 27
	CapabilityUniformBufferArrayDynamicIndexing            Capability = 28
	CapabilitySampledImageArrayDynamicIndexing             Capability = 29
	CapabilityClipDistance                                 Capability = 32
	CapabilityCullDistance                                 Capability = 33
	CapabilityImageCubeArray                               Capability = 34
	CapabilitySampleRateShading                            Capability = 35
	CapabilityImageRect                                    Capability = 36
	CapabilitySampledRect                                  Capability = 37
	CapabilityGenericPointer                               Capability = 38
	CapabilityInt8                                         Capability = 39
	CapabilityInputAttachment                              Capability = 40
	CapabilitySparseResidency                              Capability = 41
	CapabilityMinLod                                       Capability = 42
	CapabilitySampled1D                                    Capability = 43
	CapabilityImage1D                                      Capability = 44
	CapabilitySampledCubeArray                             Capability = 45
	CapabilitySampledBuffer                                Capability = 46
	CapabilityImageBuffer                                  Capability = 47
	CapabilityImageMSArray                                 Capability = 48
	CapabilityStorageImageExtendedFormats                  Capability = 49
	CapabilityImageQuery                                   Capability = 50
	CapabilityDerivativeControl                            Capability = 51
	CapabilityInterpolationFunction                        Capability = 52
	CapabilityTransformFeedback                            Capability = 53
	CapabilityGeometryStreams                              Capability = 54
	CapabilityStorageImageReadWithoutFormat                Capability = 55
	CapabilityStorageImageWriteWithoutFormat               Capability = 56
	CapabilityMultiViewport                                Capability = 57
	CapabilitySubgroupDispatch                             Capability = 58
	CapabilityNamedBarrier                                 Capability = 59
	CapabilityPipeStorage                                  Capability = 60
	CapabilityGroupNonUniform                              Capability = 61
	CapabilityGroupNonUniformVote                          Capability = 62
	CapabilityGroupNonUniformArithmetic                    Capability = 63
	CapabilityGroupNonUniformBallot                        Capability = 64
	CapabilityGroupNonUniformShuffle                       Capability = 65
	CapabilityGroupNonUniformShuffleRelative               Capability = 66
	CapabilityGroupNonUniformClustered                     Capability = 67
	CapabilityGroupNonUniformQuad                          Capability = 68
	CapabilitySubgroupBallotKHR                            Capability = 4423
	CapabilityDrawParameters                               Capability = 4427
	CapabilitySubgroupVoteKHR                              Capability = 4431
	CapabilityStorageBuffer16BitAccess                     Capability = 4433
	CapabilityStorageUniform16                             Capability = 4434
	CapabilityStoragePushConstant16                        Capability = 4435
	CapabilityStorageInputOutput16                         Capability = 4436
	CapabilityDeviceGroup                                  Capability = 4437
	CapabilityMultiView                                    Capability = 4439
	CapabilityVariablePointersStorageBuffer                Capability = 4441
	CapabilityVariablePointers                             Capability = 4442
	CapabilityAtomicStorageOps                             Capability = 4445
	CapabilitySampleMaskPostDepthCoverage                  Capability = 4447
	CapabilityStorageBuffer8BitAccess                      Capability = 4448
	CapabilityUniformAndStorageBuffer8BitAccess            Capability = 4449
	CapabilityStoragePushConstant8                         Capability = 4450
	CapabilityDenormPreserve                               Capability = 4464
	CapabilityDenormFlushToZero                            Capability = 4465
	CapabilitySignedZeroInfNanPreserve                     Capability = 4466
	CapabilityRoundingModeRTE                              Capability = 4467
	CapabilityRoundingModeRTZ                              Capability = 4468
	CapabilityFloat16ImageAMD                              Capability = 5008
	CapabilityImageGatherBiasLodAMD                        Capability = 5009
	CapabilityFragmentMaskAMD                              Capability = 5010
	CapabilityStencilExportEXT                             Capability = 5013
	CapabilityImageReadWriteLodAMD                         Capability = 5015
	CapabilitySampleMaskOverrideCoverageNV                 Capability = 5249
	CapabilityGeometryShaderPassthroughNV                  Capability = 5251
	CapabilityShaderViewportIndexLayerEXT                  Capability = 5254
	CapabilityShaderViewportMaskNV                         Capability = 5255
	CapabilityShaderStereoViewNV                           Capability = 5259
	CapabilityPerViewAttributesNV                          Capability = 5260
	CapabilityFragmentFullyCoveredEXT                      Capability = 5265
	CapabilityMeshShadingNV                                Capability = 5266
	CapabilityImageFootprintNV                             Capability = 5282
	CapabilityFragmentBarycentricNV                        Capability = 5284
	CapabilityComputeDerivativeGroupQuadsNV                Capability = 5288
	CapabilityFragmentDensityEXT                           Capability = 5291
	CapabilityGroupNonUniformPartitionedNV                 Capability = 5297
	CapabilityShaderNonUniformEXT                          Capability = 5301
	CapabilityRuntimeDescriptorArrayEXT                    Capability = 5302
	CapabilityInputAttachmentArrayDynamicIndexingEXT       Capability = 5303
	CapabilityUniformTexelBufferArrayDynamicIndexingEXT    Capability = 5304
	CapabilityStorageTexelBufferArrayDynamicIndexingEXT    Capability = 5305
	CapabilityUniformBufferArrayNonUniformIndexingEXT      Capability = 5306
	CapabilitySampledImageArrayNonUniformIndexingEXT       Capability = 5307
	CapabilityStorageBufferArrayNonUniformIndexingEXT      Capability = 5308
	CapabilityStorageImageArrayNonUniformIndexingEXT       Capability = 5309
	CapabilityInputAttachmentArrayNonUniformIndexingEXT    Capability = 5310
	CapabilityUniformTexelBufferArrayNonUniformIndexingEXT Capability = 5311
	CapabilityStorageTexelBufferArrayNonUniformIndexingEXT Capability = 5312
	CapabilityRayTracingNV                                 Capability = 5340
	CapabilityVulkanMemoryModelKHR                         Capability = 5345
	CapabilityVulkanMemoryModelDeviceScopeKHR              Capability = 5346
	CapabilityPhysicalStorageBufferAddresses               Capability = 5347
	CapabilityComputeDerivativeGroupLinearNV               Capability = 5350
	CapabilityCooperativeMatrixNV                          Capability = 5357
	CapabilitySubgroupShuffleINTEL                         Capability = 5568
	CapabilitySubgroupBufferBlockIOINTEL                   Capability = 5569
	CapabilitySubgroupImageBlockIOINTEL                    Capability = 5570
)

// String returns the capability's name, or its numeric value if unknown.
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Capability(%d)", uint32(c))
}

// Extension represents a named SPIR-V extension.
type Extension string

// Extensions referenced by the requirement tables.
const (
	ExtKHRShaderBallot               Extension = "SPV_KHR_shader_ballot"
	ExtKHRShaderDrawParameters       Extension = "SPV_KHR_shader_draw_parameters"
	ExtKHRSubgroupVote               Extension = "SPV_KHR_subgroup_vote"
	ExtKHR16BitStorage               Extension = "SPV_KHR_16bit_storage"
	ExtKHRDeviceGroup                Extension = "SPV_KHR_device_group"
	ExtKHRMultiview                  Extension = "SPV_KHR_multiview"
	ExtKHRVariablePointers           Extension = "SPV_KHR_variable_pointers"
	ExtKHRShaderAtomicCounterOps     Extension = "SPV_KHR_shader_atomic_counter_ops"
	ExtKHRPostDepthCoverage          Extension = "SPV_KHR_post_depth_coverage"
	ExtKHR8BitStorage                Extension = "SPV_KHR_8bit_storage"
	ExtKHRFloatControls              Extension = "SPV_KHR_float_controls"
	ExtKHRNoIntegerWrapDecoration    Extension = "SPV_KHR_no_integer_wrap_decoration"
	ExtKHRVulkanMemoryModel          Extension = "SPV_KHR_vulkan_memory_model"
	ExtKHRStorageBufferClass         Extension = "SPV_KHR_storage_buffer_storage_class"
	ExtAMDShaderTrinaryMinmax        Extension = "SPV_AMD_shader_trinary_minmax"
	ExtAMDHalfFloatFetch             Extension = "SPV_AMD_gpu_shader_half_float_fetch"
	ExtAMDTextureGatherBiasLod       Extension = "SPV_AMD_texture_gather_bias_lod"
	ExtAMDShaderFragmentMask         Extension = "SPV_AMD_shader_fragment_mask"
	ExtAMDImageLoadStoreLod          Extension = "SPV_AMD_shader_image_load_store_lod"
	ExtEXTViewportIndexLayer         Extension = "SPV_EXT_shader_viewport_index_layer"
	ExtEXTFragmentInvocationDensity  Extension = "SPV_EXT_fragment_invocation_density"
	ExtEXTFragmentFullyCovered       Extension = "SPV_EXT_fragment_fully_covered"
	ExtEXTPhysicalStorageBuffer      Extension = "SPV_EXT_physical_storage_buffer"
	ExtEXTShaderStencilExport        Extension = "SPV_EXT_shader_stencil_export"
	ExtEXTDescriptorIndexing         Extension = "SPV_EXT_descriptor_indexing"
	ExtINTELSubgroups                Extension = "SPV_INTEL_subgroups"
	ExtNVSampleMaskOverrideCoverage  Extension = "SPV_NV_sample_mask_override_coverage"
	ExtNVGeometryShaderPassthrough   Extension = "SPV_NV_geometry_shader_passthrough"
	ExtNVViewportArray2              Extension = "SPV_NV_viewport_array2"
	ExtNVStereoViewRendering         Extension = "SPV_NV_stereo_view_rendering"
	ExtNVXMultiviewPerViewAttributes Extension = "SPV_NVX_multiview_per_view_attributes"
	ExtNVShaderSubgroupPartitioned   Extension = "SPV_NV_shader_subgroup_partitioned"
	ExtNVCooperativeMatrix           Extension = "SPV_NV_cooperative_matrix"
	ExtNVMeshShader                  Extension = "SPV_NV_mesh_shader"
	ExtNVRayTracing                  Extension = "SPV_NV_ray_tracing"
	ExtNVShaderImageFootprint        Extension = "SPV_NV_shader_image_footprint"
	ExtNVFragmentShaderBarycentric   Extension = "SPV_NV_fragment_shader_barycentric"
	ExtNVComputeShaderDerivatives    Extension = "SPV_NV_compute_shader_derivatives"
)

// ExtInstSet represents an extended instruction set import.
type ExtInstSet string

const (
	ExtInstSetGLSL450          ExtInstSet = "GLSL.std.450"
	ExtInstSetOpenCL           ExtInstSet = "OpenCL.std"
	ExtInstSetAMDTrinaryMinmax ExtInstSet = "SPV_AMD_shader_trinary_minmax"
)

// AddressingModel selects how pointers are formed and used.
type AddressingModel uint32

const (
	AddressingModelLogical                 AddressingModel = 0
	AddressingModelPhysical32              AddressingModel = 1
	AddressingModelPhysical64              AddressingModel = 2
	AddressingModelPhysicalStorageBuffer64 AddressingModel = 5348
)

func (m AddressingModel) String() string {
	switch m {
	case AddressingModelLogical:
		return "Logical"
	case AddressingModelPhysical32:
		return "Physical32"
	case AddressingModelPhysical64:
		return "Physical64"
	case AddressingModelPhysicalStorageBuffer64:
		return "PhysicalStorageBuffer64"
	default:
		return fmt.Sprintf("AddressingModel(%d)", uint32(m))
	}
}

// MemoryModel selects the module's memory consistency model.
type MemoryModel uint32

const (
	MemoryModelSimple    MemoryModel = 0
	MemoryModelGLSL450   MemoryModel = 1
	MemoryModelOpenCL    MemoryModel = 2
	MemoryModelVulkanKHR MemoryModel = 3
)

func (m MemoryModel) String() string {
	switch m {
	case MemoryModelSimple:
		return "Simple"
	case MemoryModelGLSL450:
		return "GLSL450"
	case MemoryModelOpenCL:
		return "OpenCL"
	case MemoryModelVulkanKHR:
		return "VulkanKHR"
	default:
		return fmt.Sprintf("MemoryModel(%d)", uint32(m))
	}
}

// ExecutionModel identifies the pipeline stage of an entry point.
type ExecutionModel uint32

const (
	ExecutionModelVertex                 ExecutionModel = 0
	ExecutionModelTessellationControl    ExecutionModel = 1
	ExecutionModelTessellationEvaluation ExecutionModel = 2
	ExecutionModelGeometry               ExecutionModel = 3
	ExecutionModelFragment               ExecutionModel = 4
	ExecutionModelGLCompute              ExecutionModel = 5
	ExecutionModelKernel                 ExecutionModel = 6
	ExecutionModelTaskNV                 ExecutionModel = 5267
	ExecutionModelMeshNV                 ExecutionModel = 5268
	ExecutionModelRayGenerationNV        ExecutionModel = 5313
	ExecutionModelIntersectionNV         ExecutionModel = 5314
	ExecutionModelAnyHitNV               ExecutionModel = 5315
	ExecutionModelClosestHitNV           ExecutionModel = 5316
	ExecutionModelMissNV                 ExecutionModel = 5317
	ExecutionModelCallableNV             ExecutionModel = 5318
)

func (m ExecutionModel) String() string {
	switch m {
	case ExecutionModelVertex:
		return "Vertex"
	case ExecutionModelTessellationControl:
		return "TessellationControl"
	case ExecutionModelTessellationEvaluation:
		return "TessellationEvaluation"
	case ExecutionModelGeometry:
		return "Geometry"
	case ExecutionModelFragment:
		return "Fragment"
	case ExecutionModelGLCompute:
		return "GLCompute"
	case ExecutionModelKernel:
		return "Kernel"
	default:
		return fmt.Sprintf("ExecutionModel(%d)", uint32(m))
	}
}

// ExecutionMode configures an entry point's execution.
type ExecutionMode uint32

const (
	ExecModeInvocations              ExecutionMode = 0
	ExecModeSpacingEqual             ExecutionMode = 1
	ExecModeSpacingFractionalEven    ExecutionMode = 2
	ExecModeSpacingFractionalOdd     ExecutionMode = 3
	ExecModeVertexOrderCw            ExecutionMode = 4
	ExecModeVertexOrderCcw           ExecutionMode = 5
	ExecModePixelCenterInteger       ExecutionMode = 6
	ExecModeOriginUpperLeft          ExecutionMode = 7
	ExecModeOriginLowerLeft          ExecutionMode = 8
	ExecModeEarlyFragmentTests       ExecutionMode = 9
	ExecModePointMode                ExecutionMode = 10
	ExecModeXfb                      ExecutionMode = 11
	ExecModeDepthReplacing           ExecutionMode = 12
	ExecModeDepthGreater             ExecutionMode = 14
	ExecModeDepthLess                ExecutionMode = 15
	ExecModeDepthUnchanged           ExecutionMode = 16
	ExecModeLocalSize                ExecutionMode = 17
	ExecModeLocalSizeHint            ExecutionMode = 18
	ExecModeInputPoints              ExecutionMode = 19
	ExecModeInputLines               ExecutionMode = 20
	ExecModeInputLinesAdjacency      ExecutionMode = 21
	ExecModeTriangles                ExecutionMode = 22
	ExecModeInputTrianglesAdjacency  ExecutionMode = 23
	ExecModeQuads                    ExecutionMode = 24
	ExecModeIsolines                 ExecutionMode = 25
	ExecModeOutputVertices           ExecutionMode = 26
	ExecModeOutputPoints             ExecutionMode = 27
	ExecModeOutputLineStrip          ExecutionMode = 28
	ExecModeOutputTriangleStrip      ExecutionMode = 29
	ExecModeVecTypeHint              ExecutionMode = 30
	ExecModeContractionOff           ExecutionMode = 31
	ExecModeInitializer              ExecutionMode = 33
	ExecModeFinalizer                ExecutionMode = 34
	ExecModeSubgroupSize             ExecutionMode = 35
	ExecModeSubgroupsPerWorkgroup    ExecutionMode = 36
	ExecModeSubgroupsPerWorkgroupId  ExecutionMode = 37
	ExecModeLocalSizeId              ExecutionMode = 38
	ExecModeLocalSizeHintId          ExecutionMode = 39
	ExecModePostDepthCoverage        ExecutionMode = 4446
	ExecModeDenormPreserve           ExecutionMode = 4459
	ExecModeDenormFlushToZero        ExecutionMode = 4460
	ExecModeSignedZeroInfNanPreserve ExecutionMode = 4461
	ExecModeRoundingModeRTE          ExecutionMode = 4462
	ExecModeRoundingModeRTZ          ExecutionMode = 4463
	ExecModeStencilRefReplacingEXT   ExecutionMode = 5027
)

// StorageClass identifies where a pointer's pointee lives.
type StorageClass uint32

const (
	StorageClassUniformConstant       StorageClass = 0
	StorageClassInput                 StorageClass = 1
	StorageClassUniform               StorageClass = 2
	StorageClassOutput                StorageClass = 3
	StorageClassWorkgroup             StorageClass = 4
	StorageClassCrossWorkgroup        StorageClass = 5
	StorageClassPrivate               StorageClass = 6
	StorageClassFunction              StorageClass = 7
	StorageClassGeneric               StorageClass = 8
	StorageClassPushConstant          StorageClass = 9
	StorageClassAtomicCounter         StorageClass = 10
	StorageClassImage                 StorageClass = 11
	StorageClassStorageBuffer         StorageClass = 12
	StorageClassPhysicalStorageBuffer StorageClass = 5349
)

func (sc StorageClass) String() string {
	switch sc {
	case StorageClassUniformConstant:
		return "UniformConstant"
	case StorageClassInput:
		return "Input"
	case StorageClassUniform:
		return "Uniform"
	case StorageClassOutput:
		return "Output"
	case StorageClassWorkgroup:
		return "Workgroup"
	case StorageClassCrossWorkgroup:
		return "CrossWorkgroup"
	case StorageClassPrivate:
		return "Private"
	case StorageClassFunction:
		return "Function"
	case StorageClassGeneric:
		return "Generic"
	case StorageClassPushConstant:
		return "PushConstant"
	case StorageClassAtomicCounter:
		return "AtomicCounter"
	case StorageClassImage:
		return "Image"
	case StorageClassStorageBuffer:
		return "StorageBuffer"
	case StorageClassPhysicalStorageBuffer:
		return "PhysicalStorageBuffer"
	default:
		return fmt.Sprintf("StorageClass(%d)", uint32(sc))
	}
}

// Decoration annotates an instruction result or struct member.
type Decoration uint32

const (
	DecorationRelaxedPrecision     Decoration = 0
	DecorationSpecId               Decoration = 1
	DecorationBlock                Decoration = 2
	DecorationBufferBlock          Decoration = 3
	DecorationRowMajor             Decoration = 4
	DecorationColMajor             Decoration = 5
	DecorationArrayStride          Decoration = 6
	DecorationMatrixStride         Decoration = 7
	DecorationGLSLShared           Decoration = 8
	DecorationGLSLPacked           Decoration = 9
	DecorationCPacked              Decoration = 10
	DecorationBuiltIn              Decoration = 11
	DecorationNoPerspective        Decoration = 13
	DecorationFlat                 Decoration = 14
	DecorationPatch                Decoration = 15
	DecorationCentroid             Decoration = 16
	DecorationSample               Decoration = 17
	DecorationInvariant            Decoration = 18
	DecorationRestrict             Decoration = 19
	DecorationAliased              Decoration = 20
	DecorationVolatile             Decoration = 21
	DecorationConstant             Decoration = 22
	DecorationCoherent             Decoration = 23
	DecorationNonWritable          Decoration = 24
	DecorationNonReadable          Decoration = 25
	DecorationUniform              Decoration = 26
	DecorationUniformId            Decoration = 27
	DecorationSaturatedConversion  Decoration = 28
	DecorationStream               Decoration = 29
	DecorationLocation             Decoration = 30
	DecorationComponent            Decoration = 31
	DecorationIndex                Decoration = 32
	DecorationBinding              Decoration = 33
	DecorationDescriptorSet        Decoration = 34
	DecorationOffset               Decoration = 35
	DecorationXfbBuffer            Decoration = 36
	DecorationXfbStride            Decoration = 37
	DecorationFuncParamAttr        Decoration = 38
	DecorationFPRoundingMode       Decoration = 39
	DecorationFPFastMathMode       Decoration = 40
	DecorationLinkageAttributes    Decoration = 41
	DecorationNoContraction        Decoration = 42
	DecorationInputAttachmentIndex Decoration = 43
	DecorationAlignment            Decoration = 44
	DecorationMaxByteOffset        Decoration = 45
	DecorationAlignmentId          Decoration = 46
	DecorationMaxByteOffsetId      Decoration = 47
	DecorationNoSignedWrap         Decoration = 4469
	DecorationNoUnsignedWrap       Decoration = 4470
	DecorationNonUniformEXT        Decoration = 5300
	DecorationRestrictPointer      Decoration = 5355
	DecorationAliasedPointer       Decoration = 5356
)

// String returns the decoration's name, or its numeric value if unknown.
func (d Decoration) String() string {
	if name, ok := decorationNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Decoration(%d)", uint32(d))
}

// BuiltIn identifies a pipeline-provided value.
type BuiltIn uint32

const (
	BuiltInPosition                  BuiltIn = 0
	BuiltInPointSize                 BuiltIn = 1
	BuiltInClipDistance              BuiltIn = 3
	BuiltInCullDistance              BuiltIn = 4
	BuiltInVertexId                  BuiltIn = 5
	BuiltInInstanceId                BuiltIn = 6
	BuiltInPrimitiveId               BuiltIn = 7
	BuiltInInvocationId              BuiltIn = 8
	BuiltInLayer                     BuiltIn = 9
	BuiltInViewportIndex             BuiltIn = 10
	BuiltInTessLevelOuter            BuiltIn = 11
	BuiltInTessLevelInner            BuiltIn = 12
	BuiltInTessCoord                 BuiltIn = 13
	BuiltInPatchVertices             BuiltIn = 14
	BuiltInFragCoord                 BuiltIn = 15
	BuiltInPointCoord                BuiltIn = 16
	BuiltInFrontFacing               BuiltIn = 17
	BuiltInSampleId                  BuiltIn = 18
	BuiltInSamplePosition            BuiltIn = 19
	BuiltInSampleMask                BuiltIn = 20
	BuiltInFragDepth                 BuiltIn = 22
	BuiltInHelperInvocation          BuiltIn = 23
	BuiltInNumWorkgroups             BuiltIn = 24
	BuiltInWorkgroupSize             BuiltIn = 25
	BuiltInWorkgroupId               BuiltIn = 26
	BuiltInLocalInvocationId         BuiltIn = 27
	BuiltInGlobalInvocationId        BuiltIn = 28
	BuiltInLocalInvocationIndex      BuiltIn = 29
	BuiltInWorkDim                   BuiltIn = 30
	BuiltInGlobalSize                BuiltIn = 31
	BuiltInEnqueuedWorkgroupSize     BuiltIn = 32
	BuiltInGlobalOffset              BuiltIn = 33
	BuiltInGlobalLinearId            BuiltIn = 34
	BuiltInSubgroupSize              BuiltIn = 36
	BuiltInSubgroupMaxSize           BuiltIn = 37
	BuiltInNumSubgroups              BuiltIn = 38
	BuiltInNumEnqueuedSubgroups      BuiltIn = 39
	BuiltInSubgroupId                BuiltIn = 40
	BuiltInSubgroupLocalInvocationId BuiltIn = 41
	BuiltInVertexIndex               BuiltIn = 42
	BuiltInInstanceIndex             BuiltIn = 43
	BuiltInSubgroupEqMask            BuiltIn = 4416
	BuiltInSubgroupGeMask            BuiltIn = 4417
	BuiltInSubgroupGtMask            BuiltIn = 4418
	BuiltInSubgroupLeMask            BuiltIn = 4419
	BuiltInSubgroupLtMask            BuiltIn = 4420
	BuiltInBaseVertex                BuiltIn = 4424
	BuiltInBaseInstance              BuiltIn = 4425
	BuiltInDrawIndex                 BuiltIn = 4426
	BuiltInDeviceIndex               BuiltIn = 4438
	BuiltInViewIndex                 BuiltIn = 4440
	BuiltInFragStencilRefEXT         BuiltIn = 5014
	BuiltInFullyCoveredEXT           BuiltIn = 5264
)

// String returns the built-in's name, or its numeric value if unknown.
func (b BuiltIn) String() string {
	if name, ok := builtInNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BuiltIn(%d)", uint32(b))
}

// Dim is the dimensionality field of an image type.
type Dim uint32

const (
	Dim1D          Dim = 0
	Dim2D          Dim = 1
	Dim3D          Dim = 2
	DimCube        Dim = 3
	DimRect        Dim = 4
	DimBuffer      Dim = 5
	DimSubpassData Dim = 6
)

func (d Dim) String() string {
	switch d {
	case Dim1D:
		return "1D"
	case Dim2D:
		return "2D"
	case Dim3D:
		return "3D"
	case DimCube:
		return "Cube"
	case DimRect:
		return "Rect"
	case DimBuffer:
		return "Buffer"
	case DimSubpassData:
		return "SubpassData"
	default:
		return fmt.Sprintf("Dim(%d)", uint32(d))
	}
}

// AccessQualifier is the optional access field of kernel image types.
type AccessQualifier uint32

const (
	AccessQualifierReadOnly  AccessQualifier = 0
	AccessQualifierWriteOnly AccessQualifier = 1
	AccessQualifierReadWrite AccessQualifier = 2
)

// ImageFormat is the texel format field of an image type.
type ImageFormat uint32

const (
	ImageFormatUnknown      ImageFormat = 0
	ImageFormatRgba32f      ImageFormat = 1
	ImageFormatRgba16f      ImageFormat = 2
	ImageFormatR32f         ImageFormat = 3
	ImageFormatRgba8        ImageFormat = 4
	ImageFormatRgba8Snorm   ImageFormat = 5
	ImageFormatRg32f        ImageFormat = 6
	ImageFormatRg16f        ImageFormat = 7
	ImageFormatR11fG11fB10f ImageFormat = 8
	ImageFormatR16f         ImageFormat = 9
	ImageFormatRgba16       ImageFormat = 10
	ImageFormatRgb10A2      ImageFormat = 11
	ImageFormatRg16         ImageFormat = 12
	ImageFormatRg8          ImageFormat = 13
	ImageFormatR16          ImageFormat = 14
	ImageFormatR8           ImageFormat = 15
	ImageFormatRgba16Snorm  ImageFormat = 16
	ImageFormatRg16Snorm    ImageFormat = 17
	ImageFormatRg8Snorm     ImageFormat = 18
	ImageFormatR16Snorm     ImageFormat = 19
	ImageFormatR8Snorm      ImageFormat = 20
	ImageFormatRgba32i      ImageFormat = 21
	ImageFormatRgba16i      ImageFormat = 22
	ImageFormatRgba8i       ImageFormat = 23
	ImageFormatR32i         ImageFormat = 24
	ImageFormatRg32i        ImageFormat = 25
	ImageFormatRg16i        ImageFormat = 26
	ImageFormatRg8i         ImageFormat = 27
	ImageFormatR16i         ImageFormat = 28
	ImageFormatR8i          ImageFormat = 29
	ImageFormatRgba32ui     ImageFormat = 30
	ImageFormatRgba16ui     ImageFormat = 31
	ImageFormatRgba8ui      ImageFormat = 32
	ImageFormatR32ui        ImageFormat = 33
	ImageFormatRgb10a2ui    ImageFormat = 34
	ImageFormatRg32ui       ImageFormat = 35
	ImageFormatRg16ui       ImageFormat = 36
	ImageFormatRg8ui        ImageFormat = 37
	ImageFormatR16ui        ImageFormat = 38
	ImageFormatR8ui         ImageFormat = 39
)

// LinkageType is the linkage field of the LinkageAttributes decoration.
type LinkageType uint32

const (
	LinkageTypeExport LinkageType = 0
	LinkageTypeImport LinkageType = 1
)
