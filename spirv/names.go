package spirv

var capabilityNames = map[Capability]string{
	CapabilityMatrix:                                       "Matrix",
	CapabilityShader:                                       "Shader",
	CapabilityGeometry:                                     "Geometry",
	CapabilityTessellation:                                 "Tessellation",
	CapabilityAddresses:                                    "Addresses",
	CapabilityLinkage:                                      "Linkage",
	CapabilityKernel:                                       "Kernel",
	CapabilityVector16:                                     "Vector16",
	CapabilityFloat16Buffer:                                "Float16Buffer",
	CapabilityFloat16:                                      "Float16",
	CapabilityFloat64:                                      "Float64",
	CapabilityInt64:                                        "Int64",
	CapabilityInt64Atomics:                                 "Int64Atomics",
	CapabilityImageBasic:                                   "ImageBasic",
	CapabilityImageReadWrite:                               "ImageReadWrite",
	CapabilityImageMipmap:                                  "ImageMipmap",
	CapabilityPipes:                                        "Pipes",
	CapabilityGroups:                                       "Groups",
	CapabilityDeviceEnqueue:                                "DeviceEnqueue",
	CapabilityLiteralSampler:                               "LiteralSampler",
	CapabilityAtomicStorage:                                "AtomicStorage",
	CapabilityInt16:                                        "Int16",
	CapabilityTessellationPointSize:                        "TessellationPointSize",
	CapabilityGeometryPointSize:                            "GeometryPointSize",
	CapabilityImageGatherExtended:                          "ImageGatherExtended",
	CapabilityStorageImageMultisample:                      "StorageImageMultisample",
	CapabilityUniformBufferArrayDynamicIndexing:            "UniformBufferArrayDynamicIndexing",
	CapabilitySampledImageArrayDynamicIndexing:             "SampledImageArrayDynamicIndexing",
	CapabilityClipDistance:                                 "ClipDistance",
	CapabilityCullDistance:                                 "CullDistance",
	CapabilityImageCubeArray:                               "ImageCubeArray",
	CapabilitySampleRateShading:                            "SampleRateShading",
	CapabilityImageRect:                                    "ImageRect",
	CapabilitySampledRect:                                  "SampledRect",
	CapabilityGenericPointer:                               "GenericPointer",
	CapabilityInt8:                                         "Int8",
	CapabilityInputAttachment:                              "InputAttachment",
	CapabilitySparseResidency:                              "SparseResidency",
	CapabilityMinLod:                                       "MinLod",
	CapabilitySampled1D:                                    "Sampled1D",
	CapabilityImage1D:                                      "Image1D",
	CapabilitySampledCubeArray:                             "SampledCubeArray",
	CapabilitySampledBuffer:                                "SampledBuffer",
	CapabilityImageBuffer:                                  "ImageBuffer",
	CapabilityImageMSArray:                                 "ImageMSArray",
	CapabilityStorageImageExtendedFormats:                  "StorageImageExtendedFormats",
	CapabilityImageQuery:                                   "ImageQuery",
	CapabilityDerivativeControl:                            "DerivativeControl",
	CapabilityInterpolationFunction:                        "InterpolationFunction",
	CapabilityTransformFeedback:                            "TransformFeedback",
	CapabilityGeometryStreams:                              "GeometryStreams",
	CapabilityStorageImageReadWithoutFormat:                "StorageImageReadWithoutFormat",
	CapabilityStorageImageWriteWithoutFormat:               "StorageImageWriteWithoutFormat",
	CapabilityMultiViewport:                                "MultiViewport",
	CapabilitySubgroupDispatch:                             "SubgroupDispatch",
	CapabilityNamedBarrier:                                 "NamedBarrier",
	CapabilityPipeStorage:                                  "PipeStorage",
	CapabilityGroupNonUniform:                              "GroupNonUniform",
	CapabilityGroupNonUniformVote:                          "GroupNonUniformVote",
	CapabilityGroupNonUniformArithmetic:                    "GroupNonUniformArithmetic",
	CapabilityGroupNonUniformBallot:                        "GroupNonUniformBallot",
	CapabilityGroupNonUniformShuffle:                       "GroupNonUniformShuffle",
	CapabilityGroupNonUniformShuffleRelative:               "GroupNonUniformShuffleRelative",
	CapabilityGroupNonUniformClustered:                     "GroupNonUniformClustered",
	CapabilityGroupNonUniformQuad:                          "GroupNonUniformQuad",
	CapabilitySubgroupBallotKHR:                            "SubgroupBallotKHR",
	CapabilityDrawParameters:                               "DrawParameters",
	CapabilitySubgroupVoteKHR:                              "SubgroupVoteKHR",
	CapabilityStorageBuffer16BitAccess:                     "StorageBuffer16BitAccess",
	CapabilityStorageUniform16:                             "StorageUniform16",
	CapabilityStoragePushConstant16:                        "StoragePushConstant16",
	CapabilityStorageInputOutput16:                         "StorageInputOutput16",
	CapabilityDeviceGroup:                                  "DeviceGroup",
	CapabilityMultiView:                                    "MultiView",
	CapabilityVariablePointersStorageBuffer:                "VariablePointersStorageBuffer",
	CapabilityVariablePointers:                             "VariablePointers",
	CapabilityAtomicStorageOps:                             "AtomicStorageOps",
	CapabilitySampleMaskPostDepthCoverage:                  "SampleMaskPostDepthCoverage",
	CapabilityStorageBuffer8BitAccess:                      "StorageBuffer8BitAccess",
	CapabilityUniformAndStorageBuffer8BitAccess:            "UniformAndStorageBuffer8BitAccess",
	CapabilityStoragePushConstant8:                         "StoragePushConstant8",
	CapabilityDenormPreserve:                               "DenormPreserve",
	CapabilityDenormFlushToZero:                            "DenormFlushToZero",
	CapabilitySignedZeroInfNanPreserve:                     "SignedZeroInfNanPreserve",
	CapabilityRoundingModeRTE:                              "RoundingModeRTE",
	CapabilityRoundingModeRTZ:                              "RoundingModeRTZ",
	CapabilityFloat16ImageAMD:                              "Float16ImageAMD",
	CapabilityImageGatherBiasLodAMD:                        "ImageGatherBiasLodAMD",
	CapabilityFragmentMaskAMD:                              "FragmentMaskAMD",
	CapabilityStencilExportEXT:                             "StencilExportEXT",
	CapabilityImageReadWriteLodAMD:                         "ImageReadWriteLodAMD",
	CapabilitySampleMaskOverrideCoverageNV:                 "SampleMaskOverrideCoverageNV",
	CapabilityGeometryShaderPassthroughNV:                  "GeometryShaderPassthroughNV",
	CapabilityShaderViewportIndexLayerEXT:                  "ShaderViewportIndexLayerEXT",
	CapabilityShaderViewportMaskNV:                         "ShaderViewportMaskNV",
	CapabilityShaderStereoViewNV:                           "ShaderStereoViewNV",
	CapabilityPerViewAttributesNV:                          "PerViewAttributesNV",
	CapabilityFragmentFullyCoveredEXT:                      "FragmentFullyCoveredEXT",
	CapabilityMeshShadingNV:                                "MeshShadingNV",
	CapabilityImageFootprintNV:                             "ImageFootprintNV",
	CapabilityFragmentBarycentricNV:                        "FragmentBarycentricNV",
	CapabilityComputeDerivativeGroupQuadsNV:                "ComputeDerivativeGroupQuadsNV",
	CapabilityFragmentDensityEXT:                           "FragmentDensityEXT",
	CapabilityGroupNonUniformPartitionedNV:                 "GroupNonUniformPartitionedNV",
	CapabilityShaderNonUniformEXT:                          "ShaderNonUniformEXT",
	CapabilityRuntimeDescriptorArrayEXT:                    "RuntimeDescriptorArrayEXT",
	CapabilityInputAttachmentArrayDynamicIndexingEXT:       "InputAttachmentArrayDynamicIndexingEXT",
	CapabilityUniformTexelBufferArrayDynamicIndexingEXT:    "UniformTexelBufferArrayDynamicIndexingEXT",
	CapabilityStorageTexelBufferArrayDynamicIndexingEXT:    "StorageTexelBufferArrayDynamicIndexingEXT",
	CapabilityUniformBufferArrayNonUniformIndexingEXT:      "UniformBufferArrayNonUniformIndexingEXT",
	CapabilitySampledImageArrayNonUniformIndexingEXT:       "SampledImageArrayNonUniformIndexingEXT",
	CapabilityStorageBufferArrayNonUniformIndexingEXT:      "StorageBufferArrayNonUniformIndexingEXT",
	CapabilityStorageImageArrayNonUniformIndexingEXT:       "StorageImageArrayNonUniformIndexingEXT",
	CapabilityInputAttachmentArrayNonUniformIndexingEXT:    "InputAttachmentArrayNonUniformIndexingEXT",
	CapabilityUniformTexelBufferArrayNonUniformIndexingEXT: "UniformTexelBufferArrayNonUniformIndexingEXT",
	CapabilityStorageTexelBufferArrayNonUniformIndexingEXT: "StorageTexelBufferArrayNonUniformIndexingEXT",
	CapabilityRayTracingNV:                                 "RayTracingNV",
	CapabilityVulkanMemoryModelKHR:                         "VulkanMemoryModelKHR",
	CapabilityVulkanMemoryModelDeviceScopeKHR:              "VulkanMemoryModelDeviceScopeKHR",
	CapabilityPhysicalStorageBufferAddresses:               "PhysicalStorageBufferAddresses",
	CapabilityComputeDerivativeGroupLinearNV:               "ComputeDerivativeGroupLinearNV",
	CapabilityCooperativeMatrixNV:                          "CooperativeMatrixNV",
	CapabilitySubgroupShuffleINTEL:                         "SubgroupShuffleINTEL",
	CapabilitySubgroupBufferBlockIOINTEL:                   "SubgroupBufferBlockIOINTEL",
	CapabilitySubgroupImageBlockIOINTEL:                    "SubgroupImageBlockIOINTEL",
}

var capabilitiesByName = func() map[string]Capability {
	m := make(map[string]Capability, len(capabilityNames))
	for c, name := range capabilityNames {
		m[name] = c
	}
	return m
}()

// CapabilityByName returns the capability with the given registry name.
func CapabilityByName(name string) (Capability, bool) {
	c, ok := capabilitiesByName[name]
	return c, ok
}

var decorationNames = map[Decoration]string{
	DecorationRelaxedPrecision:     "RelaxedPrecision",
	DecorationSpecId:               "SpecId",
	DecorationBlock:                "Block",
	DecorationBufferBlock:          "BufferBlock",
	DecorationRowMajor:             "RowMajor",
	DecorationColMajor:             "ColMajor",
	DecorationArrayStride:          "ArrayStride",
	DecorationMatrixStride:         "MatrixStride",
	DecorationGLSLShared:           "GLSLShared",
	DecorationGLSLPacked:           "GLSLPacked",
	DecorationCPacked:              "CPacked",
	DecorationBuiltIn:              "BuiltIn",
	DecorationNoPerspective:        "NoPerspective",
	DecorationFlat:                 "Flat",
	DecorationPatch:                "Patch",
	DecorationCentroid:             "Centroid",
	DecorationSample:               "Sample",
	DecorationInvariant:            "Invariant",
	DecorationRestrict:             "Restrict",
	DecorationAliased:              "Aliased",
	DecorationVolatile:             "Volatile",
	DecorationConstant:             "Constant",
	DecorationCoherent:             "Coherent",
	DecorationNonWritable:          "NonWritable",
	DecorationNonReadable:          "NonReadable",
	DecorationUniform:              "Uniform",
	DecorationUniformId:            "UniformId",
	DecorationSaturatedConversion:  "SaturatedConversion",
	DecorationStream:               "Stream",
	DecorationLocation:             "Location",
	DecorationComponent:            "Component",
	DecorationIndex:                "Index",
	DecorationBinding:              "Binding",
	DecorationDescriptorSet:        "DescriptorSet",
	DecorationOffset:               "Offset",
	DecorationXfbBuffer:            "XfbBuffer",
	DecorationXfbStride:            "XfbStride",
	DecorationFuncParamAttr:        "FuncParamAttr",
	DecorationFPRoundingMode:       "FPRoundingMode",
	DecorationFPFastMathMode:       "FPFastMathMode",
	DecorationLinkageAttributes:    "LinkageAttributes",
	DecorationNoContraction:        "NoContraction",
	DecorationInputAttachmentIndex: "InputAttachmentIndex",
	DecorationAlignment:            "Alignment",
	DecorationMaxByteOffset:        "MaxByteOffset",
	DecorationAlignmentId:          "AlignmentId",
	DecorationMaxByteOffsetId:      "MaxByteOffsetId",
	DecorationNoSignedWrap:         "NoSignedWrap",
	DecorationNoUnsignedWrap:       "NoUnsignedWrap",
	DecorationNonUniformEXT:        "NonUniformEXT",
	DecorationRestrictPointer:      "RestrictPointer",
	DecorationAliasedPointer:       "AliasedPointer",
}

var builtInNames = map[BuiltIn]string{
	BuiltInPosition:                  "Position",
	BuiltInPointSize:                 "PointSize",
	BuiltInClipDistance:              "ClipDistance",
	BuiltInCullDistance:              "CullDistance",
	BuiltInVertexId:                  "VertexId",
	BuiltInInstanceId:                "InstanceId",
	BuiltInPrimitiveId:               "PrimitiveId",
	BuiltInInvocationId:              "InvocationId",
	BuiltInLayer:                     "Layer",
	BuiltInViewportIndex:             "ViewportIndex",
	BuiltInTessLevelOuter:            "TessLevelOuter",
	BuiltInTessLevelInner:            "TessLevelInner",
	BuiltInTessCoord:                 "TessCoord",
	BuiltInPatchVertices:             "PatchVertices",
	BuiltInFragCoord:                 "FragCoord",
	BuiltInPointCoord:                "PointCoord",
	BuiltInFrontFacing:               "FrontFacing",
	BuiltInSampleId:                  "SampleId",
	BuiltInSamplePosition:            "SamplePosition",
	BuiltInSampleMask:                "SampleMask",
	BuiltInFragDepth:                 "FragDepth",
	BuiltInHelperInvocation:          "HelperInvocation",
	BuiltInNumWorkgroups:             "NumWorkgroups",
	BuiltInWorkgroupSize:             "WorkgroupSize",
	BuiltInWorkgroupId:               "WorkgroupId",
	BuiltInLocalInvocationId:         "LocalInvocationId",
	BuiltInGlobalInvocationId:        "GlobalInvocationId",
	BuiltInLocalInvocationIndex:      "LocalInvocationIndex",
	BuiltInWorkDim:                   "WorkDim",
	BuiltInGlobalSize:                "GlobalSize",
	BuiltInEnqueuedWorkgroupSize:     "EnqueuedWorkgroupSize",
	BuiltInGlobalOffset:              "GlobalOffset",
	BuiltInGlobalLinearId:            "GlobalLinearId",
	BuiltInSubgroupSize:              "SubgroupSize",
	BuiltInSubgroupMaxSize:           "SubgroupMaxSize",
	BuiltInNumSubgroups:              "NumSubgroups",
	BuiltInNumEnqueuedSubgroups:      "NumEnqueuedSubgroups",
	BuiltInSubgroupId:                "SubgroupId",
	BuiltInSubgroupLocalInvocationId: "SubgroupLocalInvocationId",
	BuiltInVertexIndex:               "VertexIndex",
	BuiltInInstanceIndex:             "InstanceIndex",
	BuiltInSubgroupEqMask:            "SubgroupEqMask",
	BuiltInSubgroupGeMask:            "SubgroupGeMask",
	BuiltInSubgroupGtMask:            "SubgroupGtMask",
	BuiltInSubgroupLeMask:            "SubgroupLeMask",
	BuiltInSubgroupLtMask:            "SubgroupLtMask",
	BuiltInBaseVertex:                "BaseVertex",
	BuiltInBaseInstance:              "BaseInstance",
	BuiltInDrawIndex:                 "DrawIndex",
	BuiltInDeviceIndex:               "DeviceIndex",
	BuiltInViewIndex:                 "ViewIndex",
	BuiltInFragStencilRefEXT:         "FragStencilRefEXT",
	BuiltInFullyCoveredEXT:           "FullyCoveredEXT",
}
