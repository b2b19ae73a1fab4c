package spirv

// Requirement describes what declaring or using a single enum value demands
// of a module: at least one of the alternative capability sets must be
// enabled, the listed extensions must be declared unless the module version
// falls inside [MinVersion, MaxVersion], where the feature is core.
//
// A zero MinVersion means no lower bound; a zero MaxVersion means no upper
// bound. Alternatives are tried in declaration order.
type Requirement struct {
	Alternatives [][]Capability
	Extensions   []Extension
	MinVersion   Version
	MaxVersion   Version
}

// IsEmpty reports whether r demands nothing.
func (r Requirement) IsEmpty() bool {
	return len(r.Alternatives) == 0 && len(r.Extensions) == 0 &&
		r.MinVersion.IsZero() && r.MaxVersion.IsZero()
}

// anyOf builds an alternatives list where each capability on its own
// satisfies the requirement.
func anyOf(caps ...Capability) [][]Capability {
	alts := make([][]Capability, len(caps))
	for i, c := range caps {
		alts[i] = []Capability{c}
	}
	return alts
}

// capabilityDeps lists each capability's direct prerequisites. Unlike the
// alternatives in a Requirement, prerequisites are conjunctive: enabling
// the key requires enabling every listed capability.
//
// Mirrors the "depends on" column of the capability section of the SPIR-V
// registry. Capabilities with no prerequisites are absent.
var capabilityDeps = map[Capability][]Capability{
	CapabilityShader:                                       {CapabilityMatrix},
	CapabilityGeometry:                                     {CapabilityShader},
	CapabilityTessellation:                                 {CapabilityShader},
	CapabilityVector16:                                     {CapabilityKernel},
	CapabilityFloat16Buffer:                                {CapabilityKernel},
	CapabilityInt64Atomics:                                 {CapabilityInt64},
	CapabilityImageBasic:                                   {CapabilityKernel},
	CapabilityImageReadWrite:                               {CapabilityImageBasic},
	CapabilityImageMipmap:                                  {CapabilityImageBasic},
	CapabilityPipes:                                        {CapabilityKernel},
	CapabilityGroups:                                       {},
	CapabilityDeviceEnqueue:                                {CapabilityKernel},
	CapabilityLiteralSampler:                               {CapabilityKernel},
	CapabilityAtomicStorage:                                {CapabilityShader},
	CapabilityTessellationPointSize:                        {CapabilityTessellation},
	CapabilityGeometryPointSize:                            {CapabilityGeometry},
	CapabilityImageGatherExtended:                          {CapabilityShader},
	CapabilityStorageImageMultisample:                      {CapabilityShader},
	CapabilityUniformBufferArrayDynamicIndexing:            {CapabilityShader},
	CapabilitySampledImageArrayDynamicIndexing:             {CapabilityShader},
	CapabilityClipDistance:                                 {CapabilityShader},
	CapabilityCullDistance:                                 {CapabilityShader},
	CapabilityImageCubeArray:                               {CapabilitySampledCubeArray},
	CapabilitySampleRateShading:                            {CapabilityShader},
	CapabilityImageRect:                                    {CapabilitySampledRect},
	CapabilitySampledRect:                                  {CapabilityShader},
	CapabilityGenericPointer:                               {CapabilityAddresses},
	CapabilityInputAttachment:                              {CapabilityShader},
	CapabilitySparseResidency:                              {CapabilityShader},
	CapabilityMinLod:                                       {CapabilityShader},
	CapabilityImage1D:                                      {CapabilitySampled1D},
	CapabilitySampledCubeArray:                             {CapabilityShader},
	CapabilityImageBuffer:                                  {CapabilitySampledBuffer},
	CapabilityImageMSArray:                                 {CapabilityShader},
	CapabilityStorageImageExtendedFormats:                  {CapabilityShader},
	CapabilityImageQuery:                                   {CapabilityShader},
	CapabilityDerivativeControl:                            {CapabilityShader},
	CapabilityInterpolationFunction:                        {CapabilityShader},
	CapabilityTransformFeedback:                            {CapabilityShader},
	CapabilityGeometryStreams:                              {CapabilityGeometry},
	CapabilityStorageImageReadWithoutFormat:                {CapabilityShader},
	CapabilityStorageImageWriteWithoutFormat:               {CapabilityShader},
	CapabilityMultiViewport:                                {CapabilityGeometry},
	CapabilitySubgroupDispatch:                             {CapabilityDeviceEnqueue},
	CapabilityNamedBarrier:                                 {CapabilityKernel},
	CapabilityPipeStorage:                                  {CapabilityPipes},
	CapabilityGroupNonUniformVote:                          {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformArithmetic:                    {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformBallot:                        {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformShuffle:                       {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformShuffleRelative:               {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformClustered:                     {CapabilityGroupNonUniform},
	CapabilityGroupNonUniformQuad:                          {CapabilityGroupNonUniform},
	CapabilityDrawParameters:                               {CapabilityShader},
	CapabilityStorageUniform16:                             {CapabilityStorageBuffer16BitAccess},
	CapabilityMultiView:                                    {CapabilityShader},
	CapabilityVariablePointersStorageBuffer:                {CapabilityShader},
	CapabilityVariablePointers:                             {CapabilityVariablePointersStorageBuffer},
	CapabilityAtomicStorageOps:                             {CapabilityAtomicStorage},
	CapabilitySampleMaskPostDepthCoverage:                  {CapabilitySampleRateShading},
	CapabilityUniformAndStorageBuffer8BitAccess:            {CapabilityStorageBuffer8BitAccess},
	CapabilityFloat16ImageAMD:                              {CapabilityShader},
	CapabilityImageGatherBiasLodAMD:                        {CapabilityShader},
	CapabilityFragmentMaskAMD:                              {CapabilityShader},
	CapabilityStencilExportEXT:                             {CapabilityShader},
	CapabilityImageReadWriteLodAMD:                         {CapabilityShader},
	CapabilitySampleMaskOverrideCoverageNV:                 {CapabilitySampleRateShading},
	CapabilityGeometryShaderPassthroughNV:                  {CapabilityGeometry},
	CapabilityShaderViewportIndexLayerEXT:                  {CapabilityMultiViewport},
	CapabilityShaderViewportMaskNV:                         {CapabilityShaderViewportIndexLayerEXT},
	CapabilityShaderStereoViewNV:                           {CapabilityShaderViewportMaskNV},
	CapabilityPerViewAttributesNV:                          {CapabilityMultiView},
	CapabilityFragmentFullyCoveredEXT:                      {CapabilityShader},
	CapabilityMeshShadingNV:                                {CapabilityShader},
	CapabilityFragmentDensityEXT:                           {CapabilityShader},
	CapabilityShaderNonUniformEXT:                          {CapabilityShader},
	CapabilityRuntimeDescriptorArrayEXT:                    {CapabilityShader},
	CapabilityInputAttachmentArrayDynamicIndexingEXT:       {CapabilityInputAttachment},
	CapabilityUniformTexelBufferArrayDynamicIndexingEXT:    {CapabilitySampledBuffer},
	CapabilityStorageTexelBufferArrayDynamicIndexingEXT:    {CapabilityImageBuffer},
	CapabilityUniformBufferArrayNonUniformIndexingEXT:      {CapabilityShaderNonUniformEXT},
	CapabilitySampledImageArrayNonUniformIndexingEXT:       {CapabilityShaderNonUniformEXT},
	CapabilityStorageBufferArrayNonUniformIndexingEXT:      {CapabilityShaderNonUniformEXT},
	CapabilityStorageImageArrayNonUniformIndexingEXT:       {CapabilityShaderNonUniformEXT},
	CapabilityInputAttachmentArrayNonUniformIndexingEXT:    {CapabilityInputAttachment, CapabilityShaderNonUniformEXT},
	CapabilityUniformTexelBufferArrayNonUniformIndexingEXT: {CapabilitySampledBuffer, CapabilityShaderNonUniformEXT},
	CapabilityStorageTexelBufferArrayNonUniformIndexingEXT: {CapabilityImageBuffer, CapabilityShaderNonUniformEXT},
	CapabilityRayTracingNV:                                 {CapabilityShader},
	CapabilityPhysicalStorageBufferAddresses:               {CapabilityShader},
	CapabilityCooperativeMatrixNV:                          {CapabilityShader},
}

// capabilityGates holds, for capabilities that are themselves gated, the
// extensions that provide them and the core version that absorbs them.
var capabilityGates = map[Capability]Requirement{
	CapabilitySubgroupDispatch:                             {MinVersion: Version1_1},
	CapabilityNamedBarrier:                                 {MinVersion: Version1_1},
	CapabilityPipeStorage:                                  {MinVersion: Version1_1},
	CapabilityGroupNonUniform:                              {MinVersion: Version1_3},
	CapabilityGroupNonUniformVote:                          {MinVersion: Version1_3},
	CapabilityGroupNonUniformArithmetic:                    {MinVersion: Version1_3},
	CapabilityGroupNonUniformBallot:                        {MinVersion: Version1_3},
	CapabilityGroupNonUniformShuffle:                       {MinVersion: Version1_3},
	CapabilityGroupNonUniformShuffleRelative:               {MinVersion: Version1_3},
	CapabilityGroupNonUniformClustered:                     {MinVersion: Version1_3},
	CapabilityGroupNonUniformQuad:                          {MinVersion: Version1_3},
	CapabilitySubgroupBallotKHR:                            {Extensions: []Extension{ExtKHRShaderBallot}},
	CapabilityDrawParameters:                               {Extensions: []Extension{ExtKHRShaderDrawParameters}, MinVersion: Version1_3},
	CapabilitySubgroupVoteKHR:                              {Extensions: []Extension{ExtKHRSubgroupVote}},
	CapabilityStorageBuffer16BitAccess:                     {Extensions: []Extension{ExtKHR16BitStorage}, MinVersion: Version1_3},
	CapabilityStorageUniform16:                             {Extensions: []Extension{ExtKHR16BitStorage}, MinVersion: Version1_3},
	CapabilityStoragePushConstant16:                        {Extensions: []Extension{ExtKHR16BitStorage}, MinVersion: Version1_3},
	CapabilityStorageInputOutput16:                         {Extensions: []Extension{ExtKHR16BitStorage}, MinVersion: Version1_3},
	CapabilityDeviceGroup:                                  {Extensions: []Extension{ExtKHRDeviceGroup}, MinVersion: Version1_3},
	CapabilityMultiView:                                    {Extensions: []Extension{ExtKHRMultiview}, MinVersion: Version1_3},
	CapabilityVariablePointersStorageBuffer:                {Extensions: []Extension{ExtKHRVariablePointers}, MinVersion: Version1_3},
	CapabilityVariablePointers:                             {Extensions: []Extension{ExtKHRVariablePointers}, MinVersion: Version1_3},
	CapabilityAtomicStorageOps:                             {Extensions: []Extension{ExtKHRShaderAtomicCounterOps}},
	CapabilitySampleMaskPostDepthCoverage:                  {Extensions: []Extension{ExtKHRPostDepthCoverage}},
	CapabilityStorageBuffer8BitAccess:                      {Extensions: []Extension{ExtKHR8BitStorage}, MinVersion: Version1_5},
	CapabilityUniformAndStorageBuffer8BitAccess:            {Extensions: []Extension{ExtKHR8BitStorage}, MinVersion: Version1_5},
	CapabilityStoragePushConstant8:                         {Extensions: []Extension{ExtKHR8BitStorage}, MinVersion: Version1_5},
	CapabilityDenormPreserve:                               {Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	CapabilityDenormFlushToZero:                            {Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	CapabilitySignedZeroInfNanPreserve:                     {Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	CapabilityRoundingModeRTE:                              {Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	CapabilityRoundingModeRTZ:                              {Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	CapabilityFloat16ImageAMD:                              {Extensions: []Extension{ExtAMDHalfFloatFetch}},
	CapabilityImageGatherBiasLodAMD:                        {Extensions: []Extension{ExtAMDTextureGatherBiasLod}},
	CapabilityFragmentMaskAMD:                              {Extensions: []Extension{ExtAMDShaderFragmentMask}},
	CapabilityStencilExportEXT:                             {Extensions: []Extension{ExtEXTShaderStencilExport}},
	CapabilityImageReadWriteLodAMD:                         {Extensions: []Extension{ExtAMDImageLoadStoreLod}},
	CapabilitySampleMaskOverrideCoverageNV:                 {Extensions: []Extension{ExtNVSampleMaskOverrideCoverage}},
	CapabilityGeometryShaderPassthroughNV:                  {Extensions: []Extension{ExtNVGeometryShaderPassthrough}},
	CapabilityShaderViewportIndexLayerEXT:                  {Extensions: []Extension{ExtEXTViewportIndexLayer, ExtNVViewportArray2}},
	CapabilityShaderViewportMaskNV:                         {Extensions: []Extension{ExtNVViewportArray2}},
	CapabilityShaderStereoViewNV:                           {Extensions: []Extension{ExtNVStereoViewRendering}},
	CapabilityPerViewAttributesNV:                          {Extensions: []Extension{ExtNVXMultiviewPerViewAttributes}},
	CapabilityFragmentFullyCoveredEXT:                      {Extensions: []Extension{ExtEXTFragmentFullyCovered}},
	CapabilityMeshShadingNV:                                {Extensions: []Extension{ExtNVMeshShader}},
	CapabilityImageFootprintNV:                             {Extensions: []Extension{ExtNVShaderImageFootprint}},
	CapabilityFragmentBarycentricNV:                        {Extensions: []Extension{ExtNVFragmentShaderBarycentric}},
	CapabilityComputeDerivativeGroupQuadsNV:                {Extensions: []Extension{ExtNVComputeShaderDerivatives}},
	CapabilityComputeDerivativeGroupLinearNV:               {Extensions: []Extension{ExtNVComputeShaderDerivatives}},
	CapabilityFragmentDensityEXT:                           {Extensions: []Extension{ExtEXTFragmentInvocationDensity}},
	CapabilityGroupNonUniformPartitionedNV:                 {Extensions: []Extension{ExtNVShaderSubgroupPartitioned}},
	CapabilityShaderNonUniformEXT:                          {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityRuntimeDescriptorArrayEXT:                    {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityInputAttachmentArrayDynamicIndexingEXT:       {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityUniformTexelBufferArrayDynamicIndexingEXT:    {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityStorageTexelBufferArrayDynamicIndexingEXT:    {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityUniformBufferArrayNonUniformIndexingEXT:      {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilitySampledImageArrayNonUniformIndexingEXT:       {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityStorageBufferArrayNonUniformIndexingEXT:      {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityStorageImageArrayNonUniformIndexingEXT:       {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityInputAttachmentArrayNonUniformIndexingEXT:    {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityUniformTexelBufferArrayNonUniformIndexingEXT: {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityStorageTexelBufferArrayNonUniformIndexingEXT: {Extensions: []Extension{ExtEXTDescriptorIndexing}, MinVersion: Version1_5},
	CapabilityRayTracingNV:                                 {Extensions: []Extension{ExtNVRayTracing}},
	CapabilityVulkanMemoryModelKHR:                         {Extensions: []Extension{ExtKHRVulkanMemoryModel}, MinVersion: Version1_5},
	CapabilityVulkanMemoryModelDeviceScopeKHR:              {Extensions: []Extension{ExtKHRVulkanMemoryModel}, MinVersion: Version1_5},
	CapabilityPhysicalStorageBufferAddresses:               {Extensions: []Extension{ExtEXTPhysicalStorageBuffer}, MinVersion: Version1_5},
	CapabilityCooperativeMatrixNV:                          {Extensions: []Extension{ExtNVCooperativeMatrix}},
	CapabilitySubgroupShuffleINTEL:                         {Extensions: []Extension{ExtINTELSubgroups}},
	CapabilitySubgroupBufferBlockIOINTEL:                   {Extensions: []Extension{ExtINTELSubgroups}},
	CapabilitySubgroupImageBlockIOINTEL:                    {Extensions: []Extension{ExtINTELSubgroups}},
}

var decorationReqs = map[Decoration]Requirement{
	DecorationRelaxedPrecision:     {Alternatives: anyOf(CapabilityShader)},
	DecorationSpecId:               {Alternatives: anyOf(CapabilityShader, CapabilityKernel)},
	DecorationBlock:                {Alternatives: anyOf(CapabilityShader)},
	DecorationBufferBlock:          {Alternatives: anyOf(CapabilityShader)},
	DecorationRowMajor:             {Alternatives: anyOf(CapabilityMatrix)},
	DecorationColMajor:             {Alternatives: anyOf(CapabilityMatrix)},
	DecorationMatrixStride:         {Alternatives: anyOf(CapabilityMatrix)},
	DecorationGLSLShared:           {Alternatives: anyOf(CapabilityShader)},
	DecorationGLSLPacked:           {Alternatives: anyOf(CapabilityShader)},
	DecorationCPacked:              {Alternatives: anyOf(CapabilityKernel)},
	DecorationNoPerspective:        {Alternatives: anyOf(CapabilityShader)},
	DecorationFlat:                 {Alternatives: anyOf(CapabilityShader)},
	DecorationPatch:                {Alternatives: anyOf(CapabilityTessellation)},
	DecorationCentroid:             {Alternatives: anyOf(CapabilityShader)},
	DecorationSample:               {Alternatives: anyOf(CapabilitySampleRateShading)},
	DecorationInvariant:            {Alternatives: anyOf(CapabilityShader)},
	DecorationConstant:             {Alternatives: anyOf(CapabilityKernel)},
	DecorationUniform:              {Alternatives: anyOf(CapabilityShader)},
	DecorationUniformId:            {Alternatives: anyOf(CapabilityShader), MinVersion: Version1_4},
	DecorationSaturatedConversion:  {Alternatives: anyOf(CapabilityKernel)},
	DecorationStream:               {Alternatives: anyOf(CapabilityGeometryStreams)},
	DecorationLocation:             {Alternatives: anyOf(CapabilityShader)},
	DecorationComponent:            {Alternatives: anyOf(CapabilityShader)},
	DecorationIndex:                {Alternatives: anyOf(CapabilityShader)},
	DecorationBinding:              {Alternatives: anyOf(CapabilityShader)},
	DecorationDescriptorSet:        {Alternatives: anyOf(CapabilityShader)},
	DecorationOffset:               {Alternatives: anyOf(CapabilityShader)},
	DecorationXfbBuffer:            {Alternatives: anyOf(CapabilityTransformFeedback)},
	DecorationXfbStride:            {Alternatives: anyOf(CapabilityTransformFeedback)},
	DecorationFuncParamAttr:        {Alternatives: anyOf(CapabilityKernel)},
	DecorationFPFastMathMode:       {Alternatives: anyOf(CapabilityKernel)},
	DecorationLinkageAttributes:    {Alternatives: anyOf(CapabilityLinkage)},
	DecorationNoContraction:        {Alternatives: anyOf(CapabilityShader)},
	DecorationInputAttachmentIndex: {Alternatives: anyOf(CapabilityInputAttachment)},
	DecorationAlignment:            {Alternatives: anyOf(CapabilityKernel)},
	DecorationMaxByteOffset:        {Alternatives: anyOf(CapabilityAddresses), MinVersion: Version1_1},
	DecorationAlignmentId:          {Alternatives: anyOf(CapabilityKernel), MinVersion: Version1_2},
	DecorationMaxByteOffsetId:      {Alternatives: anyOf(CapabilityAddresses), MinVersion: Version1_2},
	DecorationNoSignedWrap:         {Extensions: []Extension{ExtKHRNoIntegerWrapDecoration}, MinVersion: Version1_4},
	DecorationNoUnsignedWrap:       {Extensions: []Extension{ExtKHRNoIntegerWrapDecoration}, MinVersion: Version1_4},
	DecorationNonUniformEXT:        {Alternatives: anyOf(CapabilityShaderNonUniformEXT)},
	DecorationRestrictPointer:      {Alternatives: anyOf(CapabilityPhysicalStorageBufferAddresses), Extensions: []Extension{ExtEXTPhysicalStorageBuffer}, MinVersion: Version1_5},
	DecorationAliasedPointer:       {Alternatives: anyOf(CapabilityPhysicalStorageBufferAddresses), Extensions: []Extension{ExtEXTPhysicalStorageBuffer}, MinVersion: Version1_5},
}

var builtInReqs = map[BuiltIn]Requirement{
	BuiltInPosition:                  {Alternatives: anyOf(CapabilityShader)},
	BuiltInPointSize:                 {Alternatives: anyOf(CapabilityShader)},
	BuiltInClipDistance:              {Alternatives: anyOf(CapabilityClipDistance)},
	BuiltInCullDistance:              {Alternatives: anyOf(CapabilityCullDistance)},
	BuiltInVertexId:                  {Alternatives: anyOf(CapabilityShader)},
	BuiltInInstanceId:                {Alternatives: anyOf(CapabilityShader)},
	BuiltInPrimitiveId:               {Alternatives: anyOf(CapabilityGeometry, CapabilityTessellation, CapabilityRayTracingNV, CapabilityMeshShadingNV)},
	BuiltInInvocationId:              {Alternatives: anyOf(CapabilityGeometry, CapabilityTessellation)},
	BuiltInLayer:                     {Alternatives: anyOf(CapabilityGeometry, CapabilityShaderViewportIndexLayerEXT, CapabilityMeshShadingNV)},
	BuiltInViewportIndex:             {Alternatives: anyOf(CapabilityMultiViewport, CapabilityShaderViewportIndexLayerEXT, CapabilityMeshShadingNV)},
	BuiltInTessLevelOuter:            {Alternatives: anyOf(CapabilityTessellation)},
	BuiltInTessLevelInner:            {Alternatives: anyOf(CapabilityTessellation)},
	BuiltInTessCoord:                 {Alternatives: anyOf(CapabilityTessellation)},
	BuiltInPatchVertices:             {Alternatives: anyOf(CapabilityTessellation)},
	BuiltInFragCoord:                 {Alternatives: anyOf(CapabilityShader)},
	BuiltInPointCoord:                {Alternatives: anyOf(CapabilityShader)},
	BuiltInFrontFacing:               {Alternatives: anyOf(CapabilityShader)},
	BuiltInSampleId:                  {Alternatives: anyOf(CapabilitySampleRateShading)},
	BuiltInSamplePosition:            {Alternatives: anyOf(CapabilitySampleRateShading)},
	BuiltInSampleMask:                {Alternatives: anyOf(CapabilityShader)},
	BuiltInFragDepth:                 {Alternatives: anyOf(CapabilityShader)},
	BuiltInHelperInvocation:          {Alternatives: anyOf(CapabilityShader)},
	BuiltInWorkDim:                   {Alternatives: anyOf(CapabilityKernel)},
	BuiltInGlobalSize:                {Alternatives: anyOf(CapabilityKernel)},
	BuiltInEnqueuedWorkgroupSize:     {Alternatives: anyOf(CapabilityKernel)},
	BuiltInGlobalOffset:              {Alternatives: anyOf(CapabilityKernel)},
	BuiltInGlobalLinearId:            {Alternatives: anyOf(CapabilityKernel)},
	BuiltInSubgroupSize:              {Alternatives: anyOf(CapabilityKernel, CapabilityGroupNonUniform, CapabilitySubgroupBallotKHR)},
	BuiltInSubgroupMaxSize:           {Alternatives: anyOf(CapabilityKernel)},
	BuiltInNumSubgroups:              {Alternatives: anyOf(CapabilityKernel, CapabilityGroupNonUniform)},
	BuiltInNumEnqueuedSubgroups:      {Alternatives: anyOf(CapabilityKernel)},
	BuiltInSubgroupId:                {Alternatives: anyOf(CapabilityKernel, CapabilityGroupNonUniform)},
	BuiltInSubgroupLocalInvocationId: {Alternatives: anyOf(CapabilityKernel, CapabilityGroupNonUniform, CapabilitySubgroupBallotKHR)},
	BuiltInVertexIndex:               {Alternatives: anyOf(CapabilityShader)},
	BuiltInInstanceIndex:             {Alternatives: anyOf(CapabilityShader)},
	BuiltInSubgroupEqMask:            {Alternatives: anyOf(CapabilitySubgroupBallotKHR, CapabilityGroupNonUniformBallot)},
	BuiltInSubgroupGeMask:            {Alternatives: anyOf(CapabilitySubgroupBallotKHR, CapabilityGroupNonUniformBallot)},
	BuiltInSubgroupGtMask:            {Alternatives: anyOf(CapabilitySubgroupBallotKHR, CapabilityGroupNonUniformBallot)},
	BuiltInSubgroupLeMask:            {Alternatives: anyOf(CapabilitySubgroupBallotKHR, CapabilityGroupNonUniformBallot)},
	BuiltInSubgroupLtMask:            {Alternatives: anyOf(CapabilitySubgroupBallotKHR, CapabilityGroupNonUniformBallot)},
	BuiltInBaseVertex:                {Alternatives: anyOf(CapabilityDrawParameters)},
	BuiltInBaseInstance:              {Alternatives: anyOf(CapabilityDrawParameters)},
	BuiltInDrawIndex:                 {Alternatives: anyOf(CapabilityDrawParameters, CapabilityMeshShadingNV)},
	BuiltInDeviceIndex:               {Alternatives: anyOf(CapabilityDeviceGroup)},
	BuiltInViewIndex:                 {Alternatives: anyOf(CapabilityMultiView)},
	BuiltInFragStencilRefEXT:         {Alternatives: anyOf(CapabilityStencilExportEXT)},
	BuiltInFullyCoveredEXT:           {Alternatives: anyOf(CapabilityFragmentFullyCoveredEXT)},
}

var executionModelReqs = map[ExecutionModel]Requirement{
	ExecutionModelVertex:                 {Alternatives: anyOf(CapabilityShader)},
	ExecutionModelTessellationControl:    {Alternatives: anyOf(CapabilityTessellation)},
	ExecutionModelTessellationEvaluation: {Alternatives: anyOf(CapabilityTessellation)},
	ExecutionModelGeometry:               {Alternatives: anyOf(CapabilityGeometry)},
	ExecutionModelFragment:               {Alternatives: anyOf(CapabilityShader)},
	ExecutionModelGLCompute:              {Alternatives: anyOf(CapabilityShader)},
	ExecutionModelKernel:                 {Alternatives: anyOf(CapabilityKernel)},
	ExecutionModelTaskNV:                 {Alternatives: anyOf(CapabilityMeshShadingNV)},
	ExecutionModelMeshNV:                 {Alternatives: anyOf(CapabilityMeshShadingNV)},
	ExecutionModelRayGenerationNV:        {Alternatives: anyOf(CapabilityRayTracingNV)},
	ExecutionModelIntersectionNV:         {Alternatives: anyOf(CapabilityRayTracingNV)},
	ExecutionModelAnyHitNV:               {Alternatives: anyOf(CapabilityRayTracingNV)},
	ExecutionModelClosestHitNV:           {Alternatives: anyOf(CapabilityRayTracingNV)},
	ExecutionModelMissNV:                 {Alternatives: anyOf(CapabilityRayTracingNV)},
	ExecutionModelCallableNV:             {Alternatives: anyOf(CapabilityRayTracingNV)},
}

var executionModeReqs = map[ExecutionMode]Requirement{
	ExecModeInvocations:              {Alternatives: anyOf(CapabilityGeometry)},
	ExecModeSpacingEqual:             {Alternatives: anyOf(CapabilityTessellation)},
	ExecModeSpacingFractionalEven:    {Alternatives: anyOf(CapabilityTessellation)},
	ExecModeSpacingFractionalOdd:     {Alternatives: anyOf(CapabilityTessellation)},
	ExecModeVertexOrderCw:            {Alternatives: anyOf(CapabilityTessellation)},
	ExecModeVertexOrderCcw:           {Alternatives: anyOf(CapabilityTessellation)},
	ExecModePixelCenterInteger:       {Alternatives: anyOf(CapabilityShader)},
	ExecModeOriginUpperLeft:          {Alternatives: anyOf(CapabilityShader)},
	ExecModeOriginLowerLeft:          {Alternatives: anyOf(CapabilityShader)},
	ExecModeEarlyFragmentTests:       {Alternatives: anyOf(CapabilityShader)},
	ExecModePointMode:                {Alternatives: anyOf(CapabilityTessellation)},
	ExecModeXfb:                      {Alternatives: anyOf(CapabilityTransformFeedback)},
	ExecModeDepthReplacing:           {Alternatives: anyOf(CapabilityShader)},
	ExecModeDepthGreater:             {Alternatives: anyOf(CapabilityShader)},
	ExecModeDepthLess:                {Alternatives: anyOf(CapabilityShader)},
	ExecModeDepthUnchanged:           {Alternatives: anyOf(CapabilityShader)},
	ExecModeLocalSizeHint:            {Alternatives: anyOf(CapabilityKernel)},
	ExecModeInputPoints:              {Alternatives: anyOf(CapabilityGeometry)},
	ExecModeInputLines:               {Alternatives: anyOf(CapabilityGeometry)},
	ExecModeInputLinesAdjacency:      {Alternatives: anyOf(CapabilityGeometry)},
	ExecModeTriangles:                {Alternatives: anyOf(CapabilityGeometry, CapabilityTessellation)},
	ExecModeInputTrianglesAdjacency:  {Alternatives: anyOf(CapabilityGeometry)},
	ExecModeQuads:                    {Alternatives: anyOf(CapabilityTessellation)},
	ExecModeIsolines:                 {Alternatives: anyOf(CapabilityTessellation)},
	ExecModeOutputVertices:           {Alternatives: anyOf(CapabilityGeometry, CapabilityTessellation, CapabilityMeshShadingNV)},
	ExecModeOutputPoints:             {Alternatives: anyOf(CapabilityGeometry, CapabilityMeshShadingNV)},
	ExecModeOutputLineStrip:          {Alternatives: anyOf(CapabilityGeometry)},
	ExecModeOutputTriangleStrip:      {Alternatives: anyOf(CapabilityGeometry)},
	ExecModeVecTypeHint:              {Alternatives: anyOf(CapabilityKernel)},
	ExecModeContractionOff:           {Alternatives: anyOf(CapabilityKernel)},
	ExecModeInitializer:              {Alternatives: anyOf(CapabilityKernel), MinVersion: Version1_1},
	ExecModeFinalizer:                {Alternatives: anyOf(CapabilityKernel), MinVersion: Version1_1},
	ExecModeSubgroupSize:             {Alternatives: anyOf(CapabilitySubgroupDispatch), MinVersion: Version1_1},
	ExecModeSubgroupsPerWorkgroup:    {Alternatives: anyOf(CapabilitySubgroupDispatch), MinVersion: Version1_1},
	ExecModeSubgroupsPerWorkgroupId:  {Alternatives: anyOf(CapabilitySubgroupDispatch), MinVersion: Version1_2},
	ExecModeLocalSizeId:              {MinVersion: Version1_2},
	ExecModeLocalSizeHintId:          {Alternatives: anyOf(CapabilityKernel), MinVersion: Version1_2},
	ExecModePostDepthCoverage:        {Alternatives: anyOf(CapabilitySampleMaskPostDepthCoverage), Extensions: []Extension{ExtKHRPostDepthCoverage}},
	ExecModeDenormPreserve:           {Alternatives: anyOf(CapabilityDenormPreserve), Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	ExecModeDenormFlushToZero:        {Alternatives: anyOf(CapabilityDenormFlushToZero), Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	ExecModeSignedZeroInfNanPreserve: {Alternatives: anyOf(CapabilitySignedZeroInfNanPreserve), Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	ExecModeRoundingModeRTE:          {Alternatives: anyOf(CapabilityRoundingModeRTE), Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	ExecModeRoundingModeRTZ:          {Alternatives: anyOf(CapabilityRoundingModeRTZ), Extensions: []Extension{ExtKHRFloatControls}, MinVersion: Version1_4},
	ExecModeStencilRefReplacingEXT:   {Alternatives: anyOf(CapabilityStencilExportEXT), Extensions: []Extension{ExtEXTShaderStencilExport}},
}

var storageClassReqs = map[StorageClass]Requirement{
	StorageClassUniform:               {Alternatives: anyOf(CapabilityShader)},
	StorageClassOutput:                {Alternatives: anyOf(CapabilityShader)},
	StorageClassPrivate:               {Alternatives: anyOf(CapabilityShader)},
	StorageClassGeneric:               {Alternatives: anyOf(CapabilityGenericPointer)},
	StorageClassPushConstant:          {Alternatives: anyOf(CapabilityShader)},
	StorageClassAtomicCounter:         {Alternatives: anyOf(CapabilityAtomicStorage)},
	StorageClassStorageBuffer:         {Alternatives: anyOf(CapabilityShader), Extensions: []Extension{ExtKHRStorageBufferClass}, MinVersion: Version1_3},
	StorageClassPhysicalStorageBuffer: {Alternatives: anyOf(CapabilityPhysicalStorageBufferAddresses), Extensions: []Extension{ExtEXTPhysicalStorageBuffer}, MinVersion: Version1_5},
}

// imageFormatReqs holds formats beyond Unknown. The first block is usable
// with plain Shader; the rest need StorageImageExtendedFormats.
var imageFormatReqs = map[ImageFormat]Requirement{
	ImageFormatRgba32f:      {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba16f:      {Alternatives: anyOf(CapabilityShader)},
	ImageFormatR32f:         {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba8:        {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba8Snorm:   {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba32i:      {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba16i:      {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba8i:       {Alternatives: anyOf(CapabilityShader)},
	ImageFormatR32i:         {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba32ui:     {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba16ui:     {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRgba8ui:      {Alternatives: anyOf(CapabilityShader)},
	ImageFormatR32ui:        {Alternatives: anyOf(CapabilityShader)},
	ImageFormatRg32f:        {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg16f:        {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR11fG11fB10f: {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR16f:         {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRgba16:       {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRgb10A2:      {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg16:         {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg8:          {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR16:          {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR8:           {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRgba16Snorm:  {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg16Snorm:    {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg8Snorm:     {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR16Snorm:     {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR8Snorm:      {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg32i:        {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg16i:        {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg8i:         {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR16i:         {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR8i:          {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRgb10a2ui:    {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg32ui:       {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg16ui:       {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatRg8ui:        {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR16ui:        {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
	ImageFormatR8ui:         {Alternatives: anyOf(CapabilityStorageImageExtendedFormats)},
}

var addressingModelReqs = map[AddressingModel]Requirement{
	AddressingModelPhysical32:              {Alternatives: anyOf(CapabilityAddresses)},
	AddressingModelPhysical64:              {Alternatives: anyOf(CapabilityAddresses)},
	AddressingModelPhysicalStorageBuffer64: {Alternatives: anyOf(CapabilityPhysicalStorageBufferAddresses), Extensions: []Extension{ExtEXTPhysicalStorageBuffer}, MinVersion: Version1_5},
}

var memoryModelReqs = map[MemoryModel]Requirement{
	MemoryModelSimple:    {Alternatives: anyOf(CapabilityShader)},
	MemoryModelGLSL450:   {Alternatives: anyOf(CapabilityShader)},
	MemoryModelOpenCL:    {Alternatives: anyOf(CapabilityKernel)},
	MemoryModelVulkanKHR: {Alternatives: anyOf(CapabilityVulkanMemoryModelKHR), Extensions: []Extension{ExtKHRVulkanMemoryModel}, MinVersion: Version1_5},
}

// CapabilityDependencies returns c's direct prerequisite capabilities.
// Callers must not mutate the returned slice.
func CapabilityDependencies(c Capability) []Capability {
	return capabilityDeps[c]
}

// CapabilityRequirement returns what declaring c itself demands: the
// capability, plus any extensions providing it and the version at which it
// became core. The second result is false for unknown capabilities.
func CapabilityRequirement(c Capability) (Requirement, bool) {
	if _, known := capabilityNames[c]; !known {
		return Requirement{}, false
	}
	req := Requirement{Alternatives: anyOf(c)}
	if gate, ok := capabilityGates[c]; ok {
		req.Extensions = gate.Extensions
		req.MinVersion = gate.MinVersion
		req.MaxVersion = gate.MaxVersion
	}
	return req, true
}

// DecorationRequirement returns the requirement for using d.
// ok is false when d carries no requirement or is unknown.
func DecorationRequirement(d Decoration) (Requirement, bool) {
	req, ok := decorationReqs[d]
	return req, ok
}

// BuiltInRequirement returns the requirement for referencing b.
func BuiltInRequirement(b BuiltIn) (Requirement, bool) {
	req, ok := builtInReqs[b]
	return req, ok
}

// ExecutionModelRequirement returns the requirement for an entry point
// using m.
func ExecutionModelRequirement(m ExecutionModel) (Requirement, bool) {
	req, ok := executionModelReqs[m]
	return req, ok
}

// ExecutionModeRequirement returns the requirement for declaring m.
func ExecutionModeRequirement(m ExecutionMode) (Requirement, bool) {
	req, ok := executionModeReqs[m]
	return req, ok
}

// StorageClassRequirement returns the requirement for a pointer or
// variable in sc.
func StorageClassRequirement(sc StorageClass) (Requirement, bool) {
	req, ok := storageClassReqs[sc]
	return req, ok
}

// ImageFormatRequirement returns the requirement for an image type with
// format f. ImageFormatUnknown carries no requirement.
func ImageFormatRequirement(f ImageFormat) (Requirement, bool) {
	req, ok := imageFormatReqs[f]
	return req, ok
}

// AddressingModelRequirement returns the requirement for declaring m.
func AddressingModelRequirement(m AddressingModel) (Requirement, bool) {
	req, ok := addressingModelReqs[m]
	return req, ok
}

// MemoryModelRequirement returns the requirement for declaring m.
func MemoryModelRequirement(m MemoryModel) (Requirement, bool) {
	req, ok := memoryModelReqs[m]
	return req, ok
}

// The dependency graph must be acyclic: transitive closure over it is
// unbounded otherwise. Checked once at package load.
func init() {
	const (
		white = iota
		grey
		black
	)
	color := make(map[Capability]int, len(capabilityDeps))
	var visit func(c Capability)
	visit = func(c Capability) {
		switch color[c] {
		case grey:
			panic("spirv: capability dependency cycle through " + c.String())
		case black:
			return
		}
		color[c] = grey
		for _, dep := range capabilityDeps[c] {
			visit(dep)
		}
		color[c] = black
	}
	for c := range capabilityDeps {
		visit(c)
	}
}
