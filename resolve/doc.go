// Package resolve computes the capability and extension declarations a
// SPIR-V module needs on a given target.
//
// A Profile describes the target environment: client API (Vulkan or
// OpenCL), negotiated versions, addressing model and the extensions the
// target supports. A Resolver walks a module's instructions, maps each to
// its requirements via the spirv metadata tables, closes over capability
// prerequisites and validates everything against the profile. The result
// is a minimal, deterministic set of OpCapability and OpExtension
// declarations, plus a diagnosis of what the module already declares.
package resolve
