// Package spirv models the parts of the SPIR-V binary format needed for
// feature-requirement resolution.
//
// SPIR-V gates most of its surface behind capabilities (feature flags
// declared once per module, possibly with prerequisite capabilities) and
// extensions (optional features that become core at a given version).
// This package provides:
//
//   - the enumerated constants of the format (capabilities, decorations,
//     built-ins, execution models, storage classes, image formats, ...)
//   - the requirement metadata table: for each enum value, which
//     capabilities (alternatives), extensions and version window apply
//   - the capability dependency graph (direct prerequisites)
//   - a minimal instruction model and a binary module decoder
//
// The metadata tables are a fixed data resource mirroring the Khronos
// registry; they are loaded once and never mutated, so they are safe for
// concurrent reads.
//
// The resolution engine itself lives in the resolve package.
//
// # References
//
// SPIR-V Specification: https://registry.khronos.org/SPIR-V/specs/unified1/SPIRV.html
package spirv
