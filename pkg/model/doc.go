// Package model defines the field schema vocabulary and the form document
// consumed by every renderer. A FormDocument is an ordered collection of
// FieldRecord entries plus a display name; the edit operations live here so
// collection-level invariants like id uniqueness and stable ordering are
// enforced in one place. The per-type trait lookups (traits.go) and the
// generation-time constraint resolution (constraints.go) are pure; renderers
// call ResolveConstraints so the interactive preview and the generated source
// text derive the exact same attribute set for any given record.
package model
