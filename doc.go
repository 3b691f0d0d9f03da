// Package probe is a dynamic document inspection toolkit. It decodes
// JSON/YAML documents into a small dynamic value model and lets callers
// inspect data of unknown shape safely: checking values against structural
// shape definitions, narrowing behind (value, ok) guards instead of
// unchecked casts, and reading nested fields through safe-navigation path
// expressions that yield absence rather than failure.
//
//	`probe` keeps validation explicit and at runtime. A shape check never
//	transforms the value it checks; a path lookup never errors on a missing
//	link. Absence is a normal result the caller handles, not a fault.
//
//	The root package is a thin convenience surface. The real work lives in
//	src/value (the value model), src/shape (definitions and guards),
//	src/path (path expressions), and src/vault (credential records whose
//	lookups always redact the secret).
package probe
