// Package automap copies same-named exported field values between struct
// instances at runtime, so related data shapes (a full entity and a summary
// projection, a domain type and a view model) can be converted without
// per-pair hand-written mapping code.
//
// The Mapper type discovers the fields of the source and destination types
// through reflection, intersects them by name, and assigns each matching
// destination field the corresponding source value. Discovered field sets
// are cached per (type, filter) combination for the life of the Mapper.
//
// Basic Usage
//
//	mapper := automap.New()
//	err := mapper.MapInto(&entity, &summary)
//
// or, constructing the destination in the same call:
//
//	summary, err := automap.MapTo[CountrySummary](mapper, &entity)
//
// # Mapping Rules
//
//  1. Only exported fields participate; matching is by exact, case-sensitive
//     field name.
//  2. A field named "ETag" is never copied. A field named "Id" is not copied
//     unless the call opts in with WithIncludeId(true). This exclusion list
//     is fixed; it is not per-call configuration.
//  3. Fields present on only one side are silently skipped.
//  4. A matched field whose source value is not assignable to the destination
//     field's type fails the call. The mapper matches names, never types, and
//     it performs no conversion.
//
// # Embedded Structs
//
// Embedded struct fields (including pointer-to-struct) are flattened and
// treated as if they were defined directly in the parent struct. A nil
// embedded pointer on the source side is skipped, leaving the matching
// destination fields untouched; on the destination side it is allocated so
// the fields behind it can be written. When two embeds promote the same
// field name — a selector Go itself rejects as ambiguous — the last-declared
// one wins.
//
// # Partial Mutation
//
// Assignment failures are detected per field, in field-declaration order.
// Fields assigned before the failing one keep their new values; there is no
// rollback. Callers treating a failed mapping as fatal should discard the
// destination instance.
//
// # Thread Safety
//
// A Mapper is safe for concurrent use. The field-set cache uses atomic
// get-or-insert semantics; concurrent first lookups of the same type may
// both compute the set and either result may be retained, as the two are
// structurally identical.
package automap
