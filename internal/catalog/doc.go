// Package catalog persists movie records and the merge audit log in SQLite.
//
// The Store is the record repository the resolution pipeline runs against:
// detection reads movies through SelectMovies, the merge engine rewrites
// name fields through UpdateMovie, and every executed merge appends one row
// to the append-only merge_log table.
//
// Cast lists are heterogeneous in the source data: an element is either a
// bare name string or an object carrying "name" plus arbitrary extra keys.
// CastEntry models both shapes and round-trips them byte-faithfully,
// including elements that match neither shape.
//
// Schema changes bump schemaVersion in schema.go; existing databases must be
// recreated after a bump.
package catalog
