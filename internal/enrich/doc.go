// Package enrich attaches external person identities to canonical names.
//
// Enrichment is strictly optional: duplicate detection and merging work
// without it, and a failed lookup is logged and ignored. When a lookup
// succeeds, the detector blends a small confidence bonus into the duplicate
// group and reports the external id, popularity, and department alongside
// it for human review.
package enrich
