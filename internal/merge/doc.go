// Package merge rewrites duplicate name references to a chosen canonical
// form, with dry-run planning, pre-write rollback capture, and an
// append-only audit trail.
//
// A merge is not atomic across movies: each movie's update is an
// independent write, and a crash mid-merge leaves some occurrences
// rewritten and others not. Two mitigations apply. Re-running the same
// merge is a no-op for occurrences that already carry the canonical name,
// and the rollback snapshot is captured for every affected movie before the
// first write, so a bad or interrupted merge can be reversed by hand.
//
// Losing the audit record never fails a merge that otherwise succeeded; an
// audit write failure is logged and swallowed.
package merge
