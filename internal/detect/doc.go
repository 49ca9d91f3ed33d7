// Package detect finds duplicate person references across the movie catalog.
//
// A detection pass scans a bounded batch of movies, buckets every name
// occurrence under its canonical form, then merges buckets linked through
// name variations. Absorption is one level deep only: a bucket absorbs
// buckets reachable through its own variations, never through theirs. Two
// buckets that are both variations of a third merge only when that third
// bucket is processed first, so converging fully can take repeated
// detect-and-merge rounds. This bounds false positives at the cost of
// recall.
//
// Confidence grows with the number of distinct raw spellings observed: many
// surface forms for one canonical name means inconsistent data entry, not
// distinct people. Groups are for human review; nothing here mutates the
// catalog.
package detect
