// Package collab aggregates pairwise collaborations between canonical
// entities across the movie catalog.
//
// Each movie contributes a fixed set of role pairs (hero/director,
// heroine/director, hero/heroine, hero/music-director), so the pass is
// linear in the number of movies. Pair keys are symmetric: the two
// canonical names are sorted before keying, so (A, B) and (B, A) aggregate
// together regardless of which field each name came from.
package collab
