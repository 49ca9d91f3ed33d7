// Package tmdb provides a minimal client for The Movie Database person
// search API, used to attach external identities to canonical names.
package tmdb
