// Package names normalizes person names and generates the spelling
// variations used to link duplicate references. Both operations are pure:
// no I/O, no state, deterministic output.
package names
