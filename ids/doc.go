// Package ids provides a UUID helper for callers assembling Objects and
// Morphisms that do not already have a natural identifier — mirroring how
// storage layers in this ecosystem auto-generate an ID when the caller
// leaves one blank.
package ids
