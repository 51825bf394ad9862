// Package cache implements the Cache collaborator the growth engine
// depends on, plus two concrete implementations.
//
// FileCache persists generations to disk as a length-prefixed
// concatenation of packed shapes behind a validating header, written
// atomically (temp file + rename). NullCache is a no-op stand-in for
// callers that don't want persistence.
//
// Errors:
//
//   - ErrBadHeader: a loaded file's magic or declared n/count does not
//     match its actual contents.
package cache
