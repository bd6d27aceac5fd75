// Package utils provides type conversion helpers for loosely typed document values.
//
// Translation files are decoded into `any` values (strings, lists, booleans, numbers, null).
// These helpers normalise them into the string-only shape of a locale record and into the
// scalar shapes expected by file directives.
package utils
