// Package canon derives canonical forms and content-addressed keys from the
// free-text fields of music catalog rows (song titles, artist names).
//
// Normalize folds text to lowercase ASCII letters, digits, and single spaces:
// compatibility decomposition strips diacritics ("Beyoncé" becomes "beyonce"),
// whitespace runs collapse to one space, and every other character is dropped.
// DeriveKey normalizes each field independently, joins them with a separator
// that cannot appear in normalized text, and renders the MD5 digest as 32
// lowercase hex characters. Equal normalized inputs always produce equal keys.
//
// Absent values are represented by the empty string. All absent values
// therefore normalize to "" and collide with each other and with blank text;
// callers that need to distinguish them must do so before deriving keys.
//
// Every function here is pure and safe for concurrent use.
package canon
