// Package html reduces fetched page markup to a compact text corpus suitable
// for structured extraction. It drops scripts, styles, navigation, footers,
// headers and comments, then strips the remaining tags and collapses whitespace.
package html
