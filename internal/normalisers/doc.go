// Package normalisers holds content reducers applied to fetched pages before
// they are handed to extraction.
package normalisers
