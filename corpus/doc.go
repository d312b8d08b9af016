// Package corpus builds synthetic text documents from categorical columns.
//
// A synthetic document is the space-joined token stream of all values one
// column takes for a fixed value of another column (or of a bit-packed
// composite key). The documents are not natural language; they exist only
// to feed the text-vectorization stage.
package corpus
