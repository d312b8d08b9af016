// Package vectorize converts synthetic documents into sparse
// document-term matrices.
//
// Two modes are provided: plain token counts and tf-idf frequency
// weighting, both with a minimum document-frequency cutoff that prunes
// rare tokens from the vocabulary. A one-hot encoder builds the same
// sparse representation directly from categorical columns for the
// single-pipeline feature variants.
package vectorize
