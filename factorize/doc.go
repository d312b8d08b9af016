// Package factorize reduces sparse document-term matrices to dense
// fixed-width latent matrices.
//
// Three interchangeable algorithms are provided behind a single
// Factorizer interface: online variational latent Dirichlet allocation,
// truncated singular value decomposition and non-negative matrix
// factorization. The concrete algorithm is a configuration choice; all
// three map a sparse matrix to one latent row per document with exactly
// the configured width. Randomized algorithms draw from an explicitly
// seeded source so jobs stay reproducible under parallel execution.
package factorize
