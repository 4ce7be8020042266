// Package reduction projects high-dimensional embeddings down to the two
// or three components a scatter plot can show.
//
// The actual projection (UMAP, t-SNE, PCA) runs in a separate reduction
// service reached over HTTP; this package hides that behind the Reducer
// contract and adds the dispatch logic around it:
//
//   - vectors already at the target width pass through unchanged
//   - vectors narrower than the target are rejected
//   - large inputs can be fitted on a random subsample and then
//     transformed in full, which keeps fit time bounded
//
// Application code depends on *Client. Tests substitute their own Reducer.
package reduction
