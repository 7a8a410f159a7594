// Package core holds operations that span the store and the outside world:
// exporting the saved collection to a portable document and importing it
// back, either from a previous export or from raw GitHub API responses.
package core
