// Package vocab mines domain abbreviations from catalog text and expands
// user queries with them.
//
// The abbreviation map is learned from the dataset itself, with no manual
// curation, and is built once per dataset fingerprint. Query expansion uses
// the same map at search time, so catalog embeddings and query embeddings
// see consistent terminology.
package vocab
