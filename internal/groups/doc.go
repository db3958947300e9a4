// Package groups builds canonical groups of words that share a
// pronunciation, either directly from dictionaries or by merging previously
// computed groups into their transitive closure.
package groups
