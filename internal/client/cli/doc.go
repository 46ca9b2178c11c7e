// Package cli implements the interactive REPL of the ondo client. It is a
// thin rendering surface over the session and data services: commands map
// one-to-one onto service operations and print their results.
package cli
