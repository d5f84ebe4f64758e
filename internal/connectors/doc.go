// Package connectors provides sources of text files to import.
// The filesystem connector watches a directory and hands each new
// text file to an import handler.
package connectors
