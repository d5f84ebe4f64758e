// Package normalisers provides implementations of the Normaliser interface.
// A normaliser turns a source file into the ordered chapters of a prompter
// document.
package normalisers
