// Package editor provides a Bubble Tea component for the eminent editing
// core.
//
// The package is responsible for input handling, viewport behavior, the
// framed full-screen chrome, and grapheme-aware cursor rendering. Document
// and cursor semantics live in the textstore and cursor packages.
package editor
