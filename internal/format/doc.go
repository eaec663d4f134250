// Package format holds pure string formatting shared by the line-mode
// presenter and the full-screen interface. Nothing here performs I/O.
package format
