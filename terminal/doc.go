// @focus: #sys { term }
// Package terminal provides the 24-bit color value and the ANSI sequences used to
// print it.
//
// Features:
//   - RGB storage type with hex parsing and a named palette
//   - True color (24-bit) SGR sequences for foreground and background
//   - Capability detection from the environment and TTY checks for --color=auto
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
package terminal
