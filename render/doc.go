// Package render turns a maze into characters.
//
// BuildFrame lays a Scene out on a character grid: every maze cell takes a
// wall column and three interior columns over two rows, so a w x h maze is
// drawn as (4w+1) x (2h+1) characters. The frame can then be painted on a
// tcell screen (Screen) or printed as text (WriteText).
//
// Wall colors are opaque tokens ("white", "red", "blue", "yellow", "cyan",
// "magenta"); the emblem, path, entry and exit have fixed colors.
package render
