package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// TerminalRenderer draws a board as blocks of text, one line per row
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the board to the renderer's writer
func (r *TerminalRenderer) Display(b *Board) error {
	w := bufio.NewWriter(r.Out)
	for c := range b.Coordinates() {
		if c.Cell.IsAlive() {
			w.WriteString(gridPosBlock)
		} else {
			w.WriteString(gridPosEmpty)
		}
		if c.X == b.width-1 {
			w.WriteByte('\n')
		}
	}
	return w.Flush()
}

// Clear moves the cursor home and clears the screen using ANSI escapes
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, "\033[H\033[2J")
	return err
}
