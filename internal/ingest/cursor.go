package ingest

import "fmt"

// UnexpectedEndOfRowError reports a row with fewer cells than the schema
// requires. Like a malformed boolean, this is fatal to the whole ingest.
type UnexpectedEndOfRowError struct {
	Pos int // index of the cell that was requested
	Len int // number of cells actually in the row
}

func (e *UnexpectedEndOfRowError) Error() string {
	return fmt.Sprintf("unexpected end of row: wanted cell %d but row has %d", e.Pos, e.Len)
}

// Cursor walks one row's cells in schema order, three cells per item.
type Cursor struct {
	cells []string
	pos   int
}

// NewCursor creates a cursor over one row's item cells
func NewCursor(cells []string) *Cursor {
	return &Cursor{cells: cells}
}

// Next consumes and returns the next cell
func (c *Cursor) Next() (string, error) {
	if c.pos >= len(c.cells) {
		return "", &UnexpectedEndOfRowError{Pos: c.pos, Len: len(c.cells)}
	}
	cell := c.cells[c.pos]
	c.pos++
	return cell, nil
}
