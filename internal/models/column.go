package models

// Column represents a named, ordered bucket on the board (e.g., "Todo", "Doing", "Done").
// Columns form an ordered sequence: a column's index is its display order.
type Column struct {
	ID    ID     `json:"id" cbor:"id"`
	Title string `json:"title" cbor:"title"`
}

// GetID returns the column ID (used for quiet CLI output)
func (c Column) GetID() ID {
	return c.ID
}
