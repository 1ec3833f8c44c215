package models

// Card represents the immutable bingo card assigned to a participant.
//
// Grid is row-major: consumers rendering row by row see the B, I, N, G, O
// columns left to right. A nil cell is either the free cell (at CenterRow,
// CenterCol) or padding past the end of a column's number supply.
type Card struct {
	// Numbers is the full sorted list of numbers on the card, used for
	// membership checks when marking
	Numbers []int `json:"numbers"`

	// Grid is the 2D layout of the card, including the free cell
	Grid [][]*int `json:"grid"`

	// Rows is the number of grid rows
	Rows int `json:"rows"`

	// Cols is the number of grid columns
	Cols int `json:"cols"`

	// CenterRow is the row index of the free cell
	CenterRow int `json:"centerRow"`

	// CenterCol is the column index of the free cell
	CenterCol int `json:"centerCol"`
}

// Contains reports whether n is one of the card's numbers.
func (c *Card) Contains(n int) bool {
	for _, v := range c.Numbers {
		if v == n {
			return true
		}
	}
	return false
}
