package models

import (
	"time"
)

// Participant represents a player who joined a room and holds a card
type Participant struct {
	// ID is the unique identifier for this participant within the room
	ID string `json:"id"`

	// Name is the display name of the participant
	Name string `json:"name"`

	// Card is the bingo card generated for this participant at join time.
	// It never changes for the lifetime of the room.
	Card *Card `json:"card"`

	// MarkedNumbers contains the numbers the participant currently has
	// marked. Every value is one of Card.Numbers.
	MarkedNumbers []int `json:"markedNumbers"`

	// BingoAnnounced records that this participant's win was already
	// broadcast. Cleared on draw reset so the next cycle can announce again.
	BingoAnnounced bool `json:"-"`

	// JoinedAt is when the participant joined the room
	JoinedAt time.Time `json:"joinedAt"`
}

// Snapshot returns a deep copy safe to read and marshal outside the room's
// lock. The card is shared; it never changes after generation.
func (p *Participant) Snapshot() *Participant {
	cp := *p
	cp.MarkedNumbers = make([]int, len(p.MarkedNumbers))
	copy(cp.MarkedNumbers, p.MarkedNumbers)
	return &cp
}

// HasMarked reports whether n is currently marked.
func (p *Participant) HasMarked(n int) bool {
	for _, v := range p.MarkedNumbers {
		if v == n {
			return true
		}
	}
	return false
}

// HasBingo reports the win condition: every number on the card is marked.
// The free cell carries no number and is always satisfied.
func (p *Participant) HasBingo() bool {
	return p.Card != nil && len(p.Card.Numbers) > 0 &&
		len(p.MarkedNumbers) == len(p.Card.Numbers)
}
