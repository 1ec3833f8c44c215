package models

import (
	"time"
)

// Room represents a single bingo game session with one host and any number
// of participants
type Room struct {
	// ID is the unique identifier for the room
	ID string `json:"id"`

	// HostName is the display name of the host who created the room
	HostName string `json:"hostName"`

	// CardSize is the number of numbers on each participant card
	CardSize int `json:"cardSize"`

	// DrawnNumbers is the sequence of numbers already called, kept sorted
	// ascending for display. Each value appears at most once and lies in
	// [1,75].
	DrawnNumbers []int `json:"drawnNumbers"`

	// Participants maps participant ID to participant
	Participants map[string]*Participant `json:"participants"`

	// LastDrawAt is when the most recent number was drawn, nil before the
	// first draw and after a reset
	LastDrawAt *time.Time `json:"lastDrawAt"`

	// CreatedAt is when the room was created
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot returns a deep copy safe to read and marshal outside the room's
// lock. Cards never change after generation and are shared.
func (r *Room) Snapshot() *Room {
	cp := *r
	cp.DrawnNumbers = make([]int, len(r.DrawnNumbers))
	copy(cp.DrawnNumbers, r.DrawnNumbers)
	cp.Participants = make(map[string]*Participant, len(r.Participants))
	for id, p := range r.Participants {
		cp.Participants[id] = p.Snapshot()
	}
	if r.LastDrawAt != nil {
		t := *r.LastDrawAt
		cp.LastDrawAt = &t
	}
	return &cp
}

// HasDrawn reports whether n was already called in this room.
func (r *Room) HasDrawn(n int) bool {
	for _, v := range r.DrawnNumbers {
		if v == n {
			return true
		}
	}
	return false
}
