package models

// SessionRole identifies what a connection is allowed to do in its room
type SessionRole string

const (
	// SessionRoleHost is the privileged role permitted to draw and reset
	SessionRoleHost SessionRole = "host"

	// SessionRoleParticipant is a regular player connection
	SessionRoleParticipant SessionRole = "participant"
)

// Session is the transient binding from a live connection to a room. It is
// pure routing metadata: it is created when a connection joins a room and
// discarded on disconnect, while the room and participant data are retained.
type Session struct {
	// ConnectionID is the unique identifier of the connection
	ConnectionID string

	// RoomID is the room the connection joined
	RoomID string

	// ParticipantID is the participant the connection acts as. Empty for
	// host sessions.
	ParticipantID string

	// Role is the connection's role in the room
	Role SessionRole
}

// IsHost reports whether the session carries host privileges.
func (s *Session) IsHost() bool {
	return s.Role == SessionRoleHost
}
