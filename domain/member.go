package domain

// Role is the server-scope permission level of a member. Conversations carry
// no roles; a conversation member's Role stays empty.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleGuest     Role = "GUEST"
)

// CanModerate reports whether the role may remove other members' content.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleModerator
}

// Profile is the display identity behind a member, resolved by the external
// identity provider and snapshotted on the member record so broadcast payloads
// can join it without another lookup.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Member binds a profile to exactly one scope instance. A profile has at most
// one member record per server, and at most one role on it.
type Member struct {
	ID        string  `json:"id"`
	ProfileID string  `json:"profileId"`
	Role      Role    `json:"role,omitempty"`
	Profile   Profile `json:"profile"`
}
