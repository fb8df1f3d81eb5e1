package models

// MemberStatus is the membership state.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

// Member is an enrolled gym member.
type Member struct {
	ID       string       `json:"_id"`
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Phone    string       `json:"phone"`
	Plan     string       `json:"plan"`
	Status   MemberStatus `json:"status"`
	Gym      Ref          `json:"gymId"`
	GymName  string       `json:"gymName,omitempty"`
	JoinDate Date         `json:"joinDate"`
}

// Normalize collapses populated gym references into the flat shape.
func (m *Member) Normalize() {
	if m.GymName == "" {
		m.GymName = m.Gym.Name
	}
	m.Gym.Name = ""
}

// MemberInput is the payload for enrolling or updating a member.
type MemberInput struct {
	Name     string       `json:"name" validate:"required"`
	Email    string       `json:"email" validate:"required,email"`
	Phone    string       `json:"phone" validate:"required"`
	Plan     string       `json:"plan" validate:"required,oneof=Basic Standard Premium"`
	Status   MemberStatus `json:"status" validate:"required,oneof=Active Inactive"`
	GymID    string       `json:"gymId"`
	JoinDate Date         `json:"joinDate"`
}
