package models

// Gym is a registered gym location.
type Gym struct {
	ID      string `json:"_id"`
	GymName string `json:"gymName"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Year    string `json:"year,omitempty"`
	Fee     int64  `json:"fee,omitempty"`
}

// GymInput is the payload for registering or updating a gym.
type GymInput struct {
	GymName string `json:"gymName" validate:"required,min=2"`
	Phone   string `json:"phone" validate:"required,len=10,numeric"`
	Address string `json:"address" validate:"required"`
	Year    string `json:"year,omitempty"`
	Fee     int64  `json:"fee,omitempty"`
}
