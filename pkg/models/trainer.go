package models

// Trainer is a gym trainer profile.
type Trainer struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	Status         string   `json:"status"`
}

// TrainerInput is the payload for creating or updating a trainer.
type TrainerInput struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Specialization string   `json:"specialization" validate:"required"`
	Experience     string   `json:"experience,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	Status         string   `json:"status,omitempty"`
}

// Specializations recognized by the trainer directory.
var TrainerSpecializations = []string{
	"Weight Training",
	"Cardio & Fitness",
	"Yoga & Flexibility",
	"CrossFit",
	"Pilates",
	"Boxing",
	"Swimming",
}
