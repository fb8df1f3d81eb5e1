package models

// MembershipPlan describes one plan tier as configured in settings.
type MembershipPlan struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// NotificationSettings toggles outbound member communication channels.
type NotificationSettings struct {
	Email            bool `json:"email"`
	SMS              bool `json:"sms"`
	PaymentReminders bool `json:"paymentReminders"`
}

// Settings is the business-wide configuration record.
type Settings struct {
	GymName         string               `json:"gymName"`
	ContactEmail    string               `json:"contactEmail"`
	PhoneNumber     string               `json:"phoneNumber"`
	Address         string               `json:"address"`
	MembershipPlans []MembershipPlan     `json:"membershipPlans"`
	Notifications   NotificationSettings `json:"notifications"`
}

// DefaultSettings mirrors the defaults the backend seeds a fresh install with.
func DefaultSettings() Settings {
	return Settings{
		GymName:      "FitSync Gym Center",
		ContactEmail: "admin@fitsync.com",
		PhoneNumber:  "+91 98765 43210",
		Address:      "123 Fitness Street, Gym City, State - 560001",
		MembershipPlans: []MembershipPlan{
			{Name: "Basic Plan", Description: "Access to gym equipment", Price: 1500},
			{Name: "Standard Plan", Description: "Gym + Group classes", Price: 2000},
			{Name: "Premium Plan", Description: "All access + Personal trainer", Price: 2500},
		},
		Notifications: NotificationSettings{
			Email:            true,
			SMS:              false,
			PaymentReminders: true,
		},
	}
}
