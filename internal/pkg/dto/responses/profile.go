package responses

import "konsulin-portal/internal/pkg/constvars"

type Profile struct {
	ID             string           `json:"id"`
	Role           constvars.Role   `json:"role"`
	Fullname       string           `json:"fullname"`
	Email          string           `json:"email"`
	PhoneNumber    string           `json:"phoneNumber,omitempty"`
	Gender         constvars.Gender `json:"gender,omitempty"`
	BirthDate      string           `json:"birthDate,omitempty"`
	Bio            string           `json:"bio,omitempty"`
	ProfilePicture string           `json:"profilePicture,omitempty"`
}

type ProfileDetail struct {
	Profile Profile `json:"profile"`
}
