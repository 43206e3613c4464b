package responses

import (
	"konsulin-portal/internal/pkg/constvars"
	"time"
)

type PsychologistSummary struct {
	ID              string           `json:"id"`
	Fullname        string           `json:"fullname"`
	Gender          constvars.Gender `json:"gender"`
	Specializations []string         `json:"specializations"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"reviewCount"`
	ExperienceYears int              `json:"experienceYears"`
	Price           float64          `json:"price"`
	ProfilePicture  string           `json:"profilePicture,omitempty"`
}

type PsychologistList struct {
	Psychologists  []PsychologistSummary `json:"psychologists"`
	PaginationData PaginationData        `json:"paginationData"`
}

type Psychologist struct {
	PsychologistSummary
	Bio        string   `json:"bio,omitempty"`
	Education  []string `json:"education,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	LicenseNum string   `json:"licenseNumber,omitempty"`
}

type PsychologistDetail struct {
	Psychologist Psychologist `json:"psychologist"`
}

type Slot struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

type SlotList struct {
	Slots []Slot `json:"slots"`
}
