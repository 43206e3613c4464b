package requests

type UpdateProfile struct {
	Fullname    string `json:"fullname" validate:"omitempty,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,e164"`
	Gender      string `json:"gender" validate:"omitempty,gender"`
	BirthDate   string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Bio         string `json:"bio" validate:"omitempty,max=2000"`
}
