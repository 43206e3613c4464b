package requests

type CancelSession struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type BookSlot struct {
	Note string `json:"note" validate:"omitempty,max=500"`
}
