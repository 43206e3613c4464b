package requests

type DecideApplication struct {
	Decision string `json:"decision" validate:"required,application_decision"`
	Reason   string `json:"reason" validate:"required_if=Decision reject,max=1000"`
}
