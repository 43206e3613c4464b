package requests

type Pagination struct {
	Page     int `json:"page" validate:"gte=1"`
	PageSize int `json:"limit" validate:"gte=1,lte=100"`
}
