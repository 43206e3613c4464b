package responses

type ResponseDTO struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *PaginationData `json:"paginationData,omitempty"`
}

// PaginationData is the pagination block every listing endpoint of the
// booking backend returns next to its items.
type PaginationData struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
	PageSize    int `json:"pageSize"`
}

// Message is the body of mutation endpoints that only acknowledge.
type Message struct {
	Message string `json:"message"`
}

// StatusBadge is a status value paired with its display classification.
type StatusBadge struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Category string `json:"category"`
}
