package responses

import "konsulin-portal/internal/pkg/constvars"

type TrendPoint struct {
	Period        string  `json:"period"`
	Sessions      int     `json:"sessions"`
	Cancellations int     `json:"cancellations"`
	NewUsers      int     `json:"newUsers"`
	Revenue       float64 `json:"revenue"`
}

type Trends struct {
	Interval constvars.TrendInterval `json:"interval"`
	Trends   []TrendPoint            `json:"trends"`
}
