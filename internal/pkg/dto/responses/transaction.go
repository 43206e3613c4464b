package responses

import (
	"konsulin-portal/internal/pkg/constvars"
	"time"
)

type Transaction struct {
	ID            string                      `json:"id"`
	SessionID     string                      `json:"sessionId,omitempty"`
	Amount        float64                     `json:"amount"`
	Currency      string                      `json:"currency"`
	PaymentMethod string                      `json:"paymentMethod,omitempty"`
	Status        constvars.TransactionStatus `json:"status"`
	CreatedAt     time.Time                   `json:"createdAt"`
}

type TransactionList struct {
	Transactions   []Transaction  `json:"transactions"`
	PaginationData PaginationData `json:"paginationData"`
}

type TransactionRow struct {
	Transaction
	Badge StatusBadge `json:"badge"`
}
