package status

import (
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category is the display class of a status value.
type Category string

const (
	CategoryNeutral Category = "neutral"
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryDanger  Category = "danger"
)

// Kind names the status enum a value belongs to.
type Kind string

const (
	KindSession     Kind = "session"
	KindComplaint   Kind = "complaint"
	KindApplication Kind = "application"
	KindTransaction Kind = "transaction"
	// KindPayment shares the transaction table.
	KindPayment Kind = "payment"
)

var tables = map[Kind]map[string]Category{
	KindSession: {
		string(constvars.SessionStatusPending):   CategoryWarning,
		string(constvars.SessionStatusUpcoming):  CategoryInfo,
		string(constvars.SessionStatusOngoing):   CategoryInfo,
		string(constvars.SessionStatusCompleted): CategorySuccess,
		string(constvars.SessionStatusCancelled): CategoryDanger,
	},
	KindComplaint: {
		string(constvars.ComplaintStatusOpen):      CategoryWarning,
		string(constvars.ComplaintStatusInReview):  CategoryInfo,
		string(constvars.ComplaintStatusResolved):  CategorySuccess,
		string(constvars.ComplaintStatusDismissed): CategoryNeutral,
	},
	KindApplication: {
		string(constvars.ApplicationStatusPending):  CategoryWarning,
		string(constvars.ApplicationStatusApproved): CategorySuccess,
		string(constvars.ApplicationStatusRejected): CategoryDanger,
	},
	KindTransaction: {
		string(constvars.TransactionStatusPending):  CategoryWarning,
		string(constvars.TransactionStatusSuccess):  CategorySuccess,
		string(constvars.TransactionStatusFailed):   CategoryDanger,
		string(constvars.TransactionStatusRefunded): CategoryInfo,
		string(constvars.TransactionStatusExpired):  CategoryNeutral,
	},
}

func init() {
	tables[KindPayment] = tables[KindTransaction]
}

// Classify maps value to its category. Unknown kinds and values are neutral.
func Classify(kind Kind, value string) Category {
	table, ok := tables[kind]
	if !ok {
		return CategoryNeutral
	}
	category, ok := table[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return CategoryNeutral
	}
	return category
}

// Label turns a snake_case status into a title-cased label, "in_review" -> "In Review".
func Label(value string) string {
	words := strings.FieldsFunc(strings.TrimSpace(value), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

func Badge(kind Kind, value string) responses.StatusBadge {
	return responses.StatusBadge{
		Value:    value,
		Label:    Label(value),
		Category: string(Classify(kind, value)),
	}
}

func SessionRows(sessions []responses.Session) []responses.SessionRow {
	rows := make([]responses.SessionRow, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, responses.SessionRow{
			Session: session,
			Badge:   Badge(KindSession, string(session.Status)),
		})
	}
	return rows
}

func ComplaintRows(complaints []responses.Complaint) []responses.ComplaintRow {
	rows := make([]responses.ComplaintRow, 0, len(complaints))
	for _, complaint := range complaints {
		rows = append(rows, responses.ComplaintRow{
			Complaint: complaint,
			Badge:     Badge(KindComplaint, string(complaint.Status)),
		})
	}
	return rows
}

func ApplicationRows(applications []responses.Application) []responses.ApplicationRow {
	rows := make([]responses.ApplicationRow, 0, len(applications))
	for _, application := range applications {
		rows = append(rows, responses.ApplicationRow{
			Application: application,
			Badge:       Badge(KindApplication, string(application.Status)),
		})
	}
	return rows
}

func TransactionRows(transactions []responses.Transaction) []responses.TransactionRow {
	rows := make([]responses.TransactionRow, 0, len(transactions))
	for _, transaction := range transactions {
		rows = append(rows, responses.TransactionRow{
			Transaction: transaction,
			Badge:       Badge(KindTransaction, string(transaction.Status)),
		})
	}
	return rows
}
