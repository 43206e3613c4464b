package constvars

// SessionStatus is the lifecycle state of a booked therapy session.
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusUpcoming  SessionStatus = "upcoming"
	SessionStatusOngoing   SessionStatus = "ongoing"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

var sessionStatuses = []SessionStatus{
	SessionStatusPending,
	SessionStatusUpcoming,
	SessionStatusOngoing,
	SessionStatusCompleted,
	SessionStatusCancelled,
}

func (s SessionStatus) IsValid() bool {
	for _, v := range sessionStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func SessionStatuses() []SessionStatus {
	return append([]SessionStatus(nil), sessionStatuses...)
}

// ComplaintStatus tracks a complaint raised by a user against a session.
type ComplaintStatus string

const (
	ComplaintStatusOpen      ComplaintStatus = "open"
	ComplaintStatusInReview  ComplaintStatus = "in_review"
	ComplaintStatusResolved  ComplaintStatus = "resolved"
	ComplaintStatusDismissed ComplaintStatus = "dismissed"
)

var complaintStatuses = []ComplaintStatus{
	ComplaintStatusOpen,
	ComplaintStatusInReview,
	ComplaintStatusResolved,
	ComplaintStatusDismissed,
}

func (s ComplaintStatus) IsValid() bool {
	for _, v := range complaintStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ComplaintStatuses() []ComplaintStatus {
	return append([]ComplaintStatus(nil), complaintStatuses...)
}

// ApplicationStatus tracks a psychologist's onboarding application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

var applicationStatuses = []ApplicationStatus{
	ApplicationStatusPending,
	ApplicationStatusApproved,
	ApplicationStatusRejected,
}

func (s ApplicationStatus) IsValid() bool {
	for _, v := range applicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ApplicationStatuses() []ApplicationStatus {
	return append([]ApplicationStatus(nil), applicationStatuses...)
}

// TransactionStatus is the payment state of a transaction record.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusSuccess  TransactionStatus = "success"
	TransactionStatusFailed   TransactionStatus = "failed"
	TransactionStatusRefunded TransactionStatus = "refunded"
	TransactionStatusExpired  TransactionStatus = "expired"
)

var transactionStatuses = []TransactionStatus{
	TransactionStatusPending,
	TransactionStatusSuccess,
	TransactionStatusFailed,
	TransactionStatusRefunded,
	TransactionStatusExpired,
}

func (s TransactionStatus) IsValid() bool {
	for _, v := range transactionStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func TransactionStatuses() []TransactionStatus {
	return append([]TransactionStatus(nil), transactionStatuses...)
}

// ApplicationDecision is what an admin can do with a pending application.
type ApplicationDecision string

const (
	ApplicationDecisionApprove ApplicationDecision = "approve"
	ApplicationDecisionReject  ApplicationDecision = "reject"
)

func (d ApplicationDecision) IsValid() bool {
	return d == ApplicationDecisionApprove || d == ApplicationDecisionReject
}

// NotificationType groups notifications by what triggered them.
type NotificationType string

const (
	NotificationTypeSession   NotificationType = "session"
	NotificationTypePayment   NotificationType = "payment"
	NotificationTypeComplaint NotificationType = "complaint"
	NotificationTypeSystem    NotificationType = "system"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeSession, NotificationTypePayment, NotificationTypeComplaint, NotificationTypeSystem:
		return true
	}
	return false
}
