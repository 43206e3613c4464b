package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetSessionsSuccessMessage       = "get sessions successfully"
	GetSessionSuccessMessage        = "get session successfully"
	CancelSessionSuccessMessage     = "session cancelled successfully"
	BookSlotSuccessMessage          = "slot booked successfully"
	GetPsychologistsSuccessMessage  = "get psychologists successfully"
	GetPsychologistSuccessMessage   = "get psychologist successfully"
	GetNotificationsSuccessMessage  = "get notifications successfully"
	MarkAllReadSuccessMessage       = "all notifications marked as read"
	GetUnreadCountSuccessMessage    = "get unread notification count successfully"
	GetProfileSuccessMessage        = "get profile successfully"
	UpdateProfileSuccessMessage     = "profile updated successfully"
	GetComplaintsSuccessMessage     = "get complaints successfully"
	CreateComplaintSuccessMessage   = "complaint submitted successfully"
	UpdateComplaintSuccessMessage   = "complaint updated successfully"
	GetApplicationsSuccessMessage   = "get applications successfully"
	GetApplicationSuccessMessage    = "get application successfully"
	DecideApplicationSuccessMessage = "application decision saved successfully"
	GetTransactionsSuccessMessage   = "get transactions successfully"
	GetTrendsSuccessMessage         = "get trends successfully"
	GetDashboardSuccessMessage      = "get dashboard successfully"
	NoItemsFoundMessage             = "no items found"
)
