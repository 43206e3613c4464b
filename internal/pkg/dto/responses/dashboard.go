package responses

type Dashboard struct {
	UpcomingSessions   []SessionRow     `json:"upcomingSessions"`
	UnreadCount        int              `json:"unreadCount"`
	RecentTransactions []TransactionRow `json:"recentTransactions"`
}
