package dashboard

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/core/status"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// UnreadCounter is the part of the notification service the dashboard reads.
type UnreadCounter interface {
	UnreadCount(ctx context.Context) (int, error)
}

type dashboardUsecase struct {
	Sessions         listing.Fetcher[responses.Session]
	Transactions     listing.Fetcher[responses.Transaction]
	Unread           UnreadCounter
	UpcomingLimit    int
	TransactionLimit int
	Log              *zap.Logger
}

func NewDashboardUsecase(
	sessions listing.Fetcher[responses.Session],
	transactions listing.Fetcher[responses.Transaction],
	unread UnreadCounter,
	upcomingLimit, transactionLimit int,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	if upcomingLimit < 1 {
		upcomingLimit = 3
	}
	if transactionLimit < 1 {
		transactionLimit = 5
	}
	return &dashboardUsecase{
		Sessions:         sessions,
		Transactions:     transactions,
		Unread:           unread,
		UpcomingLimit:    upcomingLimit,
		TransactionLimit: transactionLimit,
		Log:              logger,
	}
}

// GetDashboard loads upcoming sessions, the unread count and recent
// transactions concurrently. Any failure fails the whole dashboard.
func (uc *dashboardUsecase) GetDashboard(ctx context.Context) (*responses.Dashboard, error) {
	requestID := models.RequestIDFromContext(ctx)
	uc.Log.Info("dashboardUsecase.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		sessions     *listing.Page[responses.Session]
		transactions *listing.Page[responses.Transaction]
		unread       int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		filter := listing.Filter{constvars.URLQueryParamStatus: string(constvars.SessionStatusUpcoming)}
		sessions, err = listing.FetchPage(gctx, uc.Log, uc.Sessions, filter, 1, uc.UpcomingLimit)
		return err
	})
	g.Go(func() error {
		var err error
		unread, err = uc.Unread.UnreadCount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = listing.FetchPage(gctx, uc.Log, uc.Transactions, nil, 1, uc.TransactionLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.Log.Error("dashboardUsecase.GetDashboard fetch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return &responses.Dashboard{
		UpcomingSessions:   status.SessionRows(sessions.Items),
		UnreadCount:        unread,
		RecentTransactions: status.TransactionRows(transactions.Items),
	}, nil
}
