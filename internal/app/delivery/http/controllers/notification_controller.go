package controllers

import (
	"context"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// UnreadCountService is the cached unread counter behind the badge.
type UnreadCountService interface {
	UnreadCount(ctx context.Context) (int, error)
	MarkAllRead(ctx context.Context) (*responses.Message, error)
}

type NotificationController struct {
	Log            *zap.Logger
	Fetcher        listing.Fetcher[responses.Notification]
	Unread         UnreadCountService
	RequestTimeout time.Duration
}

func NewNotificationController(logger *zap.Logger, fetcher listing.Fetcher[responses.Notification], unread UnreadCountService, requestTimeout time.Duration) *NotificationController {
	return &NotificationController{
		Log:            logger,
		Fetcher:        fetcher,
		Unread:         unread,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *NotificationController) ListNotifications(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("NotificationController.ListNotifications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := requests.NotificationListQuery{Pagination: utils.BuildPaginationRequest(r)}
	if err := validate(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	writeListPage(ctx, ctrl.Log, w, ctrl.Fetcher, nil, query.Pagination, asIs[responses.Notification], constvars.GetNotificationsSuccessMessage)
}

// MarkAllRead leaves the items already shown untouched; clients re-list to
// see the new read state.
func (ctrl *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("NotificationController.MarkAllRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Unread.MarkAllRead(ctx)
	if err != nil {
		ctrl.Log.Error("NotificationController.MarkAllRead error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkAllReadSuccessMessage, response)
}

func (ctrl *NotificationController) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("NotificationController.GetUnreadCount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	count, err := ctrl.Unread.UnreadCount(ctx)
	if err != nil {
		ctrl.Log.Error("NotificationController.GetUnreadCount error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUnreadCountSuccessMessage, responses.UnreadCount{Count: count})
}
