package controllers

import (
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/core/status"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type TransactionController struct {
	Log            *zap.Logger
	Fetcher        listing.Fetcher[responses.Transaction]
	RequestTimeout time.Duration
}

func NewTransactionController(logger *zap.Logger, fetcher listing.Fetcher[responses.Transaction], requestTimeout time.Duration) *TransactionController {
	return &TransactionController{
		Log:            logger,
		Fetcher:        fetcher,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *TransactionController) ListTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("TransactionController.ListTransactions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := requests.TransactionListQuery{
		Pagination: utils.BuildPaginationRequest(r),
		Status:     utils.QueryString(r, constvars.URLQueryParamStatus),
	}
	if err := validate(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	filter := listing.Filter{constvars.URLQueryParamStatus: query.Status}
	writeListPage(ctx, ctrl.Log, w, ctrl.Fetcher, filter, query.Pagination, status.TransactionRows, constvars.GetTransactionsSuccessMessage)
}
