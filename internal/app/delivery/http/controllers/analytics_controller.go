package controllers

import (
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AnalyticsController struct {
	Log            *zap.Logger
	Client         contracts.AnalyticsAPIClient
	RequestTimeout time.Duration
}

func NewAnalyticsController(logger *zap.Logger, client contracts.AnalyticsAPIClient, requestTimeout time.Duration) *AnalyticsController {
	return &AnalyticsController{
		Log:            logger,
		Client:         client,
		RequestTimeout: requestTimeout,
	}
}

// GetTrends defaults to monthly buckets.
func (ctrl *AnalyticsController) GetTrends(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("AnalyticsController.GetTrends called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := requests.TrendQuery{Interval: utils.QueryString(r, constvars.URLQueryParamInterval)}
	if query.Interval == "" {
		query.Interval = string(constvars.TrendIntervalMonth)
	}
	if err := validate(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.GetTrends(ctx, constvars.TrendInterval(query.Interval))
	if err != nil {
		ctrl.Log.Error("AnalyticsController.GetTrends error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTrendsSuccessMessage, response)
}
