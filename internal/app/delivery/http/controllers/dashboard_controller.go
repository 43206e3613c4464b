package controllers

import (
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log            *zap.Logger
	Usecase        contracts.DashboardUsecase
	RequestTimeout time.Duration
}

func NewDashboardController(logger *zap.Logger, usecase contracts.DashboardUsecase, requestTimeout time.Duration) *DashboardController {
	return &DashboardController{
		Log:            logger,
		Usecase:        usecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("DashboardController.GetDashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Usecase.GetDashboard(ctx)
	if err != nil {
		ctrl.Log.Error("DashboardController.GetDashboard error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, response)
}
