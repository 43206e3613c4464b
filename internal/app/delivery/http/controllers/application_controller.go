package controllers

import (
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/app/services/core/status"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ApplicationController struct {
	Log            *zap.Logger
	Client         contracts.ApplicationAPIClient
	Usecase        contracts.ApplicationUsecase
	Fetcher        listing.Fetcher[responses.Application]
	RequestTimeout time.Duration
}

func NewApplicationController(logger *zap.Logger, client contracts.ApplicationAPIClient, usecase contracts.ApplicationUsecase, fetcher listing.Fetcher[responses.Application], requestTimeout time.Duration) *ApplicationController {
	return &ApplicationController{
		Log:            logger,
		Client:         client,
		Usecase:        usecase,
		Fetcher:        fetcher,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *ApplicationController) ListApplications(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ApplicationController.ListApplications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := requests.ApplicationListQuery{
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
	writeListPage(ctx, ctrl.Log, w, ctrl.Fetcher, filter, query.Pagination, status.ApplicationRows, constvars.GetApplicationsSuccessMessage)
}

func (ctrl *ApplicationController) FindApplicationByID(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	applicationID := chi.URLParam(r, constvars.URLParamApplicationID)
	ctrl.Log.Info("ApplicationController.FindApplicationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamApplicationID, applicationID),
	)

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Usecase.FindApplicationByID(ctx, applicationID)
	if err != nil {
		ctrl.Log.Error("ApplicationController.FindApplicationByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	row := responses.ApplicationRow{
		Application: response.Application,
		Badge:       status.Badge(status.KindApplication, string(response.Application.Status)),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetApplicationSuccessMessage, row)
}

func (ctrl *ApplicationController) DecideApplication(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	applicationID := chi.URLParam(r, constvars.URLParamApplicationID)
	ctrl.Log.Info("ApplicationController.DecideApplication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamApplicationID, applicationID),
	)

	request := new(requests.DecideApplication)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.DecideApplication(ctx, applicationID, request)
	if err != nil {
		ctrl.Log.Error("ApplicationController.DecideApplication error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DecideApplicationSuccessMessage, response)
}
