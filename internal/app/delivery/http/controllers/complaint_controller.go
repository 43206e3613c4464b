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

type ComplaintController struct {
	Log            *zap.Logger
	Client         contracts.ComplaintAPIClient
	Fetcher        listing.Fetcher[responses.Complaint]
	RequestTimeout time.Duration
}

func NewComplaintController(logger *zap.Logger, client contracts.ComplaintAPIClient, fetcher listing.Fetcher[responses.Complaint], requestTimeout time.Duration) *ComplaintController {
	return &ComplaintController{
		Log:            logger,
		Client:         client,
		Fetcher:        fetcher,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *ComplaintController) ListComplaints(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ComplaintController.ListComplaints called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := requests.ComplaintListQuery{
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
	writeListPage(ctx, ctrl.Log, w, ctrl.Fetcher, filter, query.Pagination, status.ComplaintRows, constvars.GetComplaintsSuccessMessage)
}

func (ctrl *ComplaintController) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ComplaintController.CreateComplaint called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateComplaint)
	if err := decodeJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := validate(request); err != nil {
		ctrl.Log.Error("ComplaintController.CreateComplaint validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.CreateComplaint(ctx, request)
	if err != nil {
		ctrl.Log.Error("ComplaintController.CreateComplaint error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateComplaintSuccessMessage, response)
}

func (ctrl *ComplaintController) UpdateComplaint(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	complaintID := chi.URLParam(r, constvars.URLParamComplaintID)
	ctrl.Log.Info("ComplaintController.UpdateComplaint called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamComplaintID, complaintID),
	)

	request := new(requests.UpdateComplaint)
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

	response, err := ctrl.Client.UpdateComplaint(ctx, complaintID, request)
	if err != nil {
		ctrl.Log.Error("ComplaintController.UpdateComplaint error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateComplaintSuccessMessage, response)
}
