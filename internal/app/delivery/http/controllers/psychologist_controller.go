package controllers

import (
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PsychologistController struct {
	Log            *zap.Logger
	Client         contracts.PsychologistAPIClient
	Fetcher        listing.Fetcher[responses.PsychologistSummary]
	RequestTimeout time.Duration
}

func NewPsychologistController(logger *zap.Logger, client contracts.PsychologistAPIClient, fetcher listing.Fetcher[responses.PsychologistSummary], requestTimeout time.Duration) *PsychologistController {
	return &PsychologistController{
		Log:            logger,
		Client:         client,
		Fetcher:        fetcher,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *PsychologistController) ListPsychologists(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("PsychologistController.ListPsychologists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := requests.PsychologistListQuery{
		Pagination:     utils.BuildPaginationRequest(r),
		Specialization: utils.QueryString(r, constvars.URLQueryParamSpecialization),
		Gender:         utils.QueryString(r, constvars.URLQueryParamGender),
		Date:           utils.QueryString(r, constvars.URLQueryParamDate),
		Sort:           utils.QueryString(r, constvars.URLQueryParamSort),
		Search:         utils.QueryString(r, constvars.URLQueryParamSearch),
	}
	if err := validate(query); err != nil {
		ctrl.Log.Error("PsychologistController.ListPsychologists validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	filter := listing.Filter{
		constvars.URLQueryParamSpecialization: query.Specialization,
		constvars.URLQueryParamGender:         query.Gender,
		constvars.URLQueryParamDate:           query.Date,
		constvars.URLQueryParamSort:           query.Sort,
		constvars.URLQueryParamSearch:         query.Search,
	}
	writeListPage(ctx, ctrl.Log, w, ctrl.Fetcher, filter, query.Pagination, asIs[responses.PsychologistSummary], constvars.GetPsychologistsSuccessMessage)
}

func (ctrl *PsychologistController) FindPsychologistByID(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	psychologistID := chi.URLParam(r, constvars.URLParamPsychologistID)
	ctrl.Log.Info("PsychologistController.FindPsychologistByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamPsychologistID, psychologistID),
	)

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.FindPsychologistByID(ctx, psychologistID)
	if err != nil {
		ctrl.Log.Error("PsychologistController.FindPsychologistByID error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPsychologistSuccessMessage, response)
}

func (ctrl *PsychologistController) FindSlots(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	psychologistID := chi.URLParam(r, constvars.URLParamPsychologistID)
	ctrl.Log.Info("PsychologistController.FindSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamPsychologistID, psychologistID),
	)

	query := requests.SlotQuery{Date: utils.QueryString(r, constvars.URLQueryParamDate)}
	if err := validate(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.FindSlots(ctx, psychologistID, query.Date)
	if err != nil {
		ctrl.Log.Error("PsychologistController.FindSlots error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPsychologistSuccessMessage, response)
}
