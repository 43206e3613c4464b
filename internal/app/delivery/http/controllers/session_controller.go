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

type SessionController struct {
	Log            *zap.Logger
	Client         contracts.SessionAPIClient
	Fetcher        listing.Fetcher[responses.Session]
	RequestTimeout time.Duration
}

func NewSessionController(logger *zap.Logger, client contracts.SessionAPIClient, fetcher listing.Fetcher[responses.Session], requestTimeout time.Duration) *SessionController {
	return &SessionController{
		Log:            logger,
		Client:         client,
		Fetcher:        fetcher,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *SessionController) ListSessions(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("SessionController.ListSessions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := requests.SessionListQuery{
		Pagination: utils.BuildPaginationRequest(r),
		Status:     utils.QueryString(r, constvars.URLQueryParamStatus),
	}
	if err := validate(query); err != nil {
		ctrl.Log.Error("SessionController.ListSessions validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	filter := listing.Filter{constvars.URLQueryParamStatus: query.Status}
	writeListPage(ctx, ctrl.Log, w, ctrl.Fetcher, filter, query.Pagination, status.SessionRows, constvars.GetSessionsSuccessMessage)
}

func (ctrl *SessionController) FindSessionByID(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("SessionController.FindSessionByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamSessionID, sessionID),
	)

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.FindSessionByID(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("SessionController.FindSessionByID error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	row := responses.SessionRow{
		Session: response.Session,
		Badge:   status.Badge(status.KindSession, string(response.Session.Status)),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, row)
}

func (ctrl *SessionController) CancelSession(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	ctrl.Log.Info("SessionController.CancelSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamSessionID, sessionID),
	)

	request := new(requests.CancelSession)
	if err := decodeOptionalJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.CancelSession(ctx, sessionID, request)
	if err != nil {
		ctrl.Log.Error("SessionController.CancelSession error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelSessionSuccessMessage, response)
}

func (ctrl *SessionController) BookSlot(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	slotID := chi.URLParam(r, constvars.URLParamSlotID)
	ctrl.Log.Info("SessionController.BookSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.URLParamSlotID, slotID),
	)

	request := new(requests.BookSlot)
	if err := decodeOptionalJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := validate(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Client.BookSlot(ctx, slotID, request)
	if err != nil {
		ctrl.Log.Error("SessionController.BookSlot error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookSlotSuccessMessage, response)
}
