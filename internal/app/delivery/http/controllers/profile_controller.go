package controllers

import (
	"context"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/core/profile"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/exceptions"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, form *profile.Form) (*responses.Message, error)
}

type ProfileController struct {
	Log            *zap.Logger
	Usecase        ProfileUsecase
	BodyLimitInMB  int
	RequestTimeout time.Duration
}

func NewProfileController(logger *zap.Logger, usecase ProfileUsecase, bodyLimitInMB int, requestTimeout time.Duration) *ProfileController {
	return &ProfileController{
		Log:            logger,
		Usecase:        usecase,
		BodyLimitInMB:  bodyLimitInMB,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ProfileController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Usecase.GetProfile(ctx)
	if err != nil {
		ctrl.Log.Error("ProfileController.GetProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, response)
}

// UpdateProfile accepts multipart/form-data. A profilePicture file part
// uploads a new picture, a profilePicture text value keeps an existing URL.
func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := models.RequestIDFromContext(r.Context())
	ctrl.Log.Info("ProfileController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	limit := int64(ctrl.BodyLimitInMB) << 20
	if limit <= 0 {
		limit = 6 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		ctrl.Log.Error("ProfileController.UpdateProfile error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	form, err := profile.FormFromMultipart(r.MultipartForm)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withTimeout(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.Usecase.UpdateProfile(ctx, form)
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		renderError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, response)
}
