package profile

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type Usecase struct {
	Client             contracts.ProfileAPIClient
	MaxPictureSizeInMB int
	Log                *zap.Logger
}

func NewUsecase(client contracts.ProfileAPIClient, maxPictureSizeInMB int, logger *zap.Logger) *Usecase {
	return &Usecase{
		Client:             client,
		MaxPictureSizeInMB: maxPictureSizeInMB,
		Log:                logger,
	}
}

func (uc *Usecase) GetProfile(ctx context.Context) (*responses.Profile, error) {
	result, err := uc.Client.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return &result.Profile, nil
}

// UpdateProfile validates the form, then sends it as one multipart request.
func (uc *Usecase) UpdateProfile(ctx context.Context, form *Form) (*responses.Message, error) {
	requestID := models.RequestIDFromContext(ctx)
	uc.Log.Info("profile.Usecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("picture", pictureKind(form.Picture)),
	)

	if err := form.Validate(uc.MaxPictureSizeInMB); err != nil {
		uc.Log.Error("profile.Usecase.UpdateProfile validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	body, contentType, err := form.Encode()
	if err != nil {
		uc.Log.Error("profile.Usecase.UpdateProfile error building multipart body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.Client.UpdateProfile(ctx, body, contentType)
}

func pictureKind(picture Picture) string {
	switch picture.(type) {
	case nil, Unset:
		return "unset"
	case Existing:
		return "existing"
	case PendingUpload:
		return "pending_upload"
	}
	return "unknown"
}
