package applications

import (
	"context"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

type applicationUsecase struct {
	Client     contracts.ApplicationAPIClient
	Storage    contracts.Storage
	BucketName string
	URLExpiry  time.Duration
	Log        *zap.Logger
}

func NewApplicationUsecase(client contracts.ApplicationAPIClient, storage contracts.Storage, bucketName string, urlExpiry time.Duration, logger *zap.Logger) contracts.ApplicationUsecase {
	return &applicationUsecase{
		Client:     client,
		Storage:    storage,
		BucketName: bucketName,
		URLExpiry:  urlExpiry,
		Log:        logger,
	}
}

// FindApplicationByID returns the application with a short-lived download
// URL on every document that names an object key.
func (uc *applicationUsecase) FindApplicationByID(ctx context.Context, applicationID string) (*responses.ApplicationDetail, error) {
	requestID := models.RequestIDFromContext(ctx)
	uc.Log.Info("applicationUsecase.FindApplicationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := uc.Client.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	for i, document := range result.Application.Documents {
		if document.ObjectKey == "" {
			continue
		}
		url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.BucketName, document.ObjectKey, uc.URLExpiry)
		if err != nil {
			uc.Log.Error("applicationUsecase.FindApplicationByID error presigning document",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("object_key", document.ObjectKey),
				zap.Error(err),
			)
			return nil, err
		}
		result.Application.Documents[i].URL = url
	}
	return result, nil
}
