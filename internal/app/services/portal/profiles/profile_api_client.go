package profiles

import (
	"context"
	"io"
	"konsulin-portal/internal/app/contracts"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type profileAPIClient struct {
	Client *transport.Client
	Log    *zap.Logger
}

func NewProfileAPIClient(client *transport.Client, logger *zap.Logger) contracts.ProfileAPIClient {
	return &profileAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *profileAPIClient) GetProfile(ctx context.Context) (*responses.ProfileDetail, error) {
	c.Log.Info("profileAPIClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.ProfileDetail)
	err := c.Client.GetJSON(ctx, constvars.ResourceProfile, constvars.ResourceProfile, nil, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateProfile sends an already encoded multipart body.
func (c *profileAPIClient) UpdateProfile(ctx context.Context, body io.Reader, contentType string) (*responses.Message, error) {
	c.Log.Info("profileAPIClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, models.RequestIDFromContext(ctx)),
	)

	result := new(responses.Message)
	err := c.Client.Do(ctx, transport.Request{
		Method:      constvars.MethodPatch,
		Resource:    constvars.ResourceProfile,
		Path:        constvars.ResourceProfile,
		Body:        body,
		ContentType: contentType,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
