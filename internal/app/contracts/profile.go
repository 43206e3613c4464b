package contracts

import (
	"context"
	"io"
	"konsulin-portal/internal/pkg/dto/responses"
)

type ProfileAPIClient interface {
	GetProfile(ctx context.Context) (*responses.ProfileDetail, error)
	UpdateProfile(ctx context.Context, body io.Reader, contentType string) (*responses.Message, error)
}
