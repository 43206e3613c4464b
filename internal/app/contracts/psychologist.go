package contracts

import (
	"context"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/dto/responses"
)

type PsychologistAPIClient interface {
	ListPsychologists(ctx context.Context, request listing.Request) (*responses.PsychologistList, error)
	FindPsychologistByID(ctx context.Context, psychologistID string) (*responses.PsychologistDetail, error)
	FindSlots(ctx context.Context, psychologistID, date string) (*responses.SlotList, error)
}
