package applications

import (
	"context"
	"errors"
	"konsulin-portal/internal/app/services/core/listing"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockApplicationAPIClient struct {
	mock.Mock
}

func (m *mockApplicationAPIClient) ListApplications(ctx context.Context, request listing.Request) (*responses.ApplicationList, error) {
	args := m.Called(ctx, request)
	list, _ := args.Get(0).(*responses.ApplicationList)
	return list, args.Error(1)
}

func (m *mockApplicationAPIClient) FindApplicationByID(ctx context.Context, applicationID string) (*responses.ApplicationDetail, error) {
	args := m.Called(ctx, applicationID)
	detail, _ := args.Get(0).(*responses.ApplicationDetail)
	return detail, args.Error(1)
}

func (m *mockApplicationAPIClient) DecideApplication(ctx context.Context, applicationID string, request *requests.DecideApplication) (*responses.Message, error) {
	args := m.Called(ctx, applicationID, request)
	message, _ := args.Get(0).(*responses.Message)
	return message, args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func TestFindApplicationByIDPresignsDocuments(t *testing.T) {
	client := new(mockApplicationAPIClient)
	client.On("FindApplicationByID", mock.Anything, "a-1").Return(&responses.ApplicationDetail{
		Application: responses.Application{
			ID: "a-1",
			Documents: []responses.ApplicationDocument{
				{Name: "License", ObjectKey: "a-1/license.pdf"},
				{Name: "Portfolio link", URL: "https://example.com/portfolio"},
			},
		},
	}, nil)
	storage := new(mockStorage)
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "applications", "a-1/license.pdf", time.Hour).
		Return("https://minio.local/applications/a-1/license.pdf?X-Amz-Signature=abc", nil)

	usecase := NewApplicationUsecase(client, storage, "applications", time.Hour, zap.NewNop())
	result, err := usecase.FindApplicationByID(context.Background(), "a-1")

	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/applications/a-1/license.pdf?X-Amz-Signature=abc", result.Application.Documents[0].URL)
	assert.Equal(t, "https://example.com/portfolio", result.Application.Documents[1].URL)
	storage.AssertNumberOfCalls(t, "GetObjectUrlWithExpiryTime", 1)
}

func TestFindApplicationByIDStorageFailure(t *testing.T) {
	client := new(mockApplicationAPIClient)
	client.On("FindApplicationByID", mock.Anything, "a-1").Return(&responses.ApplicationDetail{
		Application: responses.Application{Documents: []responses.ApplicationDocument{{ObjectKey: "k"}}},
	}, nil)
	storage := new(mockStorage)
	failure := errors.New("minio down")
	storage.On("GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", failure)

	usecase := NewApplicationUsecase(client, storage, "applications", time.Hour, zap.NewNop())
	result, err := usecase.FindApplicationByID(context.Background(), "a-1")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, failure)
}
