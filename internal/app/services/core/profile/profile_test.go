package profile

import (
	"bytes"
	"context"
	"io"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/dto/responses"
	"konsulin-portal/internal/pkg/exceptions"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bogusPicture struct{}

func (bogusPicture) picture() {}

func parseEncoded(t *testing.T, body *bytes.Buffer, contentType string) *multipart.Form {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	return form
}

func TestEncodeUnsetOmitsPicture(t *testing.T) {
	form := &Form{Fields: requests.UpdateProfile{Fullname: "Rina", Bio: ""}, Picture: Unset{}}

	body, contentType, err := form.Encode()
	require.NoError(t, err)

	parsed := parseEncoded(t, body, contentType)
	assert.Equal(t, []string{"Rina"}, parsed.Value[constvars.FormFieldFullname])
	assert.NotContains(t, parsed.Value, constvars.FormFieldBio)
	assert.NotContains(t, parsed.Value, constvars.FormFieldProfilePicture)
	assert.NotContains(t, parsed.File, constvars.FormFieldProfilePicture)
}

func TestEncodeExistingSendsURL(t *testing.T) {
	form := &Form{Picture: Existing{URL: "https://cdn.example.com/p/1.png"}}

	body, contentType, err := form.Encode()
	require.NoError(t, err)

	parsed := parseEncoded(t, body, contentType)
	assert.Equal(t, []string{"https://cdn.example.com/p/1.png"}, parsed.Value[constvars.FormFieldProfilePicture])
}

func TestEncodePendingUploadSendsFile(t *testing.T) {
	data := []byte("\x89PNG fake image bytes")
	form := &Form{Picture: PendingUpload{Filename: "me.png", ContentType: "image/png", Data: data}}

	body, contentType, err := form.Encode()
	require.NoError(t, err)

	parsed := parseEncoded(t, body, contentType)
	files := parsed.File[constvars.FormFieldProfilePicture]
	require.Len(t, files, 1)
	assert.Equal(t, "me.png", files[0].Filename)
	assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))

	picture, err := PictureFromMultipart(parsed)
	require.NoError(t, err)
	assert.Equal(t, PendingUpload{Filename: "me.png", ContentType: "image/png", Data: data}, picture)
}

func TestEncodeUnknownVariant(t *testing.T) {
	form := &Form{Picture: bogusPicture{}}

	_, _, err := form.Encode()

	require.Error(t, err)
	assert.IsType(t, &exceptions.CustomError{}, err)
}

func TestPictureFromMultipart(t *testing.T) {
	picture, err := PictureFromMultipart(nil)
	require.NoError(t, err)
	assert.Equal(t, Unset{}, picture)

	picture, err = PictureFromMultipart(&multipart.Form{Value: map[string][]string{
		constvars.FormFieldProfilePicture: {" https://cdn.example.com/a.jpg "},
	}})
	require.NoError(t, err)
	assert.Equal(t, Existing{URL: "https://cdn.example.com/a.jpg"}, picture)
}

func TestValidatePicture(t *testing.T) {
	assert.NoError(t, ValidatePicture(Unset{}, 1))
	assert.NoError(t, ValidatePicture(Existing{URL: "x"}, 1))
	assert.NoError(t, ValidatePicture(PendingUpload{Filename: "a.JPG", Data: []byte("abc")}, 1))

	err := ValidatePicture(PendingUpload{Filename: "a.gif", Data: []byte("abc")}, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*exceptions.CustomError).StatusCode)

	err = ValidatePicture(PendingUpload{Filename: "a.png", Data: make([]byte, 1024*1024+1)}, 1)
	require.Error(t, err)

	err = ValidatePicture(bogusPicture{}, 1)
	require.Error(t, err)
}

type mockProfileAPIClient struct {
	mock.Mock
}

func (m *mockProfileAPIClient) GetProfile(ctx context.Context) (*responses.ProfileDetail, error) {
	args := m.Called(ctx)
	detail, _ := args.Get(0).(*responses.ProfileDetail)
	return detail, args.Error(1)
}

func (m *mockProfileAPIClient) UpdateProfile(ctx context.Context, body io.Reader, contentType string) (*responses.Message, error) {
	args := m.Called(ctx, body, contentType)
	message, _ := args.Get(0).(*responses.Message)
	return message, args.Error(1)
}

func TestUsecaseUpdateProfile(t *testing.T) {
	client := new(mockProfileAPIClient)
	client.On("UpdateProfile", mock.Anything, mock.Anything, mock.MatchedBy(func(contentType string) bool {
		mediaType, _, err := mime.ParseMediaType(contentType)
		return err == nil && mediaType == "multipart/form-data"
	})).Return(&responses.Message{Message: "profile updated"}, nil)

	usecase := NewUsecase(client, 2, zap.NewNop())
	result, err := usecase.UpdateProfile(context.Background(), &Form{
		Fields:  requests.UpdateProfile{Fullname: "Rina", PhoneNumber: "+6281234567890"},
		Picture: Existing{URL: "https://cdn.example.com/p.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "profile updated", result.Message)
	client.AssertExpectations(t)
}

func TestUsecaseUpdateProfileRejectsInvalidInput(t *testing.T) {
	client := new(mockProfileAPIClient)
	usecase := NewUsecase(client, 2, zap.NewNop())

	_, err := usecase.UpdateProfile(context.Background(), &Form{
		Fields:  requests.UpdateProfile{PhoneNumber: "0812"},
		Picture: Unset{},
	})

	require.Error(t, err)
	client.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}
