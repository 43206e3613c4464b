package profiles

import (
	"context"
	"io"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/app/services/shared/transport"
	"konsulin-portal/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProfileAPIClient(t *testing.T) {
	var gotContentType, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/psychologist/profile", r.URL.Path)
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"profile":{"id":"p-1","fullname":"Dr. Sari","role":"psychologist"}}`))
			return
		}
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(`{"message":"profile updated"}`))
	}))
	defer server.Close()

	ctx := models.WithPrincipal(context.Background(), models.Principal{UserID: "p-1", Role: constvars.RolePsychologist, Token: "token"})
	client := NewProfileAPIClient(transport.NewClient(transport.Options{BaseUrl: server.URL}, zap.NewNop()), zap.NewNop())

	detail, err := client.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sari", detail.Profile.Fullname)

	message, err := client.UpdateProfile(ctx, strings.NewReader("--b\r\n"), "multipart/form-data; boundary=b")
	require.NoError(t, err)
	assert.Equal(t, "profile updated", message.Message)
	assert.Equal(t, "multipart/form-data; boundary=b", gotContentType)
	assert.Equal(t, "--b\r\n", gotBody)
}
