package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	api "spartans-cricket-backend/internal/api/http"
	"spartans-cricket-backend/internal/security"
	"spartans-cricket-backend/internal/storage"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type testServer struct {
	handler    http.Handler
	tokens     security.TokenManager
	intake     *MockIntakeService
	moderation *MockModerationService
	roster     *MockRosterService
	content    *MockContentService
	gallery    *MockGalleryService
	auth       *MockAuthService
	images     *storage.LocalStore
}

func newTestServer(t *testing.T, cfg api.RouterConfig) *testServer {
	t.Helper()
	images, err := storage.NewLocalStore("http://localhost:8080", t.TempDir())
	require.NoError(t, err)

	ts := &testServer{
		tokens:     security.NewTokenManager(testSecret, time.Hour),
		intake:     new(MockIntakeService),
		moderation: new(MockModerationService),
		roster:     new(MockRosterService),
		content:    new(MockContentService),
		gallery:    new(MockGalleryService),
		auth:       new(MockAuthService),
		images:     images,
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = 1000
		cfg.Burst = 1000
	}
	if cfg.MaxImageBytes == 0 {
		cfg.MaxImageBytes = 1 << 20
	}
	if cfg.AllowedOrigins == nil {
		cfg.AllowedOrigins = []string{"*"}
	}
	ts.handler = api.NewRouter(api.Services{
		Intake:     ts.intake,
		Moderation: ts.moderation,
		Roster:     ts.roster,
		Content:    ts.content,
		Gallery:    ts.gallery,
		Auth:       ts.auth,
		Images:     images,
		Tokens:     ts.tokens,
	}, cfg)
	return ts
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	token, err := ts.tokens.GenerateAdminToken("admin")
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var r io.Reader
	if s, ok := body.(string); ok {
		r = bytes.NewBufferString(s)
	} else if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// multipartRequest builds a form with the given fields and, when image is non-empty, a PNG "image" part.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if len(image) > 0 {
		part, err := mw.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="image"; filename="photo.png"`},
			"Content-Type":        {"image/png"},
		})
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
