//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/signphon/internal/adapter/postgres"
	"github.com/heartmarshall/signphon/internal/adapter/postgres/sign"
	"github.com/heartmarshall/signphon/internal/adapter/postgres/testhelper"
	authpkg "github.com/heartmarshall/signphon/internal/auth"
	"github.com/heartmarshall/signphon/internal/compare"
	"github.com/heartmarshall/signphon/internal/config"
	"github.com/heartmarshall/signphon/internal/hamnosys"
	"github.com/heartmarshall/signphon/internal/parser"
	"github.com/heartmarshall/signphon/internal/service/signbank"
	"github.com/heartmarshall/signphon/internal/transport/middleware"
	"github.com/heartmarshall/signphon/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	table, err := hamnosys.Default()
	require.NoError(t, err)

	metric, err := compare.NewMetric(compare.DefaultWeights(), nil)
	require.NoError(t, err)

	svc := signbank.NewService(
		logger,
		sign.New(pool),
		postgres.NewTxManager(pool),
		parser.New(table),
		metric,
		signbank.DefaultConfig(),
	)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	router := rest.NewRouter(rest.Routes{
		Signs:  rest.NewSignHandler(svc, logger),
		Health: rest.NewHealthHandler(pool, table, "test-version"),
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins: "*",
				AllowedMethods: "GET,POST,DELETE,OPTIONS",
				AllowedHeaders: "Authorization,Content-Type",
				MaxAge:         86400,
			}),
		},
		API: []middleware.Middleware{
			middleware.Auth(jwtMgr),
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// editorToken issues a token for a fresh editor name.
func editorToken(t *testing.T, ts *testServer) string {
	t.Helper()

	tok, err := ts.jwt.IssueEditorToken("editor-"+uuid.New().String()[:8], 0)
	require.NoError(t, err)
	return tok
}

// uniqueGloss returns a gloss that no other test uses.
func uniqueGloss(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest sends body as JSON (nil sends no body) and returns the response.
func restRequest(t *testing.T, ts *testServer, method, path string, body any, token string) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	return send(t, ts, method, path, r, token)
}

// sendRaw sends a raw string body. Unlike restRequest, it does NOT
// json.Marshal the body, allowing callers to send malformed payloads.
func sendRaw(t *testing.T, ts *testServer, method, path, bodyStr string) *http.Response {
	t.Helper()
	return send(t, ts, method, path, strings.NewReader(bodyStr), "")
}

func send(t *testing.T, ts *testServer, method, path string, body io.Reader, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// decodeBody reads and decodes the JSON response body into a map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), "response body should be valid JSON")
	return body
}

// createSign posts a sign as an editor and returns the decoded entry.
func createSign(t *testing.T, ts *testServer, token, gloss, text string) map[string]any {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/v1/signs", map[string]any{
		"gloss":  gloss,
		"text":   text,
		"source": "e2e",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody(t, resp)
}

// dig walks nested JSON objects by key.
func dig(t *testing.T, m map[string]any, keys ...string) any {
	t.Helper()

	var cur any = m
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		require.True(t, ok, "expected object at %q", k)
		cur = obj[k]
	}
	return cur
}
