package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-hub.backend/internal/interfaces/http/handlers"
	"community-hub.backend/internal/interfaces/http/middleware"
	"community-hub.backend/internal/metrics"
	"community-hub.backend/internal/testutil"
	"community-hub.backend/pkg/redis"
)

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	pass := func(c *gin.Context) { c.Next() }

	registerAPIV1Routes(r, routeDeps{
		authHandler:         &handlers.AuthHandler{},
		verificationHandler: &handlers.VerificationHandler{},
		startupHandler:      &handlers.StartupHandler{},
		interactionHandler:  &handlers.InteractionHandler{},
		studyGroupHandler:   &handlers.StudyGroupHandler{},
		profileHandler:      &handlers.ProfileHandler{},
		catalogHandler:      &handlers.CatalogHandler{},
		authMiddleware:      pass,
		trustedProxy:        pass,
		rateLimit:           pass,
	})

	expects := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/auth/signin"},
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/verification/complete"},
		{http.MethodGet, "/api/v1/startups"},
		{http.MethodGet, "/api/v1/startups/:id"},
		{http.MethodPost, "/api/v1/startups/:id/like"},
		{http.MethodPost, "/api/v1/startups/:id/dislike"},
		{http.MethodPost, "/api/v1/startups/:id/comment"},
		{http.MethodPost, "/api/v1/startups/:id/comments/:commentId/reply"},
		{http.MethodPost, "/api/v1/applications"},
		{http.MethodGet, "/api/v1/applications/my"},
		{http.MethodPatch, "/api/v1/applications/:id/status"},
		{http.MethodPost, "/api/v1/study-groups/:id/join"},
		{http.MethodPut, "/api/v1/profile/skills"},
		{http.MethodGet, "/api/v1/departments/:id/courses"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		assert.True(t, found, "route %s %s not registered", exp.method, exp.path)
	}
}

func TestApplyCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	applyCORSMiddleware(r, []string{"http://localhost:3000"})
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegisterHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	registerHealthRoute(r, func(context.Context) error { return nil })
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := gin.New()
	registerHealthRoute(down, func(context.Context) error { return errors.New("db down") })
	rec = httptest.NewRecorder()
	down.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

type apiClient struct {
	t *testing.T
	r http.Handler
}

func (c apiClient) do(method, path, token string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	return w
}

func (c apiClient) json(w *httptest.ResponseRecorder) map[string]interface{} {
	c.t.Helper()
	var out map[string]interface{}
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (c apiClient) signIn(email, name string) string {
	c.t.Helper()
	w := c.do(http.MethodPost, "/api/v1/auth/signin", "", map[string]string{"email": email, "name": name},
		middleware.ProxySecretHeader, "proxy-secret")
	require.Equal(c.t, http.StatusOK, w.Code, w.Body.String())
	return c.json(w)["accessToken"].(string)
}

func newTestServer(t *testing.T) (apiClient, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := miniredis.RunT(t)
	prev := redis.GetClient()
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))
	t.Cleanup(func() { redis.SetClient(prev) })

	cfg := baseTestConfig()
	store, err := redis.NewSessionStore(testEncryptionKey)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	m := metrics.NewRegistry(reg)
	a := buildApp(cfg, testutil.NewSchemaDB(t), store, m)
	return apiClient{t: t, r: newRouter(cfg, a.routes, reg, m)}, reg
}

func TestAPI_FounderAndApplicantFlow(t *testing.T) {
	api, _ := newTestServer(t)

	founder := api.signIn("founder@campus.edu", "Fiona Founder")
	applicant := api.signIn("ada@campus.edu", "Ada")

	w := api.do(http.MethodPost, "/api/v1/startups", founder, map[string]string{"name": "EcoTrack", "description": "Carbon tracking"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	startupID := api.json(w)["id"].(string)

	w = api.do(http.MethodPost, "/api/v1/startups/"+startupID+"/positions", founder, map[string]interface{}{
		"title":          "Frontend Developer",
		"employmentType": "PART_TIME",
		"skills":         []string{"React", "TypeScript"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	positionID := api.json(w)["id"].(string)

	apply := map[string]string{"startupId": startupID, "positionId": positionID}

	w = api.do(http.MethodPost, "/api/v1/applications", applicant, apply)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/v1/verification/challenges", applicant, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := api.json(w)["token"].(string)

	w = api.do(http.MethodPost, "/api/v1/verification/complete", applicant, map[string]string{"token": token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/applications", applicant, apply)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/v1/verification/complete", applicant, map[string]string{"token": token},
		middleware.ProxySecretHeader, "proxy-secret")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/v1/applications", applicant, apply, middleware.IdempotencyHeader, "apply-1")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "PENDING", api.json(w)["status"])

	w = api.do(http.MethodPost, "/api/v1/applications", applicant, apply, middleware.IdempotencyHeader, "apply-1")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "true", w.Header().Get("X-Idempotency-Hit"))

	w = api.do(http.MethodPost, "/api/v1/applications", applicant, apply)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already applied")

	w = api.do(http.MethodPost, "/api/v1/startups/"+startupID+"/like", applicant, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), api.json(w)["likeCount"])

	w = api.do(http.MethodPost, "/api/v1/startups/"+startupID+"/comment", applicant, map[string]string{"content": "Great idea!"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = api.do(http.MethodGet, "/api/v1/startups/"+startupID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := api.json(w)
	positions := detail["positions"].([]interface{})
	require.Len(t, positions, 1)
	assert.Len(t, positions[0].(map[string]interface{})["applications"], 1)
	assert.Len(t, detail["comments"], 1)

	w = api.do(http.MethodGet, "/api/v1/applications/my", applicant, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := api.json(w)["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "EcoTrack", items[0].(map[string]interface{})["startupName"])
}

func TestAPI_VerificationCompleteRequiresTrustedProxy(t *testing.T) {
	api, _ := newTestServer(t)
	user := api.signIn("lin@campus.edu", "Lin")

	w := api.do(http.MethodPost, "/api/v1/verification/challenges", user, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := api.json(w)["token"].(string)

	w = api.do(http.MethodPost, "/api/v1/verification/complete", user, map[string]string{"token": token},
		middleware.ProxySecretHeader, "wrong-secret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/v1/verification/complete", user, map[string]string{"token": token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/api/v1/auth/me", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := api.json(w)["user"].(map[string]interface{})
	assert.Equal(t, false, me["verified"])
}

func TestAPI_AuthAndPlatform(t *testing.T) {
	api, _ := newTestServer(t)

	w := api.do(http.MethodPost, "/api/v1/auth/signin", "", map[string]string{"email": "x@campus.edu", "name": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodGet, "/api/v1/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := api.signIn("grace@campus.edu", "Grace")
	w = api.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "grace@campus.edu")

	w = api.do(http.MethodGet, "/api/v1/startups", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, api.json(w)["items"])

	w = api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "communityhub_http_requests_total")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
