package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/config"
	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	testhelpers "github.com/polkiloo/mentorcrm/internal/test"
)

func setupEngine(facade *testhelpers.CRMFacadeStub, stream *testhelpers.StreamServerStub) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, stream, &config.Config{}, logger)
}

func serve(engine *gin.Engine, method, target, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	facade := &testhelpers.CRMFacadeStub{
		AuthenticateFn: func(_ context.Context, token string) (model.Operator, error) {
			if token != "token" {
				return model.Operator{}, domainErrors.ErrInvalidCredentials
			}
			return model.Operator{ID: "1", Role: model.RoleAdmin}, nil
		},
	}
	stream := &testhelpers.StreamServerStub{}
	engine := setupEngine(facade, stream)

	resp := serve(engine, http.MethodPost, "/api/login", "", map[string]string{"email": "a@crm.uz", "password": "pass"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodGet, "/api/snapshot", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}
	resp = serve(engine, http.MethodGet, "/api/snapshot", "stale", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for rejected token, got %d", resp.Code)
	}

	authed := []struct {
		method string
		target string
		body   any
		want   int
	}{
		{http.MethodGet, "/api/me", nil, http.StatusOK},
		{http.MethodGet, "/api/snapshot", nil, http.StatusOK},
		{http.MethodPost, "/api/sync", nil, http.StatusOK},
		{http.MethodPut, "/api/customers/C1", map[string]string{"stage": "Yangi"}, http.StatusOK},
		{http.MethodPost, "/api/customers/assign", map[string]any{"operatorId": "2", "customerIds": []string{"C1"}}, http.StatusOK},
		{http.MethodPost, "/api/customers/unassign", map[string]any{"operatorId": "2", "customerIds": []string{"C1"}}, http.StatusOK},
		{http.MethodPost, "/api/tasks", map[string]string{"customerId": "C1", "text": "x"}, http.StatusCreated},
		{http.MethodPost, "/api/products", map[string]string{"name": "IELTS"}, http.StatusCreated},
		{http.MethodPost, "/api/operators", map[string]string{"email": "b@crm.uz"}, http.StatusCreated},
		{http.MethodPost, "/api/orders", map[string]string{"customerId": "C1"}, http.StatusCreated},
		{http.MethodPost, "/api/orders/status", map[string]any{"orderIds": []string{"1"}, "status": "Kutilmoqda"}, http.StatusOK},
		{http.MethodGet, "/api/stats/sales?range=week", nil, http.StatusOK},
		{http.MethodGet, "/api/stats/rankings", nil, http.StatusOK},
		{http.MethodGet, "/api/stats/inactive", nil, http.StatusOK},
		{http.MethodGet, "/api/stats/urgent-orders", nil, http.StatusOK},
		{http.MethodGet, "/api/stats/tasks", nil, http.StatusOK},
		{http.MethodGet, "/api/stats/reports", nil, http.StatusOK},
		{http.MethodGet, "/api/settings/endpoints", nil, http.StatusOK},
		{http.MethodPut, "/api/settings/endpoints", map[string]string{"orders": "https://store/orders"}, http.StatusOK},
		{http.MethodGet, "/api/settings/stages", nil, http.StatusOK},
		{http.MethodPost, "/api/settings/stages", map[string]string{"name": "Guruh"}, http.StatusCreated},
		{http.MethodDelete, "/api/settings/stages/Guruh", nil, http.StatusOK},
	}
	for _, tc := range authed {
		resp = serve(engine, tc.method, tc.target, "token", tc.body)
		if resp.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.target, tc.want, resp.Code, resp.Body.String())
		}
	}
}

func TestStreamRouteUsesAuthenticatedOperator(t *testing.T) {
	stream := &testhelpers.StreamServerStub{}
	engine := setupEngine(&testhelpers.CRMFacadeStub{}, stream)

	resp := serve(engine, http.MethodGet, "/api/ws?token=token", "", nil)
	if resp.Code != http.StatusSwitchingProtocols {
		t.Fatalf("expected upgrade status, got %d", resp.Code)
	}
	if len(stream.Operators) != 1 || stream.Operators[0] != "1" {
		t.Fatalf("expected stream for operator 1, got %v", stream.Operators)
	}
}

func TestResponsesAreCompressed(t *testing.T) {
	engine := setupEngine(&testhelpers.CRMFacadeStub{}, &testhelpers.StreamServerStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoded response, got headers %v", resp.Header())
	}
}
