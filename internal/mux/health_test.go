package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	ts := httptest.NewServer(NewMux("v1.2.3"))
	defer ts.Close()

	var expects healthResponse
	resp := assertGet(t, ts, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v1.2.3", expects.Version)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestRequestID(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")

	resp := assertDo(t, req, nil, 200)
	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}
