package clients

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHTTPClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"accounts":[]}`))
		case "/empty":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("not found"))
		}
	}))
	defer srv.Close()

	tests := []struct {
		name         string
		path         string
		expectedCode int
		expectedBody string
	}{
		{name: "Body is returned", path: "/ok", expectedCode: http.StatusOK, expectedBody: `{"accounts":[]}`},
		{name: "Empty body", path: "/empty", expectedCode: http.StatusUnauthorized, expectedBody: ""},
		{name: "Error status with body", path: "/missing", expectedCode: http.StatusNotFound, expectedBody: "not found"},
	}

	client := NewHTTPClient(WithTimeouts(time.Second, time.Second))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, srv.URL+tt.path, http.NoBody)
			require.NoError(t, err)

			status, body, headers, err := client.Fetch(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, status)
			assert.Equal(t, tt.expectedBody, string(body))
			assert.NotNil(t, headers)
		})
	}
}

func TestHTTPClient_FetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client := NewHTTPClient(WithTimeouts(100*time.Millisecond, 100*time.Millisecond))
	req, err := http.NewRequest(http.MethodGet, addr, http.NoBody)
	require.NoError(t, err)

	status, body, _, err := client.Fetch(req)
	assert.Error(t, err)
	assert.Zero(t, status)
	assert.Nil(t, body)
}

func TestHTTPClient_WithProxy(t *testing.T) {
	var proxied bool
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = true
		w.WriteHeader(http.StatusOK)
	}))
	defer proxy.Close()

	proxyURL, err := url.Parse(proxy.URL)
	require.NoError(t, err)

	client := NewHTTPClient(WithProxy(proxyURL))
	req, err := http.NewRequest(http.MethodGet, "http://edge.qiwi.invalid/funding-sources/v1/accounts/current", http.NoBody)
	require.NoError(t, err)

	status, _, _, err := client.Fetch(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, proxied)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := NewMockHTTPClientI(ctrl)
	client := NewHTTPClient()
	client.SetClient(mock)

	req, err := http.NewRequest(http.MethodGet, "http://localhost/", http.NoBody)
	require.NoError(t, err)

	mock.EXPECT().Fetch(req).Return(0, nil, nil, errors.New("dial error"))
	mock.EXPECT().Do(req).Return(&http.Response{StatusCode: http.StatusTeapot}, nil)

	_, _, _, err = client.Fetch(req)
	assert.EqualError(t, err, "dial error")

	resp, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}
