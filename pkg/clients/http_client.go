package clients

import (
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	connectTimeout = time.Millisecond * 3500
	readTimeout    = time.Second * 9999
)

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	Fetch(req *http.Request) (statusCode int, respBody []byte, respHeaders http.Header, err error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

// Fetch sends req and reads the whole response body.
func (h *HTTPClientAdapter) Fetch(req *http.Request) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	resp, err := h.client.Do(req)
	if err != nil {
		return
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode
	respHeaders = resp.Header

	return
}

type HTTPClient struct {
	client HTTPClientI
}

type Option func(*http.Client, *http.Transport)

// WithTimeouts sets the connect and read timeouts. The read timeout bounds
// the wait for response headers, not the body transfer.
func WithTimeouts(connect, read time.Duration) Option {
	return func(_ *http.Client, tr *http.Transport) {
		tr.DialContext = (&net.Dialer{Timeout: connect, KeepAlive: 30 * time.Second}).DialContext
		tr.TLSHandshakeTimeout = connect
		tr.ResponseHeaderTimeout = read
	}
}

func WithProxy(proxy *url.URL) Option {
	return func(_ *http.Client, tr *http.Transport) {
		tr.Proxy = http.ProxyURL(proxy)
	}
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	c := &http.Client{Transport: tr}
	WithTimeouts(connectTimeout, readTimeout)(c, tr)
	for _, opt := range opts {
		opt(c, tr)
	}

	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: c,
		},
	}
}

func (h *HTTPClient) Fetch(req *http.Request) (statusCode int, respBody []byte, respHeaders http.Header, err error) {
	return h.client.Fetch(req)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

func (h *HTTPClient) SetClient(mock HTTPClientI) {
	h.client = mock
}
