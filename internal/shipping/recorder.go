package shipping

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

const maxRecordedBytes = 10 << 20

// bodyRecorder is a RoundTripper that keeps a copy of the last response body.
type bodyRecorder struct {
	next http.RoundTripper

	mu   sync.Mutex
	body []byte
}

func (r *bodyRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)
	if err != nil || resp.Body == nil {
		return resp, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRecordedBytes))
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.body = data
	r.mu.Unlock()

	resp.Body = io.NopCloser(bytes.NewReader(data))
	resp.ContentLength = int64(len(data))
	return resp, nil
}

// Body returns the last recorded response body.
func (r *bodyRecorder) Body() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.body
}
