package client

import (
	"bytes"
	"io"
	"net/http"
)

// HandlerTransport dispatches requests directly to an in-process handler
// instead of the network. Embedded-backend mode and hermetic tests route
// the SDK through this so the full request path, auth decoration
// included, is exercised without a listener.
type HandlerTransport struct {
	Handler http.Handler
}

// RoundTrip implements http.RoundTripper
func (t HandlerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := &handlerRecorder{
		header: make(http.Header),
		status: http.StatusOK,
	}
	t.Handler.ServeHTTP(rec, req)

	return &http.Response{
		Status:        http.StatusText(rec.status),
		StatusCode:    rec.status,
		Proto:         req.Proto,
		ProtoMajor:    req.ProtoMajor,
		ProtoMinor:    req.ProtoMinor,
		Header:        rec.header,
		Body:          io.NopCloser(bytes.NewReader(rec.body.Bytes())),
		ContentLength: int64(rec.body.Len()),
		Request:       req,
	}, nil
}

// handlerRecorder is a minimal in-memory http.ResponseWriter
type handlerRecorder struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func (r *handlerRecorder) Header() http.Header {
	return r.header
}

func (r *handlerRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
}

func (r *handlerRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.body.Write(b)
}
