// Package responsewriter captures the status code and body size of a
// response as it is written, for the access-log and metrics middleware that
// report after the handler returns.
package responsewriter

import "net/http"

// Recorder wraps an http.ResponseWriter and remembers what went out.
type Recorder struct {
	http.ResponseWriter
	status int
	bytes  int
	wrote  bool
}

// Wrap returns a Recorder over w. Until a header is written the recorded
// status is 200, matching the implicit default of net/http.
func Wrap(w http.ResponseWriter) *Recorder {
	return &Recorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader passes the first call through and drops the rest, the same
// way net/http does, so the recorded status stays authoritative.
func (r *Recorder) WriteHeader(status int) {
	if r.wrote {
		return
	}
	r.wrote = true
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *Recorder) Write(b []byte) (int, error) {
	if !r.wrote {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Status returns the recorded status code.
func (r *Recorder) Status() int { return r.status }

// Bytes returns how many body bytes have been written so far.
func (r *Recorder) Bytes() int { return r.bytes }

// Unwrap exposes the wrapped writer to http.ResponseController.
func (r *Recorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }
