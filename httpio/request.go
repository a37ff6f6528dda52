package httpio

import (
	"errors"
	"io"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/Murilinho145SG/respond/buffer"
)

// HTTP methods understood by the server.
const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

// Predefined errors for request handling.
var (
	// ErrInvalidRequestLine is returned when the first line is not "METHOD PATH VERSION".
	ErrInvalidRequestLine = errors.New("invalid request line")

	// ErrInvalidHeader is returned when an invalid header format is encountered.
	ErrInvalidHeader = errors.New("invalid header in request")

	// ErrInvalidContentLength is returned when Content-Length is not a number.
	ErrInvalidContentLength = errors.New("invalid Content-Length")
)

// Request represents an incoming HTTP request.
type Request struct {
	// Method is the HTTP method (e.g., GET, HEAD, POST).
	Method string

	// Path is the request target.
	Path string

	// Headers holds the request headers under canonical names.
	Headers *Headers

	// Version is the protocol version (e.g., HTTP/1.1).
	Version string

	// Body is nil when the request declares no Content-Length.
	Body *buffer.BuffReader
}

// NewRequest creates a request for method. An empty method means GET.
func NewRequest(method string) *Request {
	if method == "" {
		method = MethodGet
	}

	return &Request{
		Method:  method,
		Headers: &Headers{},
	}
}

// IsHead reports whether the request asks for headers only.
func (r *Request) IsHead() bool {
	return r != nil && strings.EqualFold(r.Method, MethodHead)
}

// Parser parses the request line and header block, without the terminating
// blank line.
//
// Header names are canonicalized ("content-length" becomes "Content-Length").
// A repeated header keeps its first value.
func (r *Request) Parser(head []byte) error {
	lines := strings.Split(string(head), "\r\n")

	titleParts := strings.Split(lines[0], " ")
	if len(titleParts) != 3 || titleParts[0] == "" {
		return ErrInvalidRequestLine
	}

	r.Method = titleParts[0]
	r.Path = strings.TrimSpace(titleParts[1])
	r.Version = titleParts[2]
	if r.Headers == nil {
		r.Headers = &Headers{}
	}

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		key = textproto.TrimString(key)
		if !found || key == "" {
			return ErrInvalidHeader
		}

		key = textproto.CanonicalMIMEHeaderKey(key)
		if _, exists := r.Headers.Lookup(key); exists {
			continue
		}

		r.Headers.Set(key, textproto.TrimString(value))
	}

	return nil
}

// ContentLength returns the declared body length, or 0 when absent.
func (r *Request) ContentLength() (int, error) {
	raw, ok := r.Headers.Lookup("Content-Length")
	if !ok {
		return 0, nil
	}

	length, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || length < 0 {
		return 0, ErrInvalidContentLength
	}

	return length, nil
}

// SetBody wraps body in a BuffReader sized by the Content-Length header.
// Requests without a body leave Body nil. maxSize <= 0 keeps the default
// limit.
func (r *Request) SetBody(body io.Reader, maxSize int) error {
	if body == nil {
		return nil
	}

	length, err := r.ContentLength()
	if err != nil {
		return err
	}

	if length == 0 {
		return nil
	}

	br, err := buffer.NewBuffReader(body, length)
	if err != nil {
		return err
	}

	br.SetMaxSize(maxSize)
	if br.Exceeds() {
		return buffer.ErrBodyMaxSize
	}

	r.Body = br
	return nil
}

// ReadBody returns the whole body, or nil when the request has none.
func (r *Request) ReadBody() ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	return r.Body.Read()
}
