package httpio

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Entity header names maintained by Response.
const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
)

// DefaultContentType is the Content-Type of a new Response.
const DefaultContentType = "text/html"

// ErrInvalidArgument is returned by SetStatus for codes outside
// [MinStatus, MaxStatus].
var ErrInvalidArgument = errors.New("invalid argument")

// Response is a single outgoing HTTP response.
//
// Status, headers and body can be changed in any order. Content-Length is
// kept equal to the body length on every body change, and Finalize strips
// the entity for statuses that forbid one. Finalize and Send always work
// from the current state, so calling them again after further mutation is
// allowed.
//
// A Response is not safe for concurrent use.
type Response struct {
	status  int
	headers Headers
	body    strings.Builder
	req     *Request
}

// Message is the finalized representation handed to a Transport.
type Message struct {
	Status  int
	Headers *Headers
	Body    string
}

// NewResponse creates a 200 text/html response with an empty body. Only the
// method of req is ever read; a nil req is treated as GET.
func NewResponse(req *Request) *Response {
	res := &Response{
		status: StatusOK,
		req:    req,
	}
	res.headers.Set(HeaderContentType, DefaultContentType)

	return res
}

func (res *Response) Status() int {
	return res.status
}

// SetStatus changes the status and returns it. Any code in
// [MinStatus, MaxStatus] is accepted, registered in the catalog or not.
// Out of range codes leave the status unchanged and return an error
// matching ErrInvalidArgument.
func (res *Response) SetStatus(code int) (int, error) {
	if !ValidStatus(code) {
		return res.status, errors.Wrapf(ErrInvalidArgument, "status code %d outside [%d, %d]", code, MinStatus, MaxStatus)
	}

	res.status = code
	return res.status, nil
}

// Header returns the value of name and whether it is set.
func (res *Response) Header(name string) (string, bool) {
	return res.headers.Lookup(name)
}

func (res *Response) SetHeader(name, value string) {
	res.headers.Set(name, value)
}

func (res *Response) DelHeader(name string) {
	res.headers.Del(name)
}

// Headers returns a copy of all headers.
func (res *Response) Headers() map[string]string {
	return res.headers.Map()
}

// HeaderSet exposes the ordered header set. Changing Content-Length through
// it bypasses the body bookkeeping.
func (res *Response) HeaderSet() *Headers {
	return &res.headers
}

func (res *Response) Body() string {
	return res.body.String()
}

// SetBody replaces the body and updates Content-Length.
func (res *Response) SetBody(content string) {
	res.body.Reset()
	res.body.WriteString(content)
	res.syncLength()
}

// AppendBody adds content to the end of the body and updates Content-Length.
func (res *Response) AppendBody(content string) {
	res.body.WriteString(content)
	res.syncLength()
}

func (res *Response) syncLength() {
	res.headers.Set(HeaderContentLength, strconv.Itoa(res.body.Len()))
}

// CanHaveBody reports whether the current status permits a body.
func (res *Response) CanHaveBody() bool {
	return BodyAllowed(res.status)
}

// Finalize drops the body, Content-Type and Content-Length when the status
// forbids a body, and returns the resulting message. The returned headers
// are a copy.
func (res *Response) Finalize() Message {
	if !res.CanHaveBody() {
		res.body.Reset()
		res.headers.Del(HeaderContentType)
		res.headers.Del(HeaderContentLength)
	}

	return Message{
		Status:  res.status,
		Headers: res.headers.Clone(),
		Body:    res.body.String(),
	}
}

// Send finalizes the response and hands it to t. The body is written only
// when the request method is not HEAD; HEAD responses still carry the
// headers a GET would have produced.
func (res *Response) Send(t Transport) error {
	msg := res.Finalize()

	if err := t.WriteHead(msg.Status, msg.Headers); err != nil {
		return errors.Wrap(err, "send: write head")
	}

	if res.req.IsHead() || msg.Body == "" {
		return nil
	}

	if _, err := io.WriteString(t, msg.Body); err != nil {
		return errors.Wrap(err, "send: write body")
	}

	return nil
}
