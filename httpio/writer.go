package httpio

import (
	"encoding/json"

	"github.com/Murilinho145SG/respond/log"
)

// Writer is the handler-facing side of a Response.
// It encapsulates a reference to a Response and provides methods to manipulate headers and the response body.
type Writer struct {
	response    *Response
	wroteHeader bool
}

// NewWriter creates a Writer for response.
func NewWriter(response *Response) *Writer {
	return &Writer{
		response: response,
	}
}

// Response returns the Response being written.
func (w *Writer) Response() *Response {
	return w.response
}

// Headers returns the ordered headers of the Response.
func (w *Writer) Headers() *Headers {
	return w.response.HeaderSet()
}

// WriteHeader sets the HTTP status code for the response.
// Setting it more than once is allowed but logged, since the last call wins.
func (w *Writer) WriteHeader(statusCode int) error {
	if w.wroteHeader {
		log.WarnSkip(1, "This is superfluous. WriteHeader was already called, overriding", w.response.Status())
	}

	if _, err := w.response.SetStatus(statusCode); err != nil {
		return err
	}

	w.wroteHeader = true
	return nil
}

// Write appends data to the response body. It never fails.
func (w *Writer) Write(value []byte) (int, error) {
	w.response.AppendBody(string(value))
	return len(value), nil
}

func (w *Writer) WriteString(value string) (int, error) {
	w.response.AppendBody(value)
	return len(value), nil
}

// WriteWR is a convenience method to set the status code and write the body in one call.
func (w *Writer) WriteWR(value []byte, statusCode int) error {
	if err := w.WriteHeader(statusCode); err != nil {
		return err
	}

	_, err := w.Write(value)
	return err
}

// WriteJson serializes value to JSON, replaces the body with it and sets
// Content-Type to application/json. With indent the output is indented
// with one space per level.
func (w *Writer) WriteJson(value any, indent bool) error {
	var (
		b   []byte
		err error
	)
	if indent {
		b, err = json.MarshalIndent(value, "", " ")
	} else {
		b, err = json.Marshal(value)
	}
	if err != nil {
		return err
	}

	w.response.SetHeader(HeaderContentType, "application/json")
	w.response.SetBody(string(b))
	return nil
}
