package httpio

import (
	"bytes"
	"io"
	"strconv"

	"github.com/Murilinho145SG/respond/log"
)

// Transport receives a finalized response. WriteHead is called once per
// Send with the status and headers; the body, if any, follows through Write.
type Transport interface {
	WriteHead(status int, headers *Headers) error
	io.Writer
}

// WireTransport renders responses as HTTP/1.1 onto an io.Writer.
type WireTransport struct {
	w io.Writer
}

func NewWireTransport(w io.Writer) *WireTransport {
	return &WireTransport{w: w}
}

// WriteHead writes the status line, the headers in order and the blank line
// in a single Write. Unregistered codes get an empty reason phrase.
func (t *WireTransport) WriteHead(status int, headers *Headers) error {
	var buf bytes.Buffer
	buf.WriteString("HTTP/1.1 ")
	buf.WriteString(strconv.Itoa(status))
	buf.WriteByte(' ')
	buf.WriteString(ReasonPhrase(status))
	buf.WriteString("\r\n")

	if headers.Len() == 0 {
		log.Warn("Headers is Empty")
	}

	for k, v := range headers.All() {
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(v)
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")

	if message, ok := MessageForCode(status); ok {
		log.Debug("Sending", message)
	} else {
		log.Debug("Sending unregistered status", status)
	}

	_, err := t.w.Write(buf.Bytes())
	return err
}

func (t *WireTransport) Write(p []byte) (int, error) {
	return t.w.Write(p)
}
