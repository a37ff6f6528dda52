package httpio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a Transport that keeps what it was handed.
type recorder struct {
	heads   int
	status  int
	headers *Headers
	body    bytes.Buffer
	headErr error
}

func (r *recorder) WriteHead(status int, headers *Headers) error {
	if r.headErr != nil {
		return r.headErr
	}

	r.heads++
	r.status = status
	r.headers = headers
	return nil
}

func (r *recorder) Write(p []byte) (int, error) {
	return r.body.Write(p)
}

func TestNewResponse(t *testing.T) {
	r := NewResponse(NewRequest(MethodGet))
	assert.Equal(t, 200, r.Status())
	assert.Equal(t, map[string]string{"Content-Type": "text/html"}, r.Headers())
	assert.Equal(t, "", r.Body())
}

func TestResponseStatus(t *testing.T) {
	t.Run("valid codes", func(t *testing.T) {
		r := NewResponse(nil)
		for code := 100; code <= 599; code++ {
			got, err := r.SetStatus(code)
			require.NoError(t, err)
			assert.Equal(t, code, got)
			assert.Equal(t, code, r.Status())
		}
	})

	t.Run("invalid codes", func(t *testing.T) {
		r := NewResponse(nil)
		_, err := r.SetStatus(201)
		require.NoError(t, err)

		for _, code := range []int{99, 600, -1, 0, 700} {
			_, err := r.SetStatus(code)
			assert.ErrorIs(t, err, ErrInvalidArgument, code)
			assert.Equal(t, 201, r.Status())
		}
	})

	t.Run("unregistered code", func(t *testing.T) {
		r := NewResponse(nil)
		_, err := r.SetStatus(420)
		require.NoError(t, err)

		_, ok := MessageForCode(r.Status())
		assert.False(t, ok)
	})
}

func TestResponseHeaders(t *testing.T) {
	r := NewResponse(nil)
	r.SetHeader("Content-Type", "application/json")

	v, ok := r.Header("Content-Type")
	assert.True(t, ok)
	assert.Equal(t, "application/json", v)
	assert.Equal(t, map[string]string{"Content-Type": "application/json"}, r.Headers())

	_, ok = r.Header("nonexistent")
	assert.False(t, ok)

	snapshot := r.Headers()
	snapshot["X-Injected"] = "1"
	_, ok = r.Header("X-Injected")
	assert.False(t, ok)

	r.DelHeader("Content-Type")
	assert.Empty(t, r.Headers())
}

func contentLength(t *testing.T, r *Response) string {
	t.Helper()

	v, ok := r.Header("Content-Length")
	require.True(t, ok)
	return v
}

func TestBody(t *testing.T) {
	r := NewResponse(nil)

	r.SetBody("Foo bar")
	assert.Equal(t, "Foo bar", r.Body())
	assert.Equal(t, "7", contentLength(t, r))

	r.SetBody("abc123")
	assert.Equal(t, "abc123", r.Body())
	assert.Equal(t, "6", contentLength(t, r))

	r.AppendBody("xyz")
	assert.Equal(t, "abc123xyz", r.Body())
	assert.Equal(t, "9", contentLength(t, r))
}

func TestBodyLengthIsBytes(t *testing.T) {
	r := NewResponse(nil)
	r.SetBody("héllo")
	assert.Equal(t, "6", contentLength(t, r))

	r.SetBody("")
	assert.Equal(t, "0", contentLength(t, r))
}

func TestFinalize(t *testing.T) {
	t.Run("ok keeps body", func(t *testing.T) {
		r := NewResponse(nil)
		r.SetBody("body1")

		msg := r.Finalize()
		assert.Equal(t, "body1", r.Body())
		assert.Equal(t, "5", contentLength(t, r))
		assert.Equal(t, 200, msg.Status)
		assert.Equal(t, "body1", msg.Body)
		assert.Equal(t, []string{"Content-Type", "Content-Length"}, msg.Headers.Keys())
	})

	for _, code := range []int{204, 304, 100} {
		t.Run(ReasonPhrase(code), func(t *testing.T) {
			r := NewResponse(nil)
			r.SetBody("body2")
			r.SetHeader("X-Kept", "yes")
			_, err := r.SetStatus(code)
			require.NoError(t, err)

			msg := r.Finalize()
			assert.Equal(t, "", r.Body())
			_, ok := r.Header("Content-Type")
			assert.False(t, ok)
			_, ok = r.Header("Content-Length")
			assert.False(t, ok)
			assert.Equal(t, map[string]string{"X-Kept": "yes"}, msg.Headers.Map())

			assert.Equal(t, msg, r.Finalize())
		})
	}

	t.Run("mutations after finalize", func(t *testing.T) {
		r := NewResponse(nil)
		_, err := r.SetStatus(204)
		require.NoError(t, err)
		r.Finalize()

		_, err = r.SetStatus(200)
		require.NoError(t, err)
		r.SetBody("again")

		msg := r.Finalize()
		assert.Equal(t, "again", msg.Body)
		assert.Equal(t, "5", msg.Headers.Get("Content-Length"))
	})
}

func TestCanHaveBody(t *testing.T) {
	r := NewResponse(nil)

	_, _ = r.SetStatus(100)
	assert.False(t, r.CanHaveBody())

	_, _ = r.SetStatus(200)
	assert.True(t, r.CanHaveBody())

	_, _ = r.SetStatus(204)
	assert.False(t, r.CanHaveBody())

	_, _ = r.SetStatus(304)
	assert.False(t, r.CanHaveBody())
}

func TestSendResponse(t *testing.T) {
	r := NewResponse(NewRequest(MethodGet))
	r.SetBody("foo bar")

	var rec recorder
	require.NoError(t, r.Send(&rec))
	assert.Equal(t, "foo bar", rec.body.String())
	assert.Equal(t, 200, rec.status)
	assert.Equal(t, "7", rec.headers.Get("Content-Length"))

	require.NoError(t, r.Send(&rec))
	assert.Equal(t, 2, rec.heads)
	assert.Equal(t, "foo barfoo bar", rec.body.String())
}

func TestResponseBodyIfHeadRequest(t *testing.T) {
	res := NewResponse(NewRequest(MethodHead))
	res.SetBody("This is a test body")

	var rec recorder
	require.NoError(t, res.Send(&rec))
	assert.Equal(t, 0, rec.body.Len())

	ct, _ := res.Header("Content-Type")
	assert.Equal(t, "text/html", ct)
	assert.Equal(t, "19", contentLength(t, res))
	assert.Equal(t, "19", rec.headers.Get("Content-Length"))
}

func TestSendNoContent(t *testing.T) {
	r := NewResponse(nil)
	r.SetBody("dropped")
	_, err := r.SetStatus(StatusNoContent)
	require.NoError(t, err)

	var rec recorder
	require.NoError(t, r.Send(&rec))
	assert.Equal(t, 204, rec.status)
	assert.Equal(t, 0, rec.body.Len())
	assert.Equal(t, 0, rec.headers.Len())
}

func TestSendTransportError(t *testing.T) {
	boom := errors.New("broken pipe")
	r := NewResponse(nil)
	r.SetBody("x")

	err := r.Send(&recorder{headErr: boom})
	assert.ErrorIs(t, err, boom)
}
