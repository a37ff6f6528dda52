package buffer

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffReader(t *testing.T) {
	b := []byte(`{"name":"respond","tags":["http","response"],"ok":true}`)

	t.Run("BufReader in one exec", func(t *testing.T) {
		reader, err := NewBuffReader(bytes.NewReader(b), len(b))
		require.NoError(t, err)

		r, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, b, r)
	})

	t.Run("BufReader in chunks", func(t *testing.T) {
		reader, err := NewBuffReader(iotest.OneByteReader(bytes.NewReader(b)), len(b))
		require.NoError(t, err)
		reader.SetChunkSize(3)

		r, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, b, r)
	})

	t.Run("EOF with the last bytes", func(t *testing.T) {
		reader, err := NewBuffReader(iotest.DataErrReader(bytes.NewReader(b)), len(b))
		require.NoError(t, err)

		r, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, b, r)
	})

	t.Run("Only reads the declared length", func(t *testing.T) {
		src := strings.NewReader("hello world")
		reader, err := NewBuffReader(src, 5)
		require.NoError(t, err)

		r, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, "hello", string(r))
		assert.Equal(t, 6, src.Len())
	})
}

func TestBuffReaderErrors(t *testing.T) {
	_, err := NewBuffReader(strings.NewReader("x"), 0)
	assert.ErrorIs(t, err, ErrNotHaveLen)

	var nilReader *BuffReader
	_, err = nilReader.Read()
	assert.ErrorIs(t, err, ErrReaderIsNil)

	reader, err := NewBuffReader(strings.NewReader("abcdef"), 6)
	require.NoError(t, err)
	reader.SetMaxSize(4)
	assert.True(t, reader.Exceeds())
	_, err = reader.Read()
	assert.ErrorIs(t, err, ErrBodyMaxSize)

	reader, err = NewBuffReader(strings.NewReader("abc"), 6)
	require.NoError(t, err)
	_, err = reader.Read()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
