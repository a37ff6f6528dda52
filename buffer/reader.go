// Package buffer reads fixed-length request bodies off a connection.
package buffer

import (
	"errors"
	"io"
)

// Defaults applied by NewBuffReader.
const (
	DefaultMaxSize   = 10 << 20
	DefaultChunkSize = 4096
)

var (
	// ErrNotHaveLen is returned when the declared length is zero or negative.
	ErrNotHaveLen = errors.New("invalid length")

	// ErrReaderIsNil is returned when reading from a nil BuffReader or reader.
	ErrReaderIsNil = errors.New("reader is nil")

	// ErrBodyMaxSize is returned when the declared length exceeds the limit.
	ErrBodyMaxSize = errors.New("body exceeds max allowed size")
)

// BuffReader reads exactly a declared number of bytes from an io.Reader,
// chunk by chunk, refusing lengths above a configurable maximum.
type BuffReader struct {
	Reader io.Reader

	chunkSize int
	len       int
	maxSize   int
}

// NewBuffReader creates a reader for length bytes with DefaultMaxSize and
// DefaultChunkSize.
func NewBuffReader(reader io.Reader, length int) (*BuffReader, error) {
	if length <= 0 {
		return nil, ErrNotHaveLen
	}

	return &BuffReader{
		Reader:    reader,
		len:       length,
		maxSize:   DefaultMaxSize,
		chunkSize: DefaultChunkSize,
	}, nil
}

// SetMaxSize changes the largest length Read accepts. Non-positive sizes are
// ignored.
func (br *BuffReader) SetMaxSize(size int) {
	if size > 0 {
		br.maxSize = size
	}
}

// SetChunkSize changes how many bytes a single underlying Read may request.
func (br *BuffReader) SetChunkSize(size int) {
	if size > 0 {
		br.chunkSize = size
	}
}

// Len is the declared body length.
func (br *BuffReader) Len() int {
	return br.len
}

// Exceeds reports whether the declared length is above the maximum size.
func (br *BuffReader) Exceeds() bool {
	return br.len > br.maxSize
}

// Read consumes and returns the whole body.
//
// A source that ends before the declared length yields io.ErrUnexpectedEOF.
func (br *BuffReader) Read() ([]byte, error) {
	if br == nil || br.Reader == nil {
		return nil, ErrReaderIsNil
	}

	if br.Exceeds() {
		return nil, ErrBodyMaxSize
	}

	buf := make([]byte, br.len)
	read := 0
	for read < br.len {
		end := min(read+br.chunkSize, br.len)

		n, err := br.Reader.Read(buf[read:end])
		read += n
		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			if read < br.len {
				return nil, io.ErrUnexpectedEOF
			}
			break
		}

		return nil, err
	}

	return buf, nil
}
