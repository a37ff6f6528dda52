package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults used for zero-valued fields.
const (
	DefaultAddress         = "0.0.0.0:8080"
	DefaultReadBufferSize  = 8192
	DefaultMaxBodySize     = 10 << 20
	DefaultDeadline        = 10 * time.Second
	DefaultRequestIDHeader = "X-Request-Id"
)

// TLS holds the certificate pair for RunTLS. Both files must be set together.
type TLS struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// Server is the configuration of the HTTP server.
type Server struct {
	Address string `yaml:"address"`
	TLS     TLS    `yaml:"tls"`

	// ReadBufferSize is the size of the buffer the request head is read into.
	ReadBufferSize int `yaml:"read_buffer_size"`

	// MaxBodySize caps the declared Content-Length of a request.
	MaxBodySize int `yaml:"max_body_size"`

	// Deadline bounds the whole exchange on one connection.
	Deadline time.Duration `yaml:"deadline"`

	// RequestIDHeader names the response header carrying the request id.
	// "-" disables it.
	RequestIDHeader string `yaml:"request_id_header"`

	Debug bool `yaml:"debug"`
}

func Default() Server {
	return Server{
		Address:         DefaultAddress,
		ReadBufferSize:  DefaultReadBufferSize,
		MaxBodySize:     DefaultMaxBodySize,
		Deadline:        DefaultDeadline,
		RequestIDHeader: DefaultRequestIDHeader,
	}
}

// WithDefaults fills zero fields from Default.
func (s Server) WithDefaults() Server {
	d := Default()
	if s.Address == "" {
		s.Address = d.Address
	}
	if s.ReadBufferSize <= 0 {
		s.ReadBufferSize = d.ReadBufferSize
	}
	if s.MaxBodySize <= 0 {
		s.MaxBodySize = d.MaxBodySize
	}
	if s.Deadline <= 0 {
		s.Deadline = d.Deadline
	}
	if s.RequestIDHeader == "" {
		s.RequestIDHeader = d.RequestIDHeader
	}

	return s
}

func (s Server) Validate() error {
	if (s.TLS.CertFile == "") != (s.TLS.KeyFile == "") {
		return errors.New("tls: cert_file and key_file must be set together")
	}

	if s.ReadBufferSize < 0 || s.MaxBodySize < 0 || s.Deadline < 0 {
		return errors.New("sizes and deadline must not be negative")
	}

	return nil
}

// Load reads a YAML file, applies defaults and validates the result.
func Load(fileName string) (Server, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return Server{}, errors.Wrap(err, "Load: os.Open")
	}
	defer f.Close()

	var cf Server
	if err := yaml.NewDecoder(f).Decode(&cf); err != nil {
		return Server{}, errors.Wrap(err, "Load: decoder.Decode")
	}

	cf = cf.WithDefaults()
	if err := cf.Validate(); err != nil {
		return Server{}, errors.Wrap(err, "Load")
	}

	return cf, nil
}

// InitAndCreate writes the default configuration to fileName.
func InitAndCreate(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "InitAndCreate: os.Create")
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()

	cf := Default()
	if err := encoder.Encode(&cf); err != nil {
		return errors.Wrap(err, "InitAndCreate: encoder.Encode")
	}

	return nil
}
