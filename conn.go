package respond

import (
	"bytes"
	"crypto/tls"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Murilinho145SG/respond/buffer"
	"github.com/Murilinho145SG/respond/config"
	"github.com/Murilinho145SG/respond/httpio"
	"github.com/Murilinho145SG/respond/log"
)

// ErrHeadTooLarge is returned when the request head does not fit in the
// read buffer.
var ErrHeadTooLarge = errors.New("request head exceeds read buffer")

const statusHeaderFieldsTooLarge = 431

var headEnd = []byte("\r\n\r\n")

func serverConfig(server []config.Server) config.Server {
	if len(server) > 0 {
		return server[0].WithDefaults()
	}

	return config.Default()
}

// Run starts an HTTP server on addrs and handles incoming connections using the provided router.
func Run(addrs string, router *Router, server ...config.Server) error {
	listener, err := net.Listen("tcp", addrs)
	if err != nil {
		return errors.Wrap(err, "Run: net.Listen")
	}

	return Serve(listener, router, server...)
}

// RunTLS starts an HTTPS server on addrs using the provided TLS certificate and key.
func RunTLS(addrs string, router *Router, certStr, key string, server ...config.Server) error {
	cert, err := tls.LoadX509KeyPair(certStr, key)
	if err != nil {
		return errors.Wrap(err, "RunTLS: tls.LoadX509KeyPair")
	}

	cfg := &tls.Config{
		Certificates:     []tls.Certificate{cert},
		MinVersion:       tls.VersionTLS12,
		CurvePreferences: []tls.CurveID{tls.CurveP256, tls.X25519},
	}

	listener, err := net.Listen("tcp", addrs)
	if err != nil {
		return errors.Wrap(err, "RunTLS: net.Listen")
	}

	return Serve(tls.NewListener(listener, cfg), router, server...)
}

// Serve accepts connections on listener until it fails, handling each one
// in its own goroutine. The listener is closed on return.
func Serve(listener net.Listener, router *Router, server ...config.Server) error {
	defer listener.Close()

	cfg := serverConfig(server)
	log.Info("Listening on", listener.Addr().String())

	for {
		conn, err := listener.Accept()
		if err != nil {
			return errors.Wrap(err, "Serve: Accept")
		}

		go handleConn(conn, router, cfg)
	}
}

// handleConn serves a single request on conn and closes it.
func handleConn(conn net.Conn, router *Router, cfg config.Server) {
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(cfg.Deadline))

	id := uuid.NewString()
	logger := log.Logger().With().
		Str("request_id", id).
		Str("remote", conn.RemoteAddr().String()).
		Logger()

	req, err := parseConn(conn, cfg)
	if errors.Is(err, io.EOF) && req == nil {
		return
	}

	response := httpio.NewResponse(req)
	switch {
	case err != nil:
		logger.Debug().Err(err).Msg("rejecting request")
		reject(response, err)
	default:
		dispatch(router, response, req)
	}

	response.SetHeader("Connection", "close")
	if cfg.RequestIDHeader != "-" {
		response.SetHeader(cfg.RequestIDHeader, id)
	}

	if err := response.Send(httpio.NewWireTransport(conn)); err != nil {
		logger.Debug().Err(err).Msg("send failed")
		return
	}

	path := ""
	if req != nil {
		path = req.Path
	}
	logger.Debug().
		Str("path", path).
		Int("status", response.Status()).
		Int("bytes", len(response.Body())).
		Msg("response sent")
}

// dispatch runs the routed handler, answering 404 when none matches and
// 500 when the handler panics.
func dispatch(router *Router, response *httpio.Response, req *httpio.Request) {
	handler := router.ParseRoute(req)
	if handler == nil {
		fail(response, httpio.StatusNotFound)
		return
	}

	defer func() {
		if p := recover(); p != nil {
			log.Error("handler panic on", req.Path, p)
			fail(response, httpio.StatusInternalServerError)
		}
	}()

	handler(httpio.NewWriter(response), req)
}

// reject maps a request read error to a response status.
func reject(response *httpio.Response, err error) {
	switch {
	case errors.Is(err, buffer.ErrBodyMaxSize):
		fail(response, httpio.StatusPayloadTooLarge)
	case errors.Is(err, ErrHeadTooLarge):
		fail(response, statusHeaderFieldsTooLarge)
	default:
		fail(response, httpio.StatusBadRequest)
	}
}

// fail replaces the response with a plain status message.
func fail(response *httpio.Response, status int) {
	response.SetStatus(status)
	response.SetHeader(httpio.HeaderContentType, "text/plain")

	message, _ := httpio.MessageForCode(status)
	response.SetBody(message)
}

// parseConn reads the request head from conn and parses it. The body, if
// declared, is left on the connection behind req.Body.
//
// A request whose head parses but whose body is refused is returned along
// with the error, so the caller still knows its method.
func parseConn(conn net.Conn, cfg config.Server) (*httpio.Request, error) {
	buf := make([]byte, cfg.ReadBufferSize)
	read := 0

	for {
		if read == len(buf) {
			return nil, ErrHeadTooLarge
		}

		n, err := conn.Read(buf[read:])
		read += n

		if i := bytes.Index(buf[:read], headEnd); i >= 0 {
			req := httpio.NewRequest("")
			if err := req.Parser(buf[:i]); err != nil {
				return nil, err
			}

			rest := bytes.NewReader(buf[i+len(headEnd) : read])
			if err := req.SetBody(io.MultiReader(rest, conn), cfg.MaxBodySize); err != nil {
				return req, err
			}

			return req, nil
		}

		if err != nil {
			if errors.Is(err, io.EOF) && read == 0 {
				return nil, io.EOF
			}

			return nil, errors.Wrap(err, "parseConn: read")
		}
	}
}
