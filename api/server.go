package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
)

type Config struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8000"`
	AllowOrigins    []string      `envconfig:"ALLOW_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type Chatter interface {
	Chat(ctx context.Context, history []contractx.Turn) (string, error)
}

// Ledger is the read side of orders and service requests.
type Ledger interface {
	ListOrders(ctx context.Context) ([]storex.Order, error)
	ListServiceRequests(ctx context.Context) ([]storex.ServiceRequest, error)
}

type Server struct {
	cfg    Config
	echo   *echo.Echo
	chat   Chatter
	ledger Ledger
}

func New(cfg Config, chat Chatter, ledger Ledger) (*Server, error) {
	if chat == nil {
		return nil, errors.New("chat orchestrator is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		cfg.Addr = ":8000"
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(contextLogger)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Ctx(c.Request().Context()).Error().Err(err).Bytes("stack", stack).Msg("panic recovered")
			return err
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			var ev *zerolog.Event
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			} else {
				ev = log.Info()
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("http request")
			return nil
		},
	}))

	s := &Server{
		cfg:    cfg,
		echo:   e,
		chat:   chat,
		ledger: ledger,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.echo.POST("/chat", s.handleChat)
	s.echo.GET("/orders", s.handleListOrders)
	s.echo.GET("/requests", s.handleListRequests)
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s *Server) Start() error {
	log.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
	if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
		defer cancel()
	}
	return s.echo.Shutdown(ctx)
}

// contextLogger puts a request-scoped logger into the request context so
// log.Ctx works below the HTTP layer.
func contextLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := log.Logger.With().
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Logger()
		c.SetRequest(req.WithContext(logger.WithContext(req.Context())))
		return next(c)
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			detail = msg
		} else {
			detail = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		log.Ctx(c.Request().Context()).Error().Err(err).Int("status", code).Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Detail: detail})
	}
	if err != nil {
		log.Ctx(c.Request().Context()).Error().Err(err).Msg("write error response failed")
	}
}
