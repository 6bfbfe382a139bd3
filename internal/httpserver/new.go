package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "todochat/internal/chat/delivery/http"
	tgDelivery "todochat/internal/chat/delivery/telegram"
	"todochat/internal/middleware"
	"todochat/internal/model"
	taskHTTP "todochat/internal/task/delivery/http"
	"todochat/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Chat domain
	chatHandler     chatHTTP.Handler
	telegramHandler tgDelivery.Handler

	// Task domain
	taskHandler taskHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	// Chat domain
	ChatHandler     chatHTTP.Handler
	TelegramHandler tgDelivery.Handler

	// Task domain
	TaskHandler taskHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	environment := cfg.Environment
	if environment == "" {
		environment = string(model.EnvironmentDevelopment)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     environment,
		mw:              cfg.Middleware,
		chatHandler:     cfg.ChatHandler,
		telegramHandler: cfg.TelegramHandler,
		taskHandler:     cfg.TaskHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
