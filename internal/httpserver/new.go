package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"fish-classification-website/internal/chat"
	"fish-classification-website/internal/classify"
	"fish-classification-website/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Static assets
	staticDir    string
	blockedAsset string

	// Domains
	chatUC     chat.UseCase
	classifyUC classify.UseCase
	uploadDir  string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	StaticDir    string
	BlockedAsset string
	UploadDir    string

	ChatUseCase     chat.UseCase
	ClassifyUseCase classify.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		staticDir:    cfg.StaticDir,
		blockedAsset: cfg.BlockedAsset,
		uploadDir:    cfg.UploadDir,
		chatUC:       cfg.ChatUseCase,
		classifyUC:   cfg.ClassifyUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.staticDir == "" {
		return errors.New("static dir is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat usecase is required")
	}
	if srv.classifyUC == nil {
		return errors.New("classify usecase is required")
	}
	return nil
}
