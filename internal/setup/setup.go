package setup

import (
	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/handler"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/service"
	"github.com/diskusi-dev/diskusi/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

// SetupDependencies wires every component with explicit constructor
// injection; the single pg.Storage implements all storage interfaces.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.AccessTokenTTL())

	thread := service.NewThread(storage, storage, storage, storage)
	comment := service.NewComment(storage, storage, storage)
	reply := service.NewReply(storage, storage, storage)
	auth := service.NewAuth(storage, tokens)

	h := handler.New(thread, comment, reply, auth)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokens),
		Config:         cfg,
	}, nil
}
