package deps

import (
	"log/slog"

	"github.com/bondsio/admin-console/config"
	"github.com/bondsio/admin-console/internal/http/bondsio"
	"github.com/bondsio/admin-console/internal/logging"
	"github.com/bondsio/admin-console/internal/session"
)

type Dependencies struct {
	Bondsio  *bondsio.Client
	Sessions session.Accessor
	Logger   *slog.Logger
}

func New(cfg *config.Config) *Dependencies {
	client := bondsio.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	sessions := session.NewCookieStore(cfg.SessionCookie, cfg.SessionTTL)
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	deps := Dependencies{
		Bondsio:  client,
		Sessions: sessions,
		Logger:   logger,
	}
	return &deps
}
