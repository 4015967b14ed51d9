package http

import (
	"net/http"

	"github.com/mauv0809/scoreboard/internal/config"
	"github.com/mauv0809/scoreboard/internal/session"
)

type Server struct {
	Boards         *session.Registry
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
