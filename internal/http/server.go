package http

import (
	"net/http"

	"github.com/mauv0809/scoreboard/internal/config"
	"github.com/mauv0809/scoreboard/internal/http/handlers"
	"github.com/mauv0809/scoreboard/internal/session"
)

func NewServer(boards *session.Registry, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Boards:         boards,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /boards", Chain(handlers.ListBoardsHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("GET /boards/{board}", Chain(handlers.GetBoardHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("POST /boards/{board}/players", Chain(handlers.AddPlayerHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("POST /boards/{board}/players/{index}/rename", Chain(handlers.RenamePlayerHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("POST /boards/{board}/players/{index}/score", Chain(handlers.AdjustScoreHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("POST /boards/{board}/reset", Chain(handlers.ResetHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("POST /boards/{board}/undo", Chain(handlers.UndoHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("POST /boards/{board}/redo", Chain(handlers.RedoHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("POST /boards/{board}/commands", Chain(handlers.CommandHandler(s.Boards), paramsMiddleware))
	s.Router.Handle("GET /{$}", http.RedirectHandler("/boards/"+s.Cfg.DefaultBoard, http.StatusFound))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
