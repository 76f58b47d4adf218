package http

import (
	"net/http"
	"time"

	"github.com/bnema/mediaferry/internal/adapter/http/middleware"
	"github.com/bnema/mediaferry/internal/infrastructure/metrics"
	"github.com/bnema/mediaferry/internal/port"
)

type Server struct {
	mux        *http.ServeMux
	dispatcher Dispatcher
	inspector  port.QueueInspector
	now        func() time.Time
}

func NewServer(dispatcher Dispatcher, inspector port.QueueInspector) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		dispatcher: dispatcher,
		inspector:  inspector,
		now:        time.Now,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /webhook", Webhook(s.dispatcher, s.now))

	s.mux.HandleFunc("GET /queue/status", QueueStatus(s.inspector))
	s.mux.HandleFunc("POST /queue/clear", QueueClear(s.inspector))

	s.mux.HandleFunc("GET /healthz", Health())
	s.mux.Handle("GET /metrics", metrics.Handler())
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.Recover(middleware.RequestLog(middleware.SecurityHeaders(s.mux))).ServeHTTP(w, r)
}
