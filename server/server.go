package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-session-service/internal/config"
	"github.com/jrsteele09/go-session-service/sessions"
	"github.com/jrsteele09/go-session-service/token"
)

// Server exposes the session service over HTTP. It owns routing and the
// translation of service errors into status codes; all session semantics
// live in the sessions package.
type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	sessions *sessions.Service
	issuer   *token.Issuer
}

func New(cfg config.Config, sessionService *sessions.Service, issuer *token.Issuer) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		sessions: sessionService,
		issuer:   issuer,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) initRoutes() {
	s.RegisterRouteFunc(RouteLogin, s.LoginHandler())
	s.RegisterRouteFunc(RouteRefresh, s.RefreshHandler())
	s.RegisterRouteFunc(RouteRevoke, s.RequireAuth()(s.RevokeHandler()))
}

func (s *Server) logRoutes() {
	for _, route := range s.routes {
		log.Info().Str("route", route).Msg("registered route")
	}
}
