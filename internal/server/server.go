package server

import (
	"github.com/gin-gonic/gin"

	"membuf/internal/engine"
)

type Server struct {
	router *gin.Engine
	engine *engine.Engine
}

// New creates a new server instance
func New(e *engine.Engine) *Server {
	s := &Server{
		engine: e,
		router: gin.Default(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealthCheck())
	s.router.PUT("/v1/keys", s.handlePutKey())
	s.router.GET("/v1/keys/:key", s.handleGetKey())
	s.router.GET("/v1/stats", s.handleStats())
}

// Router exposes the route table for embedding and tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP listener on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
