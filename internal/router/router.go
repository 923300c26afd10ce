package router

import (
	"github.com/gin-gonic/gin"

	"membuf/internal/engine"
	"membuf/internal/server"
)

// New returns the route table of the demo HTTP service, ready for
// Run or for mounting under an httptest server.
func New(e *engine.Engine) *gin.Engine {
	return server.New(e).Router()
}
