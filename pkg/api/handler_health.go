package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rootline-ai/rootline/pkg/database"
	"github.com/rootline-ai/rootline/pkg/version"
)

// health reports liveness plus pool and database status. Unreachable
// database means 503; running without one is healthy by definition.
func (s *Server) health(c *gin.Context) {
	resp := gin.H{
		"status":  "healthy",
		"version": version.Full(),
		"pool":    s.deps.Pool.Health(),
	}

	if s.deps.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(ctx, s.deps.DB.DB())
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "unhealthy"
			resp["error"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
