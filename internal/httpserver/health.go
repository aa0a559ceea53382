package httpserver

import (
	"net/http"

	pkgErrors "admin-console/pkg/errors"
	"admin-console/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Admin console API"
	HealthVersion = "1.0.0"
	ServiceName   = "admin-console"
)

var errNoEntities = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "no console entities registered")

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once at least one entity page can be served.
// @Summary Readiness Check
// @Description Ready when the console has entities to serve
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "No entities registered"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	infos := srv.registry.Entities()
	if len(infos) == 0 {
		response.Error(c, errNoEntities)
		return
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	body := srv.status("ready")
	body["entities"] = names
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
