package handlers

import (
	"net/http"

	request "github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/dto/request"
	response "github.com/Fanelemenzi/Carfinity-sub000/internal/adapter/http/dto/response"
	"github.com/Fanelemenzi/Carfinity-sub000/internal/usecase"
	"github.com/Fanelemenzi/Carfinity-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCleanupPayload = pkg.NewDomainErrorSimple("INVALID_CLEANUP_INPUT", "Invalid cleanup payload", http.StatusBadRequest)

// MaintenanceHandler exposes the expiry/cleanup sweep over HTTP so
// operators can trigger it outside the scheduled run.
type MaintenanceHandler struct {
	cleanup usecase.ICleanupUseCase
}

func NewMaintenanceHandler(cleanup usecase.ICleanupUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{cleanup: cleanup}
}

// RunCleanup expires overdue quote requests and purges long-expired ones
// together with their quotes.
func (h *MaintenanceHandler) RunCleanup(c *gin.Context) {
	payload := request.CleanupRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidCleanupPayload.HTTPStatus, errInvalidCleanupPayload.ToHTTPError())
			return
		}
	}

	stats, err := h.cleanup.Cleanup(c.Request.Context(), payload.DaysOld)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCleanupStats(stats))
}
