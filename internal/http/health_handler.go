package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"credit-score/internal/repository"
)

type infoResponse struct {
	Message       string            `json:"message"`
	Version       string            `json:"version"`
	Documentation string            `json:"documentation"`
	Endpoints     map[string]string `json:"endpoints"`
}

type healthResponse struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	TotalQueries int       `json:"totalQueries"`
	Version      string    `json:"version"`
}

// HealthHandler atiende los endpoints de metadata y salud del servicio.
type HealthHandler struct {
	logger  *zap.Logger
	history repository.HistoryRepository
}

// NewHealthHandler crea una instancia de HealthHandler.
func NewHealthHandler(logger *zap.Logger, history repository.HistoryRepository) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		history: history,
	}
}

// Root maneja GET /.
// El mapa de endpoints de esta misma respuesta es la documentación que
// el servicio ofrece, así que el link apunta aquí.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, infoResponse{
		Message:       "Welcome to the Credit Score API!",
		Version:       APIVersion,
		Documentation: "/",
		Endpoints: map[string]string{
			"calculateScore": "POST /score/calculate",
			"history":        "GET /score/history",
			"healthCheck":    "GET /health",
		},
	})
}

// Health maneja GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	total, err := h.history.Count(c.Request.Context())
	if err != nil {
		h.logger.Error("history count failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read history"})
		return
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC(),
		TotalQueries: total,
		Version:      APIVersion,
	})
}
