package handlers

import (
	"log/slog"
	"net/http"

	request "cfr_notifier/internal/adapter/http/dto/request"
	response "cfr_notifier/internal/adapter/http/dto/response"
	"cfr_notifier/internal/config"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the small endpoints the booking front-end calls on
// startup and for audit lines.
type ClientHandler struct {
	firebase response.FirebaseConfigResponse
	logger   *slog.Logger
}

func NewClientHandler(firebase config.FirebaseConfig, logger *slog.Logger) *ClientHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClientHandler{firebase: response.FromFirebaseConfig(firebase), logger: logger}
}

// FirebaseConfig godoc
// @Summary      Firebase web client configuration
// @Tags         client
// @Produce      json
// @Success      200  {object}  response.FirebaseConfigResponse
// @Router       /api/firebase-config [get]
func (h *ClientHandler) FirebaseConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.firebase)
}

// LogAction godoc
// @Summary      Record a client action
// @Tags         client
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ClientLogRequest  false  "Action and user"
// @Success      200      {object}  response.SuccessResponse
// @Router       /api/log [post]
func (h *ClientHandler) LogAction(c *gin.Context) {
	var payload request.ClientLogRequest
	// Malformed bodies fall back to the defaults.
	_ = c.ShouldBindJSON(&payload)

	h.logger.Info("[client][http] action",
		"action", payload.ResolveAction(),
		"user", payload.ResolveUser(),
		"remote_ip", c.ClientIP(),
	)

	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
