package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/pkg/response"
)

type ackReader interface {
	Get(actorID, id string) (*models.Ack, error)
}

// AckHandler exposes the status of simulated writes.
type AckHandler struct {
	service ackReader
}

// NewAckHandler constructs an AckHandler.
func NewAckHandler(svc ackReader) *AckHandler {
	return &AckHandler{service: svc}
}

// Get godoc
// @Summary Acknowledgement status
// @Description Poll a simulated write submitted by the current user
// @Tags Acknowledgements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ack ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /acks/{id} [get]
func (h *AckHandler) Get(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	ack, err := h.service.Get(session.UserID(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ack)
}
