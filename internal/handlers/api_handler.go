package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-site/internal/httperr"
	ucBooking "github.com/BruksfildServices01/studio-site/internal/usecase/booking"
)

type APIHandler struct {
	listUC *ucBooking.ListAppointments
}

func NewAPIHandler(listUC *ucBooking.ListAppointments) *APIHandler {
	return &APIHandler{listUC: listUC}
}

// GET /api/appointments
func (h *APIHandler) ListAppointments(c *gin.Context) {
	items, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": items,
	})
}
