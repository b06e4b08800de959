package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-site/internal/flash"
	"github.com/BruksfildServices01/studio-site/internal/httperr"
	ucBooking "github.com/BruksfildServices01/studio-site/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucBooking.CreateAppointment
	flash    *flash.Store
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	flashStore *flash.Store,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		flash:    flashStore,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentForm struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required"`
	Phone       string `form:"phone" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Time        string `form:"time" binding:"required"`
	MeetingType string `form:"meeting_type" binding:"required"`
	Message     string `form:"message"`
}

// ======================================================
// GET /appointment
// ======================================================

func (h *AppointmentHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "appointment.html", gin.H{
		"Flashes": h.flash.Pop(c),
	})
}

// ======================================================
// POST /appointment
// ======================================================

func (h *AppointmentHandler) Submit(c *gin.Context) {
	var req AppointmentForm
	if err := c.ShouldBind(&req); err != nil {
		h.flash.Danger(c, "Preencha todos os campos obrigatórios.")
		c.HTML(http.StatusBadRequest, "appointment.html", gin.H{
			"Flashes": h.flash.Pop(c),
		})
		return
	}

	_, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateAppointmentInput{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			Date:        req.Date,
			Time:        req.Time,
			MeetingType: req.MeetingType,
			Message:     req.Message,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_email"):
			h.flash.Danger(c, "E-mail inválido.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			h.flash.Danger(c, "Data ou horário inválido.")
		default:
			h.flash.Danger(c, "Não foi possível registrar o agendamento. Tente de novo.")
			c.HTML(http.StatusInternalServerError, "appointment.html", gin.H{
				"Flashes": h.flash.Pop(c),
			})
			return
		}

		c.HTML(http.StatusBadRequest, "appointment.html", gin.H{
			"Flashes": h.flash.Pop(c),
		})
		return
	}

	// redirect-after-post: refresh não reenvia o formulário
	h.flash.Success(c, "Agendamento enviado! Você receberá a confirmação por e-mail.")
	c.Redirect(http.StatusSeeOther, "/appointment")
}
