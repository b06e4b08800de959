package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-site/internal/flash"
	"github.com/BruksfildServices01/studio-site/internal/httperr"
	ucBooking "github.com/BruksfildServices01/studio-site/internal/usecase/booking"
)

type ContactHandler struct {
	createUC *ucBooking.CreateContact
	flash    *flash.Store
}

func NewContactHandler(
	createUC *ucBooking.CreateContact,
	flashStore *flash.Store,
) *ContactHandler {
	return &ContactHandler{
		createUC: createUC,
		flash:    flashStore,
	}
}

type ContactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Subject string `form:"subject" binding:"required"`
	Message string `form:"message" binding:"required"`
}

func (h *ContactHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Flashes": h.flash.Pop(c),
	})
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactForm
	if err := c.ShouldBind(&req); err != nil {
		h.flash.Danger(c, "Preencha todos os campos obrigatórios.")
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"Flashes": h.flash.Pop(c),
		})
		return
	}

	_, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateContactInput{
			Name:    req.Name,
			Email:   req.Email,
			Subject: req.Subject,
			Message: req.Message,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "invalid_email") {
			h.flash.Danger(c, "E-mail inválido.")
			c.HTML(http.StatusBadRequest, "contact.html", gin.H{
				"Flashes": h.flash.Pop(c),
			})
			return
		}

		h.flash.Danger(c, "Não foi possível enviar a mensagem. Tente de novo.")
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"Flashes": h.flash.Pop(c),
		})
		return
	}

	h.flash.Success(c, "Mensagem enviada! Retornaremos em breve.")
	c.Redirect(http.StatusSeeOther, "/contact")
}
