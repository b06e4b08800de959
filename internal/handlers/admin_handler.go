package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-site/internal/config"
	domain "github.com/BruksfildServices01/studio-site/internal/domain/booking"
	"github.com/BruksfildServices01/studio-site/internal/flash"
	"github.com/BruksfildServices01/studio-site/internal/httperr"
	"github.com/BruksfildServices01/studio-site/internal/middleware"
	"github.com/BruksfildServices01/studio-site/internal/models"
	ucBooking "github.com/BruksfildServices01/studio-site/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	repo     domain.Repository
	updateUC *ucBooking.UpdateAppointmentStatus
	flash    *flash.Store
	config   *config.Config
}

func NewAdminHandler(
	repo domain.Repository,
	updateUC *ucBooking.UpdateAppointmentStatus,
	flashStore *flash.Store,
	cfg *config.Config,
) *AdminHandler {
	return &AdminHandler{
		repo:     repo,
		updateUC: updateUC,
		flash:    flashStore,
		config:   cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type StatusForm struct {
	Status string `form:"status" binding:"required"`
}

// ======================================================
// LOGIN
// ======================================================

func (h *AdminHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Flashes": h.flash.Pop(c),
	})
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginForm
	if err := c.ShouldBind(&req); err != nil {
		h.flash.Danger(c, "Informe usuário e senha.")
		c.HTML(http.StatusBadRequest, "admin_login.html", gin.H{
			"Flashes": h.flash.Pop(c),
		})
		return
	}

	admin, err := h.repo.GetAdminByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.renderLoginFailure(c)
			return
		}
		h.flash.Danger(c, "Erro interno. Tente de novo.")
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
			"Flashes": h.flash.Pop(c),
		})
		return
	}

	// bcrypt compara em tempo constante
	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		h.renderLoginFailure(c)
		return
	}

	token, err := h.generateSessionToken(admin)
	if err != nil {
		h.flash.Danger(c, "Erro interno. Tente de novo.")
		c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
			"Flashes": h.flash.Pop(c),
		})
		return
	}

	c.SetCookie(
		middleware.SessionCookie,
		token,
		int((24 * time.Hour).Seconds()),
		"/",
		"",
		false,
		true,
	)

	h.flash.Success(c, "Login realizado com sucesso.")
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// falha de login não redireciona: re-renderiza o próprio formulário
func (h *AdminHandler) renderLoginFailure(c *gin.Context) {
	h.flash.Danger(c, "Usuário ou senha inválidos.")
	c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
		"Flashes": h.flash.Pop(c),
	})
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	appointments, err := h.repo.ListAppointments(ctx)
	if err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao carregar agendamentos.")
		return
	}

	contacts, err := h.repo.ListContactMessages(ctx)
	if err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao carregar mensagens.")
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Flashes":      h.flash.Pop(c),
		"Appointments": appointments,
		"Contacts":     contacts,
	})
}

// ======================================================
// APPOINTMENT DETAIL + STATUS UPDATE
// ======================================================

func (h *AdminHandler) AppointmentDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	// id inexistente renderiza com registro nulo; o template lida com isso
	var ap *models.Appointment
	if found, err := h.repo.GetAppointment(c.Request.Context(), uint(id)); err == nil {
		ap = found
	}

	c.HTML(http.StatusOK, "admin_appointment.html", gin.H{
		"Flashes":     h.flash.Pop(c),
		"Appointment": ap,
	})
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var req StatusForm
	if err := c.ShouldBind(&req); err != nil {
		h.flash.Danger(c, "Selecione um status.")
		c.Redirect(http.StatusSeeOther, "/admin/appointment/"+c.Param("id"))
		return
	}

	actor := c.GetString(middleware.ContextAdminUser)

	_, err = h.updateUC.Execute(
		c.Request.Context(),
		actor,
		uint(id),
		domain.Status(req.Status),
	)

	if err != nil {
		if httperr.IsBusiness(err, "invalid_status") {
			h.flash.Danger(c, "Status desconhecido.")
			c.Redirect(http.StatusSeeOther, "/admin/appointment/"+c.Param("id"))
			return
		}

		h.flash.Danger(c, "Erro ao atualizar o agendamento.")
		c.Redirect(http.StatusSeeOther, "/admin/dashboard")
		return
	}

	h.flash.Success(c, "Status atualizado com sucesso.")
	c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// ======================================================
// SESSION TOKEN
// ======================================================

func (h *AdminHandler) generateSessionToken(admin *models.AdminUser) (string, error) {
	claims := jwt.MapClaims{
		"sub": admin.Username,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.SessionSecret))
}
