package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/studio-site/internal/domain/booking"
	"github.com/BruksfildServices01/studio-site/internal/httperr"
	"github.com/BruksfildServices01/studio-site/internal/mailer"
	"github.com/BruksfildServices01/studio-site/internal/models"
	"github.com/BruksfildServices01/studio-site/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Name  string
	Email string
	Phone string

	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	MeetingType string

	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo       domain.Repository
	notifier   mailer.Notifier
	adminEmail string
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier mailer.Notifier,
	adminEmail string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:       repo,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Validação de formato
	// --------------------------------------------------
	if !validators.HasEmailShape(in.Email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Criação (status centralizado no domínio)
	// --------------------------------------------------
	ap := &models.Appointment{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Date:        in.Date,
		Time:        in.Time,
		MeetingType: in.MeetingType,
		Message:     in.Message,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Notificações pós-commit (best-effort)
	// --------------------------------------------------
	uc.notifier.Enqueue(mailer.AppointmentConfirmation(ap))
	uc.notifier.Enqueue(mailer.AppointmentAdminAlert(uc.adminEmail, ap))

	return ap, nil
}
