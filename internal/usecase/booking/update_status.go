package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-site/internal/audit"
	domain "github.com/BruksfildServices01/studio-site/internal/domain/booking"
	"github.com/BruksfildServices01/studio-site/internal/mailer"
)

type UpdateAppointmentStatus struct {
	repo     domain.Repository
	notifier mailer.Notifier
	audit    *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	notifier mailer.Notifier,
	auditDispatcher *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		notifier: notifier,
		audit:    auditDispatcher,
	}
}

// Execute aplica o novo status e devolve se o agendamento existia.
// Id inexistente não é erro: zero linhas mudam, nenhum e-mail sai.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	actor string,
	appointmentID uint,
	status domain.Status,
) (bool, error) {

	if err := domain.CanAssign(status); err != nil {
		return false, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	rows, err := uc.repo.UpdateAppointmentStatus(ctx, appointmentID, status)
	if err != nil {
		return false, err
	}

	if ap == nil || rows == 0 {
		return false, nil
	}

	// só notifica quem existia na hora da carga
	uc.notifier.Enqueue(mailer.AppointmentStatusChanged(ap, string(status)))

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"from": ap.Status,
			"to":   string(status),
		},
	})

	return true, nil
}
