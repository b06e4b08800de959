package booking

import (
	"context"

	"github.com/BruksfildServices01/studio-site/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		id uint,
		status Status,
	) (int64, error)

	// -------- Contact --------
	CreateContactMessage(
		ctx context.Context,
		msg *models.ContactMessage,
	) error

	ListContactMessages(
		ctx context.Context,
	) ([]models.ContactMessage, error)

	// -------- Admin --------
	GetAdminByUsername(
		ctx context.Context,
		username string,
	) (*models.AdminUser, error)
}
