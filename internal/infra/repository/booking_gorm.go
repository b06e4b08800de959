package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/studio-site/internal/domain/booking"
	"github.com/BruksfildServices01/studio-site/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date DESC, time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// UpdateAppointmentStatus devolve quantas linhas mudaram: zero quando o
// id não existe, sem erro — quem chama decide o que fazer com isso.
func (r *BookingGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status))

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Contact
// --------------------------------------------------

func (r *BookingGormRepository) CreateContactMessage(
	ctx context.Context,
	msg *models.ContactMessage,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *BookingGormRepository) ListContactMessages(
	ctx context.Context,
) ([]models.ContactMessage, error) {

	var msgs []models.ContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	return msgs, nil
}

// --------------------------------------------------
// Admin
// --------------------------------------------------

func (r *BookingGormRepository) GetAdminByUsername(
	ctx context.Context,
	username string,
) (*models.AdminUser, error) {

	var admin models.AdminUser
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
