package booking

import "github.com/BruksfildServices01/studio-site/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanAssign valida o status escolhido pelo admin
func CanAssign(s Status) error {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return nil
	}
	return httperr.ErrBusiness("invalid_status")
}

// InitialStatus é o status de todo agendamento recém-criado
func InitialStatus() Status {
	return StatusPending
}
