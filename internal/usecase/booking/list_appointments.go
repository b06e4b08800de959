package booking

import (
	"context"

	domain "github.com/BruksfildServices01/studio-site/internal/domain/booking"
	"github.com/BruksfildServices01/studio-site/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute devolve a visão pública da agenda: só os campos que a API
// expõe, na ordem de data mais recente primeiro.
func (uc *ListAppointments) Execute(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:     ap.ID,
			Name:   ap.Name,
			Date:   ap.Date,
			Time:   ap.Time,
			Status: ap.Status,
		})
	}

	return out, nil
}
