package booking

import (
	"context"

	domain "github.com/BruksfildServices01/studio-site/internal/domain/booking"
	"github.com/BruksfildServices01/studio-site/internal/httperr"
	"github.com/BruksfildServices01/studio-site/internal/mailer"
	"github.com/BruksfildServices01/studio-site/internal/models"
	"github.com/BruksfildServices01/studio-site/internal/validators"
)

type CreateContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type CreateContact struct {
	repo       domain.Repository
	notifier   mailer.Notifier
	adminEmail string
}

func NewCreateContact(
	repo domain.Repository,
	notifier mailer.Notifier,
	adminEmail string,
) *CreateContact {
	return &CreateContact{
		repo:       repo,
		notifier:   notifier,
		adminEmail: adminEmail,
	}
}

func (uc *CreateContact) Execute(
	ctx context.Context,
	in CreateContactInput,
) (*models.ContactMessage, error) {

	if !validators.HasEmailShape(in.Email) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}

	if err := uc.repo.CreateContactMessage(ctx, msg); err != nil {
		return nil, err
	}

	uc.notifier.Enqueue(mailer.ContactAck(msg))
	uc.notifier.Enqueue(mailer.ContactAdminAlert(uc.adminEmail, msg))

	return msg, nil
}
