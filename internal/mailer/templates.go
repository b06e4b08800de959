package mailer

import (
	"fmt"

	"github.com/BruksfildServices01/studio-site/internal/models"
)

// Corpos HTML das notificações. Sem engine de template: são mensagens
// curtas e fixas, fmt.Sprintf resolve.

func AppointmentConfirmation(ap *models.Appointment) Notification {
	body := fmt.Sprintf(`
		<h2>Olá, %s!</h2>
		<p>Recebemos seu pedido de agendamento:</p>
		<ul>
			<li><strong>Data:</strong> %s</li>
			<li><strong>Horário:</strong> %s</li>
			<li><strong>Tipo:</strong> %s</li>
		</ul>
		<p>Seu agendamento está <strong>pendente</strong> de confirmação.
		Você receberá um novo e-mail assim que for analisado.</p>`,
		ap.Name, ap.Date, ap.Time, ap.MeetingType,
	)

	return Notification{
		To:       ap.Email,
		Subject:  "Recebemos seu agendamento",
		HTMLBody: body,
	}
}

func AppointmentAdminAlert(adminEmail string, ap *models.Appointment) Notification {
	body := fmt.Sprintf(`
		<h2>Novo agendamento #%d</h2>
		<ul>
			<li><strong>Nome:</strong> %s</li>
			<li><strong>E-mail:</strong> %s</li>
			<li><strong>Telefone:</strong> %s</li>
			<li><strong>Data:</strong> %s às %s</li>
			<li><strong>Tipo:</strong> %s</li>
		</ul>
		<p>%s</p>`,
		ap.ID, ap.Name, ap.Email, ap.Phone, ap.Date, ap.Time,
		ap.MeetingType, ap.Message,
	)

	return Notification{
		To:       adminEmail,
		Subject:  fmt.Sprintf("Novo agendamento de %s", ap.Name),
		HTMLBody: body,
	}
}

func AppointmentStatusChanged(ap *models.Appointment, status string) Notification {
	body := fmt.Sprintf(`
		<h2>Olá, %s!</h2>
		<p>Seu agendamento de %s às %s foi atualizado.</p>
		<p>Novo status: <strong>%s</strong></p>`,
		ap.Name, ap.Date, ap.Time, status,
	)

	return Notification{
		To:       ap.Email,
		Subject:  "Atualização do seu agendamento",
		HTMLBody: body,
	}
}

func ContactAck(msg *models.ContactMessage) Notification {
	body := fmt.Sprintf(`
		<h2>Olá, %s!</h2>
		<p>Recebemos sua mensagem sobre <strong>%s</strong> e vamos
		responder o quanto antes.</p>`,
		msg.Name, msg.Subject,
	)

	return Notification{
		To:       msg.Email,
		Subject:  "Recebemos sua mensagem",
		HTMLBody: body,
	}
}

func ContactAdminAlert(adminEmail string, msg *models.ContactMessage) Notification {
	body := fmt.Sprintf(`
		<h2>Nova mensagem de contato #%d</h2>
		<ul>
			<li><strong>Nome:</strong> %s</li>
			<li><strong>E-mail:</strong> %s</li>
			<li><strong>Assunto:</strong> %s</li>
		</ul>
		<p>%s</p>`,
		msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message,
	)

	return Notification{
		To:       adminEmail,
		Subject:  fmt.Sprintf("Contato: %s", msg.Subject),
		HTMLBody: body,
	}
}
