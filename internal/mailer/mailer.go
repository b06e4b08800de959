package mailer

import (
	"log"

	"gopkg.in/gomail.v2"

	"github.com/BruksfildServices01/studio-site/internal/config"
)

type Mailer struct {
	cfg *config.Config

	// ponto de injeção nos testes; em produção é DialAndSend
	sendFn func(m *gomail.Message) error
}

func New(cfg *config.Config) *Mailer {
	// porta 587: conexão plana com upgrade STARTTLS + login
	dialer := gomail.NewDialer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
	)

	return &Mailer{
		cfg: cfg,
		sendFn: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
	}
}

// Send entrega um e-mail HTML e informa se deu certo. Nunca retorna erro:
// falha de entrega é logada e reportada como false, e quem chama segue em
// frente — a mutação no banco já foi commitada.
//
// Com a credencial placeholder (ambiente de desenvolvimento) o envio é
// curto-circuitado: só loga e reporta sucesso, sem tocar na rede.
func (m *Mailer) Send(to, subject, htmlBody string) bool {
	if !m.cfg.MailConfigured() {
		log.Printf("[mailer] SMTP não configurado — e-mail para %s: %q", to, subject)
		return true
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPUser)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.sendFn(msg); err != nil {
		log.Printf("[mailer] falha ao enviar para %s: %v", to, err)
		return false
	}

	return true
}
