package mailer

import (
	"log"
	"time"
)

type Notification struct {
	To       string
	Subject  string
	HTMLBody string
}

// Notifier é o contrato que os use cases enxergam: enfileira e esquece.
type Notifier interface {
	Enqueue(n Notification)
}

// Dispatcher entrega notificações fora do caminho da resposta HTTP.
// Best-effort: fila cheia descarta, relay lento estoura o timeout,
// e nada disso volta para o usuário.
type Dispatcher struct {
	mailer  *Mailer
	queue   chan Notification
	timeout time.Duration
}

func NewDispatcher(m *Mailer) *Dispatcher {
	d := &Dispatcher{
		mailer:  m,
		queue:   make(chan Notification, 100),
		timeout: 10 * time.Second,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n Notification) {
	done := make(chan bool, 1)

	go func() {
		done <- d.mailer.Send(n.To, n.Subject, n.HTMLBody)
	}()

	select {
	case ok := <-done:
		if !ok {
			log.Printf("[mailer] notificação para %s descartada após falha", n.To)
		}
	case <-time.After(d.timeout):
		// o goroutine de envio termina sozinho quando a conexão cair
		log.Printf("[mailer] timeout ao enviar para %s, seguindo em frente", n.To)
	}
}

func (d *Dispatcher) Enqueue(n Notification) {
	select {
	case d.queue <- n:
		// enfileirado
	default:
		// fila cheia → descartamos a notificação (nunca travar o site)
		log.Println("[mailer] fila cheia, descartando notificação")
	}
}

var _ Notifier = (*Dispatcher)(nil)
