package mailer

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/BruksfildServices01/studio-site/internal/config"
)

func testConfig(user string) *config.Config {
	return &config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     user,
		SMTPPassword: "pass",
		AdminEmail:   "admin@example.com",
	}
}

func TestSendWithPlaceholderCredentialSkipsNetwork(t *testing.T) {
	m := New(testConfig(config.SMTPPlaceholder))

	var networkCalls int32
	m.sendFn = func(msg *gomail.Message) error {
		atomic.AddInt32(&networkCalls, 1)
		return nil
	}

	ok := m.Send("cliente@example.com", "Teste", "<p>oi</p>")

	if !ok {
		t.Fatal("placeholder send should report success")
	}
	if n := atomic.LoadInt32(&networkCalls); n != 0 {
		t.Fatalf("placeholder send hit the network %d times, want 0", n)
	}
}

func TestSendReportsFailureWithoutError(t *testing.T) {
	m := New(testConfig("real-user@example.com"))

	m.sendFn = func(msg *gomail.Message) error {
		return errors.New("connection refused")
	}

	if ok := m.Send("cliente@example.com", "Teste", "<p>oi</p>"); ok {
		t.Fatal("failed delivery should report false")
	}
}

func TestSendSetsHTMLHeaders(t *testing.T) {
	m := New(testConfig("real-user@example.com"))

	var got *gomail.Message
	m.sendFn = func(msg *gomail.Message) error {
		got = msg
		return nil
	}

	if ok := m.Send("cliente@example.com", "Assunto", "<p>corpo</p>"); !ok {
		t.Fatal("send should succeed")
	}

	if got == nil {
		t.Fatal("sendFn was not called")
	}
	if to := got.GetHeader("To"); len(to) != 1 || to[0] != "cliente@example.com" {
		t.Fatalf("got To header %v", to)
	}
	if from := got.GetHeader("From"); len(from) != 1 || from[0] != "real-user@example.com" {
		t.Fatalf("got From header %v", from)
	}
	if subject := got.GetHeader("Subject"); len(subject) != 1 || subject[0] != "Assunto" {
		t.Fatalf("got Subject header %v", subject)
	}
}

func TestDispatcherDeliversEnqueuedNotification(t *testing.T) {
	m := New(testConfig("real-user@example.com"))

	delivered := make(chan *gomail.Message, 1)
	m.sendFn = func(msg *gomail.Message) error {
		delivered <- msg
		return nil
	}

	d := NewDispatcher(m)
	d.Enqueue(Notification{
		To:       "cliente@example.com",
		Subject:  "Fila",
		HTMLBody: "<p>na fila</p>",
	})

	select {
	case msg := <-delivered:
		if to := msg.GetHeader("To"); len(to) != 1 || to[0] != "cliente@example.com" {
			t.Fatalf("got To header %v", to)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("dispatcher never delivered the notification")
	}
}

func TestDispatcherTimeoutDoesNotBlockQueue(t *testing.T) {
	m := New(testConfig("real-user@example.com"))

	release := make(chan struct{})
	var calls int32
	m.sendFn = func(msg *gomail.Message) error {
		if atomic.AddInt32(&calls, 1) == 1 {
			<-release // primeira entrega trava, simulando relay lento
		}
		return nil
	}

	d := &Dispatcher{
		mailer:  m,
		queue:   make(chan Notification, 10),
		timeout: 50 * time.Millisecond,
	}
	go d.worker()

	d.Enqueue(Notification{To: "lento@example.com", Subject: "a", HTMLBody: "x"})
	d.Enqueue(Notification{To: "rapido@example.com", Subject: "b", HTMLBody: "y"})

	deadline := time.After(3 * time.Second)
	for atomic.LoadInt32(&calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("second notification never attempted after slow first")
		case <-time.After(10 * time.Millisecond):
		}
	}

	close(release)
}
