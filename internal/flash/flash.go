package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const sessionName = "studio_session"

// Message é uma mensagem transiente: aparece na próxima página
// renderizada e some.
type Message struct {
	Level string // "success" | "danger"
	Text  string
}

func init() {
	gob.Register(Message{})
}

type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string) *Store {
	s := sessions.NewCookieStore([]byte(secret))
	s.Options.HttpOnly = true
	s.Options.Path = "/"
	s.Options.SameSite = http.SameSiteLaxMode

	return &Store{cookies: s}
}

func (s *Store) Success(c *gin.Context, text string) {
	s.add(c, "success", text)
}

func (s *Store) Danger(c *gin.Context, text string) {
	s.add(c, "danger", text)
}

func (s *Store) add(c *gin.Context, level, text string) {
	sess, _ := s.cookies.Get(c.Request, sessionName)
	sess.AddFlash(Message{Level: level, Text: text})
	_ = sess.Save(c.Request, c.Writer)
}

// Pop consome as mensagens pendentes. Salvar de novo é o que as remove
// do cookie.
func (s *Store) Pop(c *gin.Context) []Message {
	sess, _ := s.cookies.Get(c.Request, sessionName)

	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save(c.Request, c.Writer)
	}

	out := make([]Message, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(Message); ok {
			out = append(out, m)
		}
	}

	return out
}
