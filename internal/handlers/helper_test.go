package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-site/internal/config"
	"github.com/BruksfildServices01/studio-site/internal/models"
	"github.com/BruksfildServices01/studio-site/internal/routes"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "senha-forte"
)

// páginas mínimas com os mesmos nomes dos templates reais
func testTemplates() *template.Template {
	return template.Must(template.New("t").Parse(`
		{{define "home.html"}}home{{end}}
		{{define "about.html"}}about{{end}}
		{{define "appointment.html"}}appointment{{range .Flashes}} [{{.Level}}:{{.Text}}]{{end}}{{end}}
		{{define "contact.html"}}contact{{range .Flashes}} [{{.Level}}:{{.Text}}]{{end}}{{end}}
		{{define "admin_login.html"}}login{{range .Flashes}} [{{.Level}}:{{.Text}}]{{end}}{{end}}
		{{define "admin_dashboard.html"}}dashboard appointments={{len .Appointments}} contacts={{len .Contacts}}{{end}}
		{{define "admin_appointment.html"}}{{if .Appointment}}appointment #{{.Appointment.ID}}{{else}}not found{{end}}{{end}}
	`))
}

func setupTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{},
	)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		ServerPort:    "0",
		SessionSecret: "test-secret",
		SMTPHost:      "smtp.example.com",
		SMTPPort:      587,
		SMTPUser:      config.SMTPPlaceholder, // sem rede nos testes
		AdminEmail:    "admin@example.com",
	}

	r := gin.New()
	r.SetHTMLTemplate(testTemplates())
	routes.RegisterRoutes(r, db, cfg)

	return r, db
}

func createTestAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(testAdminPassword), bcrypt.MinCost,
	)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	admin := models.AdminUser{
		Username:     testAdminUser,
		PasswordHash: string(hashed),
		Email:        "admin@example.com",
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("create admin: %v", err)
	}
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAsAdmin faz o login e devolve o cookie de sessão assinado
func loginAsAdmin(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	w := postForm(r, "/admin/login", url.Values{
		"username": {testAdminUser},
		"password": {testAdminPassword},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("login: got status %d, want 303", w.Code)
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}

	t.Fatal("login did not set the admin_session cookie")
	return nil
}
