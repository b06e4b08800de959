package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/studio-site/internal/config"
	"github.com/BruksfildServices01/studio-site/internal/models"
)

// Senha padrão do admin criado no primeiro startup.
// Troque via painel (ou direto no banco) antes de publicar.
const defaultAdminPassword = "admin123"

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// sqlite é single-writer; uma conexão evita SQLITE_BUSY em escrita
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// SeedDefaultAdmin garante o usuário admin inicial. Idempotente:
// insert-if-absent em um único statement (ON CONFLICT DO NOTHING),
// então rodar o startup de novo nunca duplica a linha.
func SeedDefaultAdmin(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(defaultAdminPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Username:     "admin",
		PasswordHash: string(hashed),
		Email:        "admin@studio-site.com",
	}

	return db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).
		Create(&admin).Error
}
