package infra

import (
	"log"
	"os"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"serenely/internal/models/db_models"
)

var (
	pgSingleton *gorm.DB
	pgOnce      sync.Once
)

// InitPostgresql opens the shared connection pool exactly once; later calls
// return the same handle.
func InitPostgresql() *gorm.DB {
	pgOnce.Do(func() {
		dsn := os.Getenv("POSTGRES_URL")

		connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("Error connecting to database: %v", err)
			log.Fatal("Error connecting to database")
		}

		if err := migrate(connectionPool); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}

		pgSingleton = connectionPool
	})

	return pgSingleton
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.TherapyMessage{},
		&db_models.TherapyEntry{},
		&db_models.Post{},
		&db_models.Comment{},
		&db_models.VerificationToken{},
		&db_models.Therapist{},
	); err != nil {
		return err
	}
	return seedTherapists(db)
}

// seedTherapists fills the read-only directory on first boot.
func seedTherapists(db *gorm.DB) error {
	var count int64
	if err := db.Model(&db_models.Therapist{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	therapists := []db_models.Therapist{
		{Name: "Dr. Ayesha Khan", Address: "23 Clifton Block 5, Karachi", Email: "ayesha.khan@example.com"},
		{Name: "Dr. Hamza Malik", Address: "12 F-6 Markaz, Islamabad", Email: "hamza.malik@example.com"},
		{Name: "Dr. Sana Tariq", Address: "101 Gulberg III, Lahore", Email: "sana.tariq@example.com"},
		{Name: "Dr. Usman Raza", Address: "45 DHA Phase 6, Karachi", Email: "usman.raza@example.com"},
		{Name: "Dr. Rabia Ahmed", Address: "67 Bahria Town Phase 4, Islamabad", Email: "rabia.ahmed@example.com"},
		{Name: "Dr. Bilal Qureshi", Address: "89 Johar Town, Lahore", Email: "bilal.qureshi@example.com"},
		{Name: "Dr. Hira Zafar", Address: "150 North Nazimabad Block H, Karachi", Email: "hira.zafar@example.com"},
		{Name: "Dr. Farhan Siddiqui", Address: "33 G-10/2, Islamabad", Email: "farhan.siddiqui@example.com"},
		{Name: "Dr. Niaz Ahmad", Address: "78 DHA Phase 5, Lahore", Email: "niaz.ahmad@example.com"},
		{Name: "Dr. Zohaib Ali", Address: "92 PECHS Block 2, Karachi", Email: "zohaib.ali@example.com"},
		{Name: "Dr. Nida Hassan", Address: "18 E-11/3, Islamabad", Email: "nida.hassan@example.com"},
		{Name: "Dr. Taimoor Shah", Address: "36 Model Town, Lahore", Email: "taimoor.shah@example.com"},
		{Name: "Dr. Mahnoor Javed", Address: "29 Gulshan-e-Iqbal Block 13D, Karachi", Email: "mahnoor.javed@example.com"},
		{Name: "Dr. Danish Irfan", Address: "65 G-9/4, Islamabad", Email: "danish.irfan@example.com"},
		{Name: "Dr. Sumbul Riaz", Address: "53 Wapda Town, Lahore", Email: "sumbul.riaz@example.com"},
	}
	return db.Create(&therapists).Error
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
