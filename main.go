package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/auth"
	"github.com/DanielaOM24/Cute-Mark/cart"
	"github.com/DanielaOM24/Cute-Mark/mailer"
	"github.com/DanielaOM24/Cute-Mark/models"
	"github.com/DanielaOM24/Cute-Mark/routes"
)

// Guest-session carts untouched for this long are purged by the janitor.
const cartRetention = 30 * 24 * time.Hour

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductColor{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Cart engine with its store injected
	store := cart.NewGormStore(db)
	engine := cart.NewEngine(store)

	// Firebase for Google sign-in
	if err := auth.InitFirebase(context.Background()); err != nil {
		log.Fatalf("❌ Error initializing Firebase: %v", err)
	}

	// Transactional email
	mail := mailer.NewClient(
		os.Getenv("SENDGRID_API_KEY"),
		os.Getenv("MAIL_FROM"),
		"Cute Mark",
	)

	// Gin setup
	r := gin.Default()

	// Allow image uploads up to a few MB
	r.MaxMultipartMemory = 8 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, db, engine, mail, uploadsDir)

	// Purge stale guest carts daily at 3 AM
	go startDailyCartCleanup(store, cartRetention, 3, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailyCartCleanup purges abandoned guest-session carts daily at a fixed
// hour. User carts are never touched.
func startDailyCartCleanup(store *cart.GormStore, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next cart cleanup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		purged, err := store.PurgeStaleSessionCarts(retention)
		if err != nil {
			log.Printf("❌ Failed to purge stale carts: %v", err)
		} else if purged > 0 {
			log.Printf("🗑️ Removed %d stale guest cart(s)", purged)
		}
	}
}
