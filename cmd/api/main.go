package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"epp-portal/internal/basket"
	"epp-portal/internal/catalog"
	"epp-portal/internal/email"
	"epp-portal/internal/handlers"
	"epp-portal/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	// 1. --- Portal Password ---
	// The EPP portal sits behind a single shared password; without one there
	// is no way to gate order submission.
	portalPassword := os.Getenv("EPP_PORTAL_PASSWORD")
	if portalPassword == "" {
		log.Fatal("CRITICAL ERROR: EPP_PORTAL_PASSWORD environment variable is not set.")
	}

	// 2. --- Notification Transport ---
	// Orders go out via Resend when configured; otherwise a console
	// placeholder keeps the full flow testable locally.
	var transport email.Transport
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		from := os.Getenv("EMAIL_FROM")
		to := os.Getenv("EMAIL_TO")
		if from == "" || to == "" {
			log.Fatal("CRITICAL ERROR: RESEND_API_KEY is set but EMAIL_FROM / EMAIL_TO are not.")
		}
		transport = email.NewResendTransport(apiKey, from, to)
	} else {
		log.Println("WARNING: RESEND_API_KEY not set. Order notifications will be logged to the console.")
		transport = email.LogTransport{}
	}

	// --- Application Setup ---
	// The catalog is static, compiled-in data; building it here fails fast
	// if the tables are ever malformed.
	app := &handlers.Handlers{
		Catalog:        catalog.Default,
		Basket:         basket.New(catalog.Default),
		Transport:      transport,
		PortalPassword: portalPassword,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting EPP portal API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
