package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"disaster_backend/internal/app/router"
	authadapters "disaster_backend/internal/feature/auth/adapters"
	authentity "disaster_backend/internal/feature/auth/domain/entity"
	authhandler "disaster_backend/internal/feature/auth/transport/handler"
	authusecase "disaster_backend/internal/feature/auth/usecase"
	"disaster_backend/internal/feature/chatbot/responder"
	chathandler "disaster_backend/internal/feature/chatbot/transport/handler"
	"disaster_backend/internal/feature/disasterinfo/dataset"
	disasterhandler "disaster_backend/internal/feature/disasterinfo/transport/handler"
	sosadapters "disaster_backend/internal/feature/sos/adapters"
	sosentity "disaster_backend/internal/feature/sos/domain/entity"
	soshandler "disaster_backend/internal/feature/sos/transport/handler"
	sosusecase "disaster_backend/internal/feature/sos/usecase"
	infradb "disaster_backend/internal/platform/db"
	"disaster_backend/internal/platform/hash"
)

// defaultPepper keeps digests stable in development when HASH_PEPPER is unset.
// Production deployments must set their own; changing it afterwards
// invalidates every stored digest.
const defaultPepper = "disaster-backend-dev-pepper"

func main() {
	// Load .env if present
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// DB (SQLite by default, Postgres via DATABASE_URL)
	db := infradb.OpenDB()
	if err := db.AutoMigrate(&authentity.User{}, &sosentity.SOSMessage{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Disaster dataset: read once, shared read-only across all handlers
	dataPath := os.Getenv("DISASTER_DATA_PATH")
	if dataPath == "" {
		dataPath = "data/disaster_data.json"
	}
	data, err := dataset.Load(dataPath)
	if err != nil {
		log.Fatalf("failed to load disaster data: %v", err)
	}

	// Password hasher
	pepper := os.Getenv("HASH_PEPPER")
	if pepper == "" {
		log.Println("[WARN] HASH_PEPPER is not set. Set a strong pepper in production.")
		pepper = defaultPepper
	}
	hasher := hash.New(pepper)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sosRepo := sosadapters.NewSOSGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher)
	sosUC := sosusecase.NewSOSUsecase(sosRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	sosH := soshandler.NewSOSHandler(sosUC)
	disasterH := disasterhandler.NewDisasterHandler(data)
	chatH := chathandler.NewChatHandler(responder.New())

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	r := router.NewRouter(authH, sosH, disasterH, chatH, staticDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
