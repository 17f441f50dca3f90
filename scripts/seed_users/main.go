package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
	pkgjwt "github.com/johnquangdev/meeting-scheduler/pkg/jwt"
)

// Seeds a handful of test users with sessions and availability patterns so the
// scheduling endpoints can be exercised locally without going through OAuth.
func main() {
	log.Println("🚀 Starting test users creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Pattern writes go through the cached repository so a warm redis
	// instance never serves patterns from a previous seed run.
	log.Println("📦 Connecting to redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	patternRepo := repository.NewCachedAvailabilityPatternRepository(
		repository.NewAvailabilityPatternRepository(db),
		redisClient,
		cfg.Scheduler.PatternCacheTTL,
	)
	ctx := context.Background()

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Define test users
	testUsers := []struct {
		Email     string
		Name      string
		WorkStart string
		WorkEnd   string
	}{
		{Email: "alice@test.local", Name: "Alice", WorkStart: "09:00", WorkEnd: "17:00"},
		{Email: "bob@test.local", Name: "Bob", WorkStart: "08:00", WorkEnd: "16:00"},
		{Email: "charlie@test.local", Name: "Charlie", WorkStart: "10:00", WorkEnd: "18:00"},
		{Email: "diana@test.local", Name: "Diana", WorkStart: "09:00", WorkEnd: "17:00"},
	}

	log.Println("🗑️  Cleaning up existing test users...")
	db.Where("user_id IN (SELECT id FROM users WHERE email LIKE ?)", "%@test.local").Delete(&entities.Session{})
	db.Where("user_id IN (SELECT id FROM users WHERE email LIKE ?)", "%@test.local").Delete(&entities.AvailabilityPattern{})
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	log.Println("🔑 Creating test users and tokens...")

	for i, testUser := range testUsers {
		user := &entities.User{
			ID:       uuid.New(),
			Email:    testUser.Email,
			Name:     testUser.Name,
			IsActive: true,
			Timezone: "UTC",
		}

		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", testUser.Email, err)
			continue
		}

		pattern := &entities.AvailabilityPattern{
			ID:            uuid.New(),
			UserID:        user.ID,
			WorkStart:     testUser.WorkStart,
			WorkEnd:       testUser.WorkEnd,
			BufferMinutes: 15,
		}
		if err := patternRepo.Upsert(ctx, pattern); err != nil {
			log.Printf("❌ Failed to create availability pattern for %s: %v", testUser.Email, err)
			continue
		}

		accessToken, err := jwtManager.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			log.Printf("❌ Failed to generate access token for %s: %v", testUser.Email, err)
			continue
		}

		refreshToken, err := jwtManager.GenerateRefreshToken(user.ID)
		if err != nil {
			log.Printf("❌ Failed to generate refresh token for %s: %v", testUser.Email, err)
			continue
		}

		session := entities.NewSession(
			user.ID,
			refreshToken,
			time.Now().Add(cfg.JWT.RefreshExpiry),
		)
		if err := db.Create(session).Error; err != nil {
			log.Printf("❌ Failed to create session for %s: %v", testUser.Email, err)
			continue
		}

		fmt.Printf("═══════════════════════════════════════════════════════════════\n")
		fmt.Printf("🟢 User %d: %s\n", i+1, testUser.Name)
		fmt.Printf("Email:        %s\n", user.Email)
		fmt.Printf("User ID:      %s\n", user.ID)
		fmt.Printf("Work hours:   %s - %s\n", testUser.WorkStart, testUser.WorkEnd)
		fmt.Printf("\n📋 Access Token:\n%s\n", accessToken)
		fmt.Printf("\n🔄 Refresh Token (stored in DB):\n%s\n", refreshToken)
		fmt.Printf("───────────────────────────────────────────────────────────────\n\n")
	}

	log.Println("✅ All test users created successfully!")
	log.Println("💡 In Postman, set header: Authorization: Bearer <access_token>")
	log.Println("🧹 To clean up test users, run: DELETE FROM users WHERE email LIKE '%@test.local'")
}
