package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"brightside-be/internal/entity"
	"brightside-be/internal/repository/implementation"
	"brightside-be/pkg/database"
)

// Seeds a demo user with two weeks of EQ sessions and a batch of debate
// sessions so dashboards and analytics have data to show.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	rng := rand.New(rand.NewSource(42)) // reproducible demo data

	userRepo := implementation.NewUserRepository(db)
	eqRepo := implementation.NewEQSessionRepository(db)
	debateRepo := implementation.NewDebateSessionRepository(db)

	color.Cyan("🚀 Seeding demo data\n")

	user, err := userRepo.FindByEmail(ctx, "demo@brightside.local")
	if err != nil {
		color.Red("Failed to look up demo user: %v", err)
		os.Exit(1)
	}
	if user == nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		user = &entity.User{
			Id:           uuid.New(),
			Name:         "Demo User",
			Email:        "demo@brightside.local",
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			color.Red("Failed to create demo user: %v", err)
			os.Exit(1)
		}
		if err := userRepo.AddContact(ctx, &entity.Contact{
			Id:           uuid.New(),
			UserId:       user.Id,
			Name:         "Demo Counselor",
			Email:        "counselor@brightside.local",
			Relationship: "counselor",
		}); err != nil {
			color.Red("Failed to add demo contact: %v", err)
			os.Exit(1)
		}
		color.Green("Created demo user %s", user.Email)
	} else {
		color.Yellow("Demo user already exists, adding sessions only")
	}

	moods := []struct {
		state    string
		mood     int
		distress int
	}{
		{"happy", 85, 10},
		{"calm", 75, 18},
		{"neutral", 55, 30},
		{"anxious", 35, 65},
		{"sad", 25, 70},
	}

	color.Yellow("\nSeeding EQ sessions")
	for i := 0; i < 14; i++ {
		m := moods[rng.Intn(len(moods))]
		session := &entity.EQSession{
			Id:             uuid.New(),
			UserId:         user.Id,
			Timestamp:      time.Now().AddDate(0, 0, -14+i),
			MoodScore:      m.mood + rng.Intn(11) - 5,
			DistressLevel:  m.distress + rng.Intn(11) - 5,
			StabilityScore: 50 + rng.Intn(41),
			Transcript:     fmt.Sprintf("Sample check-in expressing a %s state", m.state),
			Summary:        fmt.Sprintf("User expressed %s sentiment.", m.state),
		}
		session.AlertSent = session.DistressLevel > 70
		if err := eqRepo.Append(ctx, session); err != nil {
			color.Red("Failed to seed EQ session: %v", err)
			os.Exit(1)
		}
	}
	color.Green("Seeded 14 EQ sessions")

	sampleTopics := []string{
		"AI Ethics in Engineering",
		"Renewable Energy Future",
		"Quantum Computing Applications",
		"Cybersecurity Best Practices",
		"Future of Engineering Education",
	}

	color.Yellow("\nSeeding debate sessions")
	for i := 0; i < 10; i++ {
		topic := sampleTopics[rng.Intn(len(sampleTopics))]
		metrics := entity.PerformanceMetrics{
			Coherence:      60 + rng.Intn(31),
			Persuasiveness: 55 + rng.Intn(36),
			KnowledgeDepth: 65 + rng.Intn(26),
			Articulation:   50 + rng.Intn(41),
		}
		metrics.OverallScore = int(
			float64(metrics.Coherence)*0.30 +
				float64(metrics.Persuasiveness)*0.30 +
				float64(metrics.KnowledgeDepth)*0.25 +
				float64(metrics.Articulation)*0.15 + 0.5)

		session := &entity.DebateSession{
			Id:                 uuid.New(),
			UserId:             user.Id,
			Timestamp:          time.Now().AddDate(0, 0, -10+i),
			Topic:              topic,
			Transcript:         fmt.Sprintf("Sample debate transcript on %s", topic),
			PerformanceMetrics: metrics,
			Feedback:           "Seeded session.",
		}
		if err := debateRepo.Append(ctx, session); err != nil {
			color.Red("Failed to seed debate session: %v", err)
			os.Exit(1)
		}
	}
	color.Green("Seeded 10 debate sessions")

	color.Cyan("\n✅ Done")
}
