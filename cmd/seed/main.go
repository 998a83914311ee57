package main

import (
	"context"
	"log"
	"os"
	"time"

	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"
	"helpdesk-chatbot-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type seedEntry struct {
	question string
	answer   string
	category string
	tags     []string
}

var sampleEntries = []seedEntry{
	{
		question: "What are your business hours?",
		answer:   "Our business hours are Monday to Friday, 9 AM to 6 PM EST.",
		category: "general",
		tags:     []string{"hours", "timing", "business hours"},
	},
	{
		question: "How can I reset my password?",
		answer:   `You can reset your password by clicking on "Forgot Password" on the login page.`,
		category: "account",
		tags:     []string{"password", "reset", "account"},
	},
	{
		question: "Where is your office located?",
		answer:   "Our main office is located at 123 Business Street, Suite 100, City, State 12345.",
		category: "contact",
		tags:     []string{"location", "office", "address"},
	},
	{
		question: "Do you offer refunds?",
		answer:   "Yes, we offer refunds within 30 days of purchase. Please contact support for assistance.",
		category: "billing",
		tags:     []string{"refund", "money back", "return"},
	},
	{
		question: "How can I contact support?",
		answer:   "You can contact support via email at support@company.com or call us at 1-800-123-4567.",
		category: "contact",
		tags:     []string{"support", "contact", "help"},
	},
}

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
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	seedUser(ctx, uow, "admin", "admin@chatbot.com", "admin123", entity.UserRoleAdmin)
	seedUser(ctx, uow, "agent1", "agent@chatbot.com", "agent123", entity.UserRoleAgent)

	count, err := uow.KnowledgeEntryRepository().Count(ctx)
	if err != nil {
		log.Fatal("Error: Failed to count knowledge entries:", err)
	}
	if count > 0 {
		log.Printf("Knowledge base already has %d entries, skipping", count)
		return
	}

	for _, s := range sampleEntries {
		entry := entity.KnowledgeEntry{
			Id:        uuid.New(),
			Question:  s.question,
			Answer:    s.answer,
			Category:  s.category,
			Tags:      s.tags,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := uow.KnowledgeEntryRepository().Create(ctx, &entry); err != nil {
			log.Fatal("Error: Failed to seed knowledge entry:", err)
		}
		log.Printf("Seeded knowledge entry: %s", s.question)
	}

	log.Println("Seeding complete.")
}

func seedUser(ctx context.Context, uow unitofwork.UnitOfWork, username, email, password string, role entity.UserRole) {
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByRole{Role: string(role)})
	if err != nil {
		log.Fatal("Error: Failed to look up user:", err)
	}
	if existing != nil {
		log.Printf("User with role %s already exists, skipping", role)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}

	user := entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		log.Fatal("Error: Failed to seed user:", err)
	}
	log.Printf("Seeded %s user: %s", role, username)
}
