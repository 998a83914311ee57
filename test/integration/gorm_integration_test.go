package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"helpdesk-chatbot-be/internal/entity"
	"helpdesk-chatbot-be/internal/repository/specification"
	"helpdesk-chatbot-be/internal/repository/unitofwork"
	"helpdesk-chatbot-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Knowledge Repository", func(t *testing.T) {
		count, err := uow.KnowledgeEntryRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("KnowledgeEntry count: %d", count)
	})

	t.Run("Session Roundtrip", func(t *testing.T) {
		ctx := context.Background()

		user := entity.User{
			Id:           uuid.New(),
			Username:     "it-" + uuid.New().String()[:8],
			Email:        uuid.New().String()[:8] + "@example.com",
			PasswordHash: "x",
			Role:         entity.UserRoleCustomer,
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		require.NoError(t, uow.UserRepository().Create(ctx, &user))
		defer uow.UserRepository().Delete(ctx, user.Id)

		session := entity.ChatSession{
			Id:           uuid.New(),
			UserId:       user.Id,
			SessionToken: uuid.New().String(),
			Status:       entity.ChatSessionActive,
			CreatedAt:    time.Now(),
		}
		require.NoError(t, uow.ChatSessionRepository().Create(ctx, &session))

		found, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.BySessionToken{Token: session.SessionToken},
		)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, session.Id, found.Id)
		assert.Equal(t, entity.ChatSessionActive, found.Status)

		missing, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.BySessionToken{Token: "does-not-exist"},
		)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
