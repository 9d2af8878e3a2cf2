package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/questlinehq/questline-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user without a wallet address. In production the users
// table is populated by the identity service; tests insert rows directly.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, nil)
}

// SeedUserWithWallet creates a user with the given payout address on file.
func SeedUserWithWallet(t *testing.T, pool *pgxpool.Pool, address string) domain.User {
	t.Helper()
	return seedUser(t, pool, &address)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, wallet *string) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:            uuid.New(),
		Username:      "testuser-" + uniqueSuffix(),
		WalletAddress: wallet,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, wallet_address, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.WalletAddress, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedQuest creates an active quest expiring in 24h with a 1000-unit reward.
func SeedQuest(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID) domain.Quest {
	t.Helper()
	return SeedQuestWithReward(t, pool, creatorID, 1000)
}

// SeedQuestWithReward creates an active quest with the given reward amount.
func SeedQuestWithReward(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, reward int64) domain.Quest {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	quest := domain.Quest{
		ID:             uuid.New(),
		CreatorID:      creatorID,
		Title:          "Test quest " + uniqueSuffix(),
		RewardAmount:   reward,
		RewardCurrency: "QLT",
		Type:           domain.QuestTypeSocial,
		Status:         domain.QuestStatusActive,
		ExpiresAt:      now.Add(24 * time.Hour),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO quests (id, creator_id, title, description, reward_amount, reward_currency,
		                     quest_type, status, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		quest.ID, quest.CreatorID, quest.Title, quest.Description, quest.RewardAmount,
		quest.RewardCurrency, string(quest.Type), string(quest.Status), quest.ExpiresAt,
		quest.CreatedAt, quest.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedQuest insert quest: %v", err)
	}

	return quest
}

// SeedParticipation creates a participation row in the given status. Rows in
// SUBMITTED or VERIFIED status get a proof payload, mirroring what the
// lifecycle writes.
func SeedParticipation(t *testing.T, pool *pgxpool.Pool, questID, participantID uuid.UUID, status domain.ParticipationStatus) domain.Participation {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Participation{
		QuestID:       questID,
		ParticipantID: participantID,
		Status:        status,
		JoinedAt:      now,
		UpdatedAt:     now,
	}
	if status != domain.ParticipationStatusJoined {
		proof := "https://proof.example.com/" + uniqueSuffix()
		p.Proof = &proof
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO participations (quest_id, participant_id, status, proof, joined_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.QuestID, p.ParticipantID, string(p.Status), p.Proof, p.JoinedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedParticipation insert participation: %v", err)
	}

	return p
}
