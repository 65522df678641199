package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/neoverse/academy-backend/internal/repos/testutil"
	"github.com/neoverse/academy-backend/internal/types"
)

func TestUserRepoRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	repo := NewUserRepo(db, log)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "ada", "ada@example.com")

	t.Run("GetByIDs", func(t *testing.T) {
		found, err := repo.GetByIDs(ctx, tx, []uuid.UUID{user.ID})
		if err != nil {
			t.Fatalf("GetByIDs: %v", err)
		}
		if len(found) != 1 || found[0].Username != "ada" {
			t.Fatalf("got %+v", found)
		}
	})

	t.Run("GetByUsernames and GetByEmails", func(t *testing.T) {
		byName, err := repo.GetByUsernames(ctx, tx, []string{"ada"})
		if err != nil {
			t.Fatalf("GetByUsernames: %v", err)
		}
		if len(byName) != 1 {
			t.Fatalf("got %d users by username", len(byName))
		}
		byEmail, err := repo.GetByEmails(ctx, tx, []string{"ada@example.com"})
		if err != nil {
			t.Fatalf("GetByEmails: %v", err)
		}
		if len(byEmail) != 1 {
			t.Fatalf("got %d users by email", len(byEmail))
		}
	})

	t.Run("existence checks", func(t *testing.T) {
		taken, err := repo.UsernameExists(ctx, tx, "ada")
		if err != nil {
			t.Fatalf("UsernameExists: %v", err)
		}
		if !taken {
			t.Fatal("seeded username reported free")
		}
		free, err := repo.EmailExists(ctx, tx, "nobody@example.com")
		if err != nil {
			t.Fatalf("EmailExists: %v", err)
		}
		if free {
			t.Fatal("unknown email reported taken")
		}
	})

	t.Run("UpdateFields", func(t *testing.T) {
		if err := repo.UpdateFields(ctx, tx, user.ID, map[string]interface{}{"progress": 7}); err != nil {
			t.Fatalf("UpdateFields: %v", err)
		}
		found, err := repo.GetByIDs(ctx, tx, []uuid.UUID{user.ID})
		if err != nil {
			t.Fatalf("GetByIDs: %v", err)
		}
		if found[0].Progress != 7 {
			t.Fatalf("got progress %d, want 7", found[0].Progress)
		}
	})

	t.Run("TouchLastLogin", func(t *testing.T) {
		now := time.Now()
		if err := repo.TouchLastLogin(ctx, tx, user.ID, now); err != nil {
			t.Fatalf("TouchLastLogin: %v", err)
		}
		found, err := repo.GetByIDs(ctx, tx, []uuid.UUID{user.ID})
		if err != nil {
			t.Fatalf("GetByIDs: %v", err)
		}
		if found[0].LastLoginAt == nil {
			t.Fatal("last_login_at not set")
		}
	})

	t.Run("FullDeleteByIDs", func(t *testing.T) {
		deleted, err := repo.FullDeleteByIDs(ctx, tx, []uuid.UUID{user.ID})
		if err != nil {
			t.Fatalf("FullDeleteByIDs: %v", err)
		}
		if deleted != 1 {
			t.Fatalf("got %d deleted rows, want 1", deleted)
		}
		again, err := repo.FullDeleteByIDs(ctx, tx, []uuid.UUID{user.ID})
		if err != nil {
			t.Fatalf("FullDeleteByIDs: %v", err)
		}
		if again != 0 {
			t.Fatalf("second delete removed %d rows", again)
		}
	})
}

func TestUserTokenRepoRoundTrip(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	tokenRepo := NewUserTokenRepo(db, log)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "grace", "grace@example.com")
	access := "access-" + uuid.New().String()
	tokens, err := tokenRepo.Create(ctx, tx, []*types.UserToken{{
		ID:           uuid.New(),
		UserID:       user.ID,
		AccessToken:  access,
		RefreshToken: "refresh-" + uuid.New().String(),
		ExpiresAt:    time.Now().Add(time.Hour),
	}})
	if err != nil {
		t.Fatalf("Create token: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("got %d tokens", len(tokens))
	}

	byAccess, err := tokenRepo.GetByAccessTokens(ctx, tx, []string{access})
	if err != nil {
		t.Fatalf("GetByAccessTokens: %v", err)
	}
	if len(byAccess) != 1 || byAccess[0].UserID != user.ID {
		t.Fatalf("got %+v", byAccess)
	}

	if err := tokenRepo.FullDeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); err != nil {
		t.Fatalf("FullDeleteByUserIDs: %v", err)
	}
	remaining, err := tokenRepo.GetByUserIDs(ctx, tx, []uuid.UUID{user.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("tokens survived the delete: %d", len(remaining))
	}
}
