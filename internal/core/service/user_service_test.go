package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ArjunShatkin/movie-sn-backend/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, email string) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleCasual,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_GetProfile_EmailRedaction(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	owner := seedUser(t, repo, "alice", "alice@example.com")

	anon, err := svc.GetProfile(context.Background(), nil, owner.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if anon.Email != "" {
		t.Fatalf("anonymous viewer saw email %q", anon.Email)
	}

	other := &domain.Identity{UserID: "someone-else"}
	if u, _ := svc.GetProfile(context.Background(), other, owner.ID); u.Email != "" {
		t.Fatalf("other viewer saw email %q", u.Email)
	}

	self := domain.IdentityOf(owner)
	if u, _ := svc.GetProfile(context.Background(), &self, owner.ID); u.Email != "alice@example.com" {
		t.Fatalf("owner should see own email, got %q", u.Email)
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), discardLogger)

	if _, err := svc.GetProfile(context.Background(), nil, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_UpdateProfile_ForbiddenForOthers(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	target := seedUser(t, repo, "alice", "alice@example.com")

	bio := "hacked"
	intruder := &domain.Identity{UserID: "intruder"}
	if _, err := svc.UpdateProfile(context.Background(), intruder, target.ID, domain.ProfilePatch{Bio: &bio}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), nil, target.ID, domain.ProfilePatch{Bio: &bio}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for anonymous, got %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), target.ID)
	if stored.Bio != "" {
		t.Fatalf("target was modified: bio=%q", stored.Bio)
	}
}

func TestUserService_UpdateProfile_Self(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	owner := seedUser(t, repo, "alice", "alice@example.com")
	self := domain.IdentityOf(owner)

	bio := "Film buff"
	email := "NEW@Example.com"
	public := true
	updated, err := svc.UpdateProfile(context.Background(), &self, owner.ID, domain.ProfilePatch{
		Bio:         &bio,
		Email:       &email,
		EmailPublic: &public,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Bio != "Film buff" || updated.Email != "new@example.com" || !updated.EmailPublic {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.Username != "alice" {
		t.Fatalf("username must not change, got %q", updated.Username)
	}
}

func TestUserService_UpdateProfile_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	owner := seedUser(t, repo, "alice", "alice@example.com")
	self := domain.IdentityOf(owner)

	role := "admin"
	if _, err := svc.UpdateProfile(context.Background(), &self, owner.ID, domain.ProfilePatch{Role: &role}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, discardLogger)
	owner := seedUser(t, repo, "alice", "alice@example.com")
	seedUser(t, repo, "bob", "bob@example.com")
	self := domain.IdentityOf(owner)

	email := "bob@example.com"
	if _, err := svc.UpdateProfile(context.Background(), &self, owner.ID, domain.ProfilePatch{Email: &email}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
