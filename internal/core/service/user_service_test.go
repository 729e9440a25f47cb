package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

func newUserFixture() (*UserService, *stubUserRepo) {
	users := newStubUserRepo()
	seedAdmin(users)
	users.users["member-id"] = &domain.User{ID: "member-id", Nombre: "Ana", Email: "ana@x.com"}
	return NewUserService(users, adminEmail, zerolog.Nop()), users
}

func TestUserService_UpdateProfile_Owner(t *testing.T) {
	svc, users := newUserFixture()

	updated, err := svc.UpdateProfile(context.Background(), memberCaller, "member-id", ports.ProfileUpdate{
		Nombre: "Ana María", Descripcion: "me gusta cocinar", Foto: "https://x.com/a.png",
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Nombre != "Ana María" {
		t.Fatalf("update not applied: %+v", updated)
	}
	// Email stays immutable through this path.
	if updated.Email != "ana@x.com" {
		t.Fatalf("email changed by profile update: %q", updated.Email)
	}

	stored, _ := users.FindByID(context.Background(), "member-id")
	if stored.Descripcion != "me gusta cocinar" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestUserService_UpdateProfile_StrangerForbidden(t *testing.T) {
	svc, _ := newUserFixture()

	stranger := ports.Caller{ID: "other-id", Email: "otro@x.com", Role: domain.RoleMember}
	if _, err := svc.UpdateProfile(context.Background(), stranger, "member-id", ports.ProfileUpdate{Nombre: "X"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_UpdateProfile_AdminMayEditAny(t *testing.T) {
	svc, _ := newUserFixture()

	if _, err := svc.UpdateProfile(context.Background(), adminCaller, "member-id", ports.ProfileUpdate{Nombre: "Ana"}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestUserService_Delete_MemberForbidden(t *testing.T) {
	svc, users := newUserFixture()

	if err := svc.Delete(context.Background(), memberCaller, "member-id"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := users.FindByID(context.Background(), "member-id"); err != nil {
		t.Fatalf("user must survive a forbidden delete: %v", err)
	}
}

func TestUserService_Delete_AdminSucceeds(t *testing.T) {
	svc, users := newUserFixture()

	if err := svc.Delete(context.Background(), adminCaller, "member-id"); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := users.FindByID(context.Background(), "member-id"); err != domain.ErrUserNotFound {
		t.Fatalf("expected user gone, got %v", err)
	}
}

func TestUserService_Delete_AdminAccountProtected(t *testing.T) {
	svc, users := newUserFixture()

	// Not even the administrator can delete the administrator account.
	if err := svc.Delete(context.Background(), adminCaller, "admin-id"); err != domain.ErrAdminProtected {
		t.Fatalf("expected ErrAdminProtected, got %v", err)
	}
	if _, err := users.FindByID(context.Background(), "admin-id"); err != nil {
		t.Fatalf("admin account must never be deleted: %v", err)
	}
}

func TestUserService_Delete_TargetMissing(t *testing.T) {
	svc, _ := newUserFixture()
	if err := svc.Delete(context.Background(), adminCaller, "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
