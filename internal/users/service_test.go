package users

import (
	"errors"
	"testing"

	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
)

func newService(t *testing.T) (UserServiceInterface, UserRepositoryInterface) {
	t.Helper()
	store, err := textstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("textstore.New: %v", err)
	}
	repo := NewUserRepository(store)
	return NewUserService(repo), repo
}

func TestSeedDefaultAdmin(t *testing.T) {
	svc, repo := newService(t)
	if err := svc.SeedDefaultAdmin("admin", "admin123"); err != nil {
		t.Fatalf("SeedDefaultAdmin: %v", err)
	}
	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 || all[0].Username != "admin" || all[0].Role != domain.RoleAdmin {
		t.Fatalf("unexpected seeded users: %v", all)
	}

	// Seeding is a no-op once any account exists.
	if err := svc.SeedDefaultAdmin("other", "pw"); err != nil {
		t.Fatalf("SeedDefaultAdmin: %v", err)
	}
	all, err = repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected seed to be skipped, got %v", all)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.SeedDefaultAdmin("admin", "admin123"); err != nil {
		t.Fatalf("SeedDefaultAdmin: %v", err)
	}

	user, err := svc.Authenticate("Admin", "admin123")
	if err != nil {
		t.Fatalf("expected case-insensitive username match, got %v", err)
	}
	if user.Username != "admin" || user.Role != domain.RoleAdmin {
		t.Errorf("unexpected user: %+v", user)
	}

	if _, err := svc.Authenticate("admin", "WRONG"); !errors.Is(err, domain.ErrWrongCredentials) {
		t.Errorf("expected ErrWrongCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody", "pw"); !errors.Is(err, domain.ErrWrongCredentials) {
		t.Errorf("expected ErrWrongCredentials, got %v", err)
	}
}

func TestRegisterCustomer(t *testing.T) {
	svc, _ := newService(t)
	req := domain.RegisterRequest{Username: "Alice", Password: "pw", ConfirmPassword: "pw"}
	if err := svc.RegisterCustomer(req); err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}
	// Usernames normalize to lower case on registration.
	user, err := svc.Authenticate("alice", "pw")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "alice" || user.Role != domain.RoleCustomer {
		t.Errorf("unexpected user: %+v", user)
	}

	if err := svc.RegisterCustomer(req); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	mismatch := domain.RegisterRequest{Username: "bob", Password: "pw", ConfirmPassword: "other"}
	if err := svc.RegisterCustomer(mismatch); !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestRegisterCustomer_RejectsDelimiterInUsername(t *testing.T) {
	svc, _ := newService(t)
	req := domain.RegisterRequest{Username: "a,b", Password: "pw", ConfirmPassword: "pw"}
	if err := svc.RegisterCustomer(req); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestStaffLifecycle(t *testing.T) {
	svc, repo := newService(t)
	if err := svc.AddStaff(domain.StaffInput{Username: "carol", Password: "pw", Role: domain.RoleChef}); err != nil {
		t.Fatalf("AddStaff: %v", err)
	}
	if err := svc.AddStaff(domain.StaffInput{Username: "carol", Password: "pw", Role: domain.RoleManager}); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	if err := svc.AddStaff(domain.StaffInput{Username: "eve", Password: "pw", Role: domain.RoleAdmin}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation for non-staff role, got %v", err)
	}

	if err := svc.EditStaff("carol", domain.StaffUpdate{NewRole: domain.RoleManager}); err != nil {
		t.Fatalf("EditStaff: %v", err)
	}
	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if all[0].Role != domain.RoleManager || all[0].Password != "pw" {
		t.Errorf("expected role change only, got %+v", all[0])
	}

	if err := svc.DeleteStaff("carol"); err != nil {
		t.Fatalf("DeleteStaff: %v", err)
	}
	if err := svc.DeleteStaff("carol"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newService(t)
	if err := svc.RegisterCustomer(domain.RegisterRequest{Username: "alice", Password: "pw", ConfirmPassword: "pw"}); err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}
	if err := svc.RegisterCustomer(domain.RegisterRequest{Username: "bob", Password: "pw", ConfirmPassword: "pw"}); err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}

	// Taking another account's username fails.
	_, err := svc.UpdateProfile("alice", domain.ProfileUpdate{NewUsername: "bob"})
	if !errors.Is(err, domain.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}

	updated, err := svc.UpdateProfile("alice", domain.ProfileUpdate{
		NewUsername:     "alice2",
		NewPassword:     "secret",
		ConfirmPassword: "secret",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated != "alice2" {
		t.Errorf("expected returned username alice2, got %q", updated)
	}
	if _, err := svc.Authenticate("alice2", "secret"); err != nil {
		t.Errorf("Authenticate after update: %v", err)
	}

	_, err = svc.UpdateProfile("alice2", domain.ProfileUpdate{NewPassword: "a", ConfirmPassword: "b"})
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}
