package users

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
)

type UserServiceInterface interface {
	Authenticate(username, password string) (domain.User, error)
	RegisterCustomer(req domain.RegisterRequest) error
	SeedDefaultAdmin(username, password string) error
	AddStaff(in domain.StaffInput) error
	EditStaff(username string, upd domain.StaffUpdate) error
	DeleteStaff(username string) error
	UpdateProfile(username string, upd domain.ProfileUpdate) (string, error)
}

type UserService struct {
	repo     UserRepositoryInterface
	validate *validator.Validate
	lg       *logger.Logger
}

func NewUserService(repo UserRepositoryInterface) UserServiceInterface {
	return &UserService{
		repo:     repo,
		validate: validator.New(),
		lg:       logger.New("users-service"),
	}
}

// Authenticate compares the given credentials against the stored plain-text
// ones. Usernames are matched case-insensitively; the stored spelling is
// returned on success.
func (s *UserService) Authenticate(username, password string) (domain.User, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return domain.User{}, err
	}
	username = strings.ToLower(strings.TrimSpace(username))
	for _, u := range all {
		if strings.ToLower(u.Username) != username || u.Password != password {
			continue
		}
		if !u.Role.Valid() {
			return domain.User{}, fmt.Errorf("account %s has unknown role %q", u.Username, u.Role)
		}
		s.lg.Info("login_ok", map[string]any{"username": u.Username, "role": string(u.Role)})
		return u, nil
	}
	return domain.User{}, domain.ErrWrongCredentials
}

func (s *UserService) RegisterCustomer(req domain.RegisterRequest) error {
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Password != req.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	if _, ok := findUser(all, req.Username); ok {
		return domain.ErrDuplicateKey
	}
	all = append(all, domain.User{Username: req.Username, Password: req.Password, Role: domain.RoleCustomer})
	if err := s.repo.SaveAll(all); err != nil {
		return err
	}
	s.lg.Info("customer_registered", map[string]any{"username": req.Username})
	return nil
}

// SeedDefaultAdmin writes the fixed admin account when the users dataset is
// empty, so a first run always has a way in.
func (s *UserService) SeedDefaultAdmin(username, password string) error {
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return nil
	}
	if err := s.repo.SaveAll([]domain.User{{Username: username, Password: password, Role: domain.RoleAdmin}}); err != nil {
		return err
	}
	s.lg.Info("default_admin_seeded", map[string]any{"username": username})
	return nil
}

func (s *UserService) AddStaff(in domain.StaffInput) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	if _, ok := findUser(all, in.Username); ok {
		return domain.ErrDuplicateKey
	}
	all = append(all, domain.User{Username: in.Username, Password: in.Password, Role: in.Role})
	if err := s.repo.SaveAll(all); err != nil {
		return err
	}
	s.lg.Info("staff_added", map[string]any{"username": in.Username, "role": string(in.Role)})
	return nil
}

// EditStaff updates the named account; empty fields keep current values.
func (s *UserService) EditStaff(username string, upd domain.StaffUpdate) error {
	if err := s.validate.Struct(upd); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	idx, ok := findUser(all, username)
	if !ok {
		return domain.ErrNotFound
	}
	if upd.NewUsername != "" && upd.NewUsername != username {
		if _, taken := findUser(all, upd.NewUsername); taken {
			return domain.ErrDuplicateKey
		}
		all[idx].Username = upd.NewUsername
	}
	if upd.NewPassword != "" {
		all[idx].Password = upd.NewPassword
	}
	if upd.NewRole != "" {
		all[idx].Role = upd.NewRole
	}
	if err := s.repo.SaveAll(all); err != nil {
		return err
	}
	s.lg.Info("staff_updated", map[string]any{"username": all[idx].Username})
	return nil
}

func (s *UserService) DeleteStaff(username string) error {
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	idx, ok := findUser(all, username)
	if !ok {
		return domain.ErrNotFound
	}
	all = append(all[:idx], all[idx+1:]...)
	if err := s.repo.SaveAll(all); err != nil {
		return err
	}
	s.lg.Info("staff_deleted", map[string]any{"username": username})
	return nil
}

// UpdateProfile lets any account change its own username and password.
// It returns the (possibly new) username for the live session.
func (s *UserService) UpdateProfile(username string, upd domain.ProfileUpdate) (string, error) {
	if upd.NewPassword != upd.ConfirmPassword {
		return username, domain.ErrPasswordMismatch
	}
	if err := s.validate.Struct(upd); err != nil {
		return username, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	all, err := s.repo.ListAll()
	if err != nil {
		return username, err
	}
	idx, ok := findUser(all, username)
	if !ok {
		return username, domain.ErrNotFound
	}
	if upd.NewUsername != "" && !strings.EqualFold(upd.NewUsername, username) {
		if _, taken := findUser(all, upd.NewUsername); taken {
			return username, domain.ErrDuplicateKey
		}
		all[idx].Username = upd.NewUsername
	}
	if upd.NewPassword != "" {
		all[idx].Password = upd.NewPassword
	}
	if err := s.repo.SaveAll(all); err != nil {
		return username, err
	}
	s.lg.Info("profile_updated", map[string]any{"username": all[idx].Username})
	return all[idx].Username, nil
}

func findUser(all []domain.User, username string) (int, bool) {
	for i, u := range all {
		if strings.EqualFold(u.Username, username) {
			return i, true
		}
	}
	return 0, false
}
