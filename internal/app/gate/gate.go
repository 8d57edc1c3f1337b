// Package gate is the entry screen: log in or register as a customer.
package gate

import (
	"errors"

	"github.com/google/uuid"

	"restaurant-ops/internal/common/cli"
	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/users"
)

type Screen struct {
	p           *cli.Prompter
	users       users.UserServiceInterface
	maxAttempts int
	lg          *logger.Logger
}

func New(p *cli.Prompter, usersSvc users.UserServiceInterface, maxAttempts int) *Screen {
	return &Screen{p: p, users: usersSvc, maxAttempts: maxAttempts, lg: logger.New("gate")}
}

// Run loops until a login succeeds or the input stream ends. Exhausting the
// attempt budget restarts the screen rather than ending the process.
func (s *Screen) Run() (domain.Session, bool) {
	for {
		attempts := 0
		for attempts < s.maxAttempts {
			s.p.Say("\n1. Log in")
			s.p.Say("2. Register as Customer")
			choice, ok := s.p.ReadLine("Enter choice: ")
			if !ok {
				return domain.Session{}, false
			}
			if choice == "2" {
				if !s.register() {
					return domain.Session{}, false
				}
				continue
			}

			username, ok := s.p.ReadLine("Username: ")
			if !ok {
				return domain.Session{}, false
			}
			password, ok := s.p.ReadLine("Password: ")
			if !ok {
				return domain.Session{}, false
			}

			user, err := s.users.Authenticate(username, password)
			if err != nil {
				if errors.Is(err, domain.ErrWrongCredentials) {
					attempts++
					s.p.Say("Invalid credentials. Attempts left: %d", s.maxAttempts-attempts)
					continue
				}
				s.lg.Error("login_failed", err, map[string]any{"username": username})
				s.p.Say("Login failed: %v", err)
				continue
			}
			s.p.Say("Login successful! Role: %s", user.Role)
			return domain.Session{ID: uuid.NewString(), Username: user.Username, Role: user.Role}, true
		}
		s.p.Say("Too many failed attempts.")
	}
}

func (s *Screen) register() bool {
	s.p.Say("\nCustomer Registration")
	username, ok := s.p.ReadLine("Enter username: ")
	if !ok {
		return false
	}
	password, ok := s.p.ReadLine("Enter password: ")
	if !ok {
		return false
	}
	confirm, ok := s.p.ReadLine("Confirm password: ")
	if !ok {
		return false
	}
	err := s.users.RegisterCustomer(domain.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: confirm,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		s.p.Say("Username already exists! Please choose another.")
	case errors.Is(err, domain.ErrPasswordMismatch):
		s.p.Say("Passwords do not match!")
	case err != nil:
		s.p.Say("Registration failed: %v", err)
	default:
		s.p.Say("Registration successful! You can now log in as a Customer.")
	}
	return true
}
