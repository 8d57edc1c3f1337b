package users

import (
	"fmt"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
)

// Dataset is the users file: username, password, role.
const Dataset = "users.txt"

const fieldCount = 3

type UserRepositoryInterface interface {
	ListAll() ([]domain.User, error)
	SaveAll(users []domain.User) error
}

type UserRepository struct {
	store *textstore.Store
	lg    *logger.Logger
}

func NewUserRepository(store *textstore.Store) UserRepositoryInterface {
	return &UserRepository{store: store, lg: logger.New("users-repository")}
}

func (r *UserRepository) ListAll() ([]domain.User, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		if len(rec) != fieldCount {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "fields": len(rec)})
			continue
		}
		users = append(users, domain.User{Username: rec[0], Password: rec[1], Role: domain.Role(rec[2])})
	}
	return users, nil
}

func (r *UserRepository) SaveAll(users []domain.User) error {
	records := make([][]string, 0, len(users))
	for _, u := range users {
		records = append(records, []string{u.Username, u.Password, string(u.Role)})
	}
	if err := r.store.SaveAll(Dataset, records); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
