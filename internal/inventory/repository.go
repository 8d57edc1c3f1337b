package inventory

import (
	"fmt"
	"strconv"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
)

// Dataset is the ingredient requests file: requestId, name, quantity,
// status, requestedBy, date.
const Dataset = "ingredients.txt"

const fieldCount = 6

type RequestRepositoryInterface interface {
	ListAll() ([]domain.IngredientRequest, error)
	Count() (int, error)
	Append(req domain.IngredientRequest) error
	Update(req domain.IngredientRequest) error
	Delete(requestID string) error
}

type RequestRepository struct {
	store *textstore.Store
	lg    *logger.Logger
}

func NewRequestRepository(store *textstore.Store) RequestRepositoryInterface {
	return &RequestRepository{store: store, lg: logger.New("inventory-repository")}
}

func (r *RequestRepository) Count() (int, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return 0, fmt.Errorf("failed to count ingredient requests: %w", err)
	}
	return len(records), nil
}

func (r *RequestRepository) ListAll() ([]domain.IngredientRequest, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredient requests: %w", err)
	}
	requests := make([]domain.IngredientRequest, 0, len(records))
	for _, rec := range records {
		if len(rec) != fieldCount {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "fields": len(rec)})
			continue
		}
		qty, err := strconv.Atoi(rec[2])
		if err != nil {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "request_id": rec[0], "quantity": rec[2]})
			continue
		}
		requests = append(requests, domain.IngredientRequest{
			ID:          rec[0],
			Name:        rec[1],
			Quantity:    qty,
			Status:      domain.RequestStatus(rec[3]),
			RequestedBy: rec[4],
			Date:        rec[5],
		})
	}
	return requests, nil
}

// The mutating methods below work on the raw records, so rows ListAll
// cannot parse survive every rewrite.

func (r *RequestRepository) Append(req domain.IngredientRequest) error {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return fmt.Errorf("failed to load ingredient requests: %w", err)
	}
	records = append(records, encodeRequest(req))
	if err := r.store.SaveAll(Dataset, records); err != nil {
		return fmt.Errorf("failed to append ingredient request %s: %w", req.ID, err)
	}
	return nil
}

// Update replaces the record with the same id. When the id is absent
// nothing is written, leaving the file untouched.
func (r *RequestRepository) Update(req domain.IngredientRequest) error {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return fmt.Errorf("failed to load ingredient requests: %w", err)
	}
	for i, rec := range records {
		if len(rec) != fieldCount || rec[0] != req.ID {
			continue
		}
		records[i] = encodeRequest(req)
		if err := r.store.SaveAll(Dataset, records); err != nil {
			return fmt.Errorf("failed to update ingredient request %s: %w", req.ID, err)
		}
		return nil
	}
	return domain.ErrNotFound
}

// Delete removes the record with the given id. When the id is absent
// nothing is written, leaving the file untouched.
func (r *RequestRepository) Delete(requestID string) error {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return fmt.Errorf("failed to load ingredient requests: %w", err)
	}
	for i, rec := range records {
		if len(rec) != fieldCount || rec[0] != requestID {
			continue
		}
		records = append(records[:i], records[i+1:]...)
		if err := r.store.SaveAll(Dataset, records); err != nil {
			return fmt.Errorf("failed to delete ingredient request %s: %w", requestID, err)
		}
		return nil
	}
	return domain.ErrNotFound
}

func encodeRequest(req domain.IngredientRequest) []string {
	return []string{
		req.ID, req.Name, strconv.Itoa(req.Quantity), string(req.Status), req.RequestedBy, req.Date,
	}
}
