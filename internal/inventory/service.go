package inventory

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
)

type RequestServiceInterface interface {
	Add(chef string, in domain.IngredientInput) (domain.IngredientRequest, error)
	EditOwn(chef, requestID string, newName string, newQuantity int) error
	DeleteOwn(chef, requestID string) error
	ListByOwner(chef string) ([]domain.IngredientRequest, error)
	ListAll() ([]domain.IngredientRequest, error)
	Review(requestID string, status domain.RequestStatus) error
}

type RequestService struct {
	repo     RequestRepositoryInterface
	validate *validator.Validate
	lg       *logger.Logger
}

func NewRequestService(repo RequestRepositoryInterface) RequestServiceInterface {
	return &RequestService{
		repo:     repo,
		validate: validator.New(),
		lg:       logger.New("inventory-service"),
	}
}

func (s *RequestService) Add(chef string, in domain.IngredientInput) (domain.IngredientRequest, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.IngredientRequest{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	count, err := s.repo.Count()
	if err != nil {
		return domain.IngredientRequest{}, err
	}
	req := domain.IngredientRequest{
		ID:          strconv.Itoa(count + 1),
		Name:        in.Name,
		Quantity:    in.Quantity,
		Status:      domain.RequestStatusRequested,
		RequestedBy: chef,
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := s.repo.Append(req); err != nil {
		return domain.IngredientRequest{}, err
	}
	s.lg.Info("ingredient_requested", map[string]any{"request_id": req.ID, "name": req.Name, "chef": chef})
	return req, nil
}

// EditOwn updates a chef's own request, and only while it is still in the
// Requested state; reviewed requests are frozen.
func (s *RequestService) EditOwn(chef, requestID string, newName string, newQuantity int) error {
	if newQuantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	for _, req := range all {
		if req.ID != requestID || req.RequestedBy != chef || req.Status != domain.RequestStatusRequested {
			continue
		}
		if newName == "" {
			newName = req.Name
		}
		if err := s.validate.Struct(domain.IngredientInput{Name: newName, Quantity: newQuantity}); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		req.Name = newName
		req.Quantity = newQuantity
		if err := s.repo.Update(req); err != nil {
			return err
		}
		s.lg.Info("ingredient_request_updated", map[string]any{"request_id": requestID})
		return nil
	}
	return domain.ErrNotFound
}

func (s *RequestService) DeleteOwn(chef, requestID string) error {
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	for _, req := range all {
		if req.ID != requestID || req.RequestedBy != chef {
			continue
		}
		if err := s.repo.Delete(requestID); err != nil {
			return err
		}
		s.lg.Info("ingredient_request_deleted", map[string]any{"request_id": requestID})
		return nil
	}
	return domain.ErrNotFound
}

func (s *RequestService) ListByOwner(chef string) ([]domain.IngredientRequest, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	var mine []domain.IngredientRequest
	for _, req := range all {
		if req.RequestedBy == chef {
			mine = append(mine, req)
		}
	}
	return mine, nil
}

func (s *RequestService) ListAll() ([]domain.IngredientRequest, error) {
	return s.repo.ListAll()
}

// Review moves a request to Approved or Rejected.
func (s *RequestService) Review(requestID string, status domain.RequestStatus) error {
	if status != domain.RequestStatusApproved && status != domain.RequestStatusRejected {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}
	all, err := s.repo.ListAll()
	if err != nil {
		return err
	}
	for _, req := range all {
		if req.ID != requestID {
			continue
		}
		req.Status = status
		if err := s.repo.Update(req); err != nil {
			return err
		}
		s.lg.Info("ingredient_request_reviewed", map[string]any{"request_id": requestID, "status": string(status)})
		return nil
	}
	return domain.ErrNotFound
}
