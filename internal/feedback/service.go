package feedback

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/ledger"
)

type FeedbackServiceInterface interface {
	Submit(username string, in domain.FeedbackInput) (domain.Feedback, bool, error)
	ListAll() ([]domain.Feedback, error)
}

type FeedbackService struct {
	repo     FeedbackRepositoryInterface
	orders   ledger.OrderRepositoryInterface
	validate *validator.Validate
	lg       *logger.Logger
}

func NewFeedbackService(repo FeedbackRepositoryInterface, orders ledger.OrderRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{
		repo:     repo,
		orders:   orders,
		validate: validator.New(),
		lg:       logger.New("feedback-service"),
	}
}

// Submit records feedback with an optional order reference. A reference to
// an order the ledger does not know is dropped to the "N/A" sentinel; the
// returned flag tells the screen whether the reference survived, so the
// warning stays visible to the user.
func (s *FeedbackService) Submit(username string, in domain.FeedbackInput) (domain.Feedback, bool, error) {
	if err := s.validate.Struct(in); err != nil {
		return domain.Feedback{}, false, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	orderRef := domain.OrderRefNone
	linked := false
	if in.OrderID != "" {
		all, err := s.orders.ListAll()
		if err != nil {
			return domain.Feedback{}, false, err
		}
		for _, o := range all {
			if o.ID == in.OrderID {
				orderRef = in.OrderID
				linked = true
				break
			}
		}
	}

	count, err := s.repo.Count()
	if err != nil {
		return domain.Feedback{}, false, err
	}
	fb := domain.Feedback{
		ID:       strconv.Itoa(count + 1),
		Username: username,
		OrderID:  orderRef,
		Rating:   in.Rating,
		Comments: in.Comments,
		Date:     time.Now().Format("2006-01-02"),
	}
	if err := s.repo.Append(fb); err != nil {
		return domain.Feedback{}, false, err
	}
	s.lg.Info("feedback_submitted", map[string]any{"feedback_id": fb.ID, "username": username, "rating": fb.Rating})
	return fb, linked, nil
}

func (s *FeedbackService) ListAll() ([]domain.Feedback, error) {
	return s.repo.ListAll()
}
