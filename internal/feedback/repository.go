package feedback

import (
	"fmt"
	"strconv"

	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
)

// Dataset is the feedback file: feedbackId, username, orderId (or "N/A"),
// rating, comments, date.
const Dataset = "feedback.txt"

const fieldCount = 6

type FeedbackRepositoryInterface interface {
	ListAll() ([]domain.Feedback, error)
	Count() (int, error)
	Append(fb domain.Feedback) error
}

type FeedbackRepository struct {
	store *textstore.Store
	lg    *logger.Logger
}

func NewFeedbackRepository(store *textstore.Store) FeedbackRepositoryInterface {
	return &FeedbackRepository{store: store, lg: logger.New("feedback-repository")}
}

func (r *FeedbackRepository) Count() (int, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return len(records), nil
}

func (r *FeedbackRepository) ListAll() ([]domain.Feedback, error) {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	entries := make([]domain.Feedback, 0, len(records))
	for _, rec := range records {
		if len(rec) != fieldCount {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "fields": len(rec)})
			continue
		}
		rating, err := strconv.Atoi(rec[3])
		if err != nil || rating < 1 || rating > 5 {
			r.lg.Warn("malformed_record_skipped", map[string]any{"dataset": Dataset, "feedback_id": rec[0], "rating": rec[3]})
			continue
		}
		entries = append(entries, domain.Feedback{
			ID:       rec[0],
			Username: rec[1],
			OrderID:  rec[2],
			Rating:   rating,
			Comments: rec[4],
			Date:     rec[5],
		})
	}
	return entries, nil
}

// Append rewrites the dataset with the new entry at the end. It works on
// the raw records so rows ListAll cannot parse survive the rewrite.
func (r *FeedbackRepository) Append(fb domain.Feedback) error {
	records, err := r.store.LoadAll(Dataset)
	if err != nil {
		return fmt.Errorf("failed to load feedback: %w", err)
	}
	records = append(records, []string{
		fb.ID, fb.Username, fb.OrderID, strconv.Itoa(fb.Rating), fb.Comments, fb.Date,
	})
	if err := r.store.SaveAll(Dataset, records); err != nil {
		return fmt.Errorf("failed to append feedback %s: %w", fb.ID, err)
	}
	return nil
}
