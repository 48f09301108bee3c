package waste

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sustainable-bao-backend/domain"
	"sustainable-bao-backend/entities"
)

type (
	// GroceryReader and UserReader cover the slices of the grocery and
	// user repositories this service reads from.
	GroceryReader interface {
		GetGroceryItems(ctx context.Context, userID string) ([]*entities.GroceryItem, error)
	}

	UserReader interface {
		GetAllUsers(ctx context.Context) ([]*entities.User, error)
	}

	WasteService interface {
		GetWasteSummary(ctx context.Context, userID string) (domain.WasteSummaryResponse, error)
		GetWeeklyWaste(ctx context.Context, userID string) ([]domain.WeeklyWasteEntry, error)
		CaptureWeeklySnapshots(ctx context.Context) error
	}

	wasteService struct {
		wasteRepository WasteRepository
		groceries       GroceryReader
		users           UserReader
		logger          *zap.Logger
	}
)

// Snapshots kept per user when listing weekly waste.
const weeklyWasteWindow = 12

func NewWasteService(wasteRepository WasteRepository, groceries GroceryReader, users UserReader, logger *zap.Logger) WasteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &wasteService{
		wasteRepository: wasteRepository,
		groceries:       groceries,
		users:           users,
		logger:          logger,
	}
}

func (s *wasteService) GetWasteSummary(ctx context.Context, userID string) (domain.WasteSummaryResponse, error) {
	items, err := s.groceries.GetGroceryItems(ctx, userID)
	if err != nil {
		return domain.WasteSummaryResponse{}, err
	}

	now := time.Now()
	c := Classify(items, now)

	expired := make([]domain.GroceryItemResponse, 0, len(c.ExpiredItems))
	for _, item := range c.ExpiredItems {
		expired = append(expired, domain.GroceryItemResponse{
			ID:           item.ID.String(),
			Name:         item.Name,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			Price:        item.Price,
			PurchaseDate: item.PurchaseDate,
			ExpiryDate:   item.ExpiryDate,
			Risk:         domain.RiskExpired,
			CreatedAt:    item.CreatedAt,
		})
	}

	tips := c.Tips
	if tips == nil {
		tips = []string{}
	}

	return domain.WasteSummaryResponse{
		Summary: domain.RiskSummary{
			Low:     c.Summary.Low,
			Medium:  c.Summary.Medium,
			High:    c.Summary.High,
			Expired: c.Summary.Expired,
		},
		ExpiredItems:   expired,
		TotalWasteCost: c.TotalCost,
		PortionWaste:   c.AtRiskCost,
		Tips:           tips,
	}, nil
}

func (s *wasteService) GetWeeklyWaste(ctx context.Context, userID string) ([]domain.WeeklyWasteEntry, error) {
	snapshots, err := s.wasteRepository.GetWeeklySnapshots(ctx, userID, weeklyWasteWindow)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.WeeklyWasteEntry, 0, len(snapshots))
	for _, snapshot := range snapshots {
		entries = append(entries, domain.WeeklyWasteEntry{
			Week:         snapshot.WeekStart.Format("2006-01-02"),
			ExpiredWaste: snapshot.ExpiredWaste,
			PortionWaste: snapshot.PortionWaste,
		})
	}
	return entries, nil
}

// CaptureWeeklySnapshots records the current week's waste cost for every
// user. Re-running within the same week overwrites that week's snapshot
// instead of appending a duplicate. A failure for one user does not stop
// the rest.
func (s *wasteService) CaptureWeeklySnapshots(ctx context.Context) error {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return err
	}

	weekStart := startOfWeek(time.Now())
	for _, user := range users {
		if err := s.captureSnapshot(ctx, user, weekStart); err != nil {
			s.logger.Error("failed to capture waste snapshot",
				zap.String("user_id", user.ID.String()),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (s *wasteService) captureSnapshot(ctx context.Context, user *entities.User, weekStart time.Time) error {
	items, err := s.groceries.GetGroceryItems(ctx, user.ID.String())
	if err != nil {
		return err
	}

	c := Classify(items, time.Now())

	snapshot, err := s.wasteRepository.GetSnapshot(ctx, user.ID.String(), weekStart)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		snapshot = &entities.WasteSnapshot{
			ID:        uuid.New(),
			UserID:    user.ID,
			WeekStart: weekStart,
		}
	}

	snapshot.ExpiredWaste = c.TotalCost
	snapshot.PortionWaste = c.AtRiskCost
	return s.wasteRepository.SaveSnapshot(ctx, snapshot)
}

// startOfWeek truncates to midnight on the most recent Monday.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
