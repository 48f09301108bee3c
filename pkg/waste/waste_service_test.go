package waste

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sustainable-bao-backend/entities"
)

type fakeWasteRepository struct {
	snapshots []*entities.WasteSnapshot
}

func (r *fakeWasteRepository) SaveSnapshot(_ context.Context, snapshot *entities.WasteSnapshot) error {
	for i, existing := range r.snapshots {
		if existing.ID == snapshot.ID {
			r.snapshots[i] = snapshot
			return nil
		}
	}
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeWasteRepository) GetSnapshot(_ context.Context, userID string, weekStart time.Time) (*entities.WasteSnapshot, error) {
	for _, snapshot := range r.snapshots {
		if snapshot.UserID.String() == userID && snapshot.WeekStart.Equal(weekStart) {
			return snapshot, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWasteRepository) GetWeeklySnapshots(_ context.Context, userID string, weeks int) ([]*entities.WasteSnapshot, error) {
	var result []*entities.WasteSnapshot
	for _, snapshot := range r.snapshots {
		if snapshot.UserID.String() == userID {
			result = append(result, snapshot)
		}
	}
	if len(result) > weeks {
		result = result[len(result)-weeks:]
	}
	return result, nil
}

type fakeGroceries struct {
	items map[string][]*entities.GroceryItem
}

func (g *fakeGroceries) GetGroceryItems(_ context.Context, userID string) ([]*entities.GroceryItem, error) {
	return g.items[userID], nil
}

type fakeUsers struct {
	users []*entities.User
}

func (u *fakeUsers) GetAllUsers(_ context.Context) ([]*entities.User, error) {
	return u.users, nil
}

func expiredItem(name string, quantity, price float64) *entities.GroceryItem {
	expiry := time.Now().AddDate(0, 0, -2)
	return &entities.GroceryItem{
		ID:         uuid.New(),
		Name:       name,
		Quantity:   quantity,
		Price:      price,
		ExpiryDate: &expiry,
	}
}

func freshItem(name string, quantity, price float64) *entities.GroceryItem {
	expiry := time.Now().AddDate(0, 0, 30)
	return &entities.GroceryItem{
		ID:         uuid.New(),
		Name:       name,
		Quantity:   quantity,
		Price:      price,
		ExpiryDate: &expiry,
	}
}

func TestGetWasteSummary(t *testing.T) {
	user := &entities.User{ID: uuid.New()}
	groceries := &fakeGroceries{items: map[string][]*entities.GroceryItem{
		user.ID.String(): {
			expiredItem("Milk", 2, 2.50),
			freshItem("Rice", 1, 3.00),
		},
	}}
	service := NewWasteService(&fakeWasteRepository{}, groceries, &fakeUsers{}, nil)

	res, err := service.GetWasteSummary(context.Background(), user.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Summary.Expired != 1 || res.Summary.Low != 1 {
		t.Errorf("unexpected summary %+v", res.Summary)
	}
	if res.TotalWasteCost != 5.00 {
		t.Errorf("expected waste cost 5.00, got %v", res.TotalWasteCost)
	}
	if len(res.ExpiredItems) != 1 || res.ExpiredItems[0].Name != "Milk" {
		t.Errorf("unexpected expired items %+v", res.ExpiredItems)
	}
	if res.Tips == nil {
		t.Error("tips must never be nil")
	}
}

func TestGetWasteSummaryEmptyInventory(t *testing.T) {
	user := uuid.New().String()
	service := NewWasteService(&fakeWasteRepository{}, &fakeGroceries{}, &fakeUsers{}, nil)

	res, err := service.GetWasteSummary(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalWasteCost != 0 {
		t.Errorf("expected zero waste cost, got %v", res.TotalWasteCost)
	}
	if res.Tips == nil || len(res.Tips) != 0 {
		t.Errorf("expected empty tips, got %v", res.Tips)
	}
}

func TestCaptureWeeklySnapshotsUpserts(t *testing.T) {
	user := &entities.User{ID: uuid.New()}
	repo := &fakeWasteRepository{}
	groceries := &fakeGroceries{items: map[string][]*entities.GroceryItem{
		user.ID.String(): {expiredItem("Milk", 2, 2.50)},
	}}
	service := NewWasteService(repo, groceries, &fakeUsers{users: []*entities.User{user}}, nil)
	ctx := context.Background()

	if err := service.CaptureWeeklySnapshots(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.CaptureWeeklySnapshots(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.snapshots) != 1 {
		t.Fatalf("expected one snapshot per week, got %d", len(repo.snapshots))
	}
	if repo.snapshots[0].ExpiredWaste != 5.00 {
		t.Errorf("expected expired waste 5.00, got %v", repo.snapshots[0].ExpiredWaste)
	}
}

func TestGetWeeklyWaste(t *testing.T) {
	user := &entities.User{ID: uuid.New()}
	week := startOfWeek(time.Now())
	repo := &fakeWasteRepository{snapshots: []*entities.WasteSnapshot{
		{ID: uuid.New(), UserID: user.ID, WeekStart: week.AddDate(0, 0, -7), ExpiredWaste: 3.20},
		{ID: uuid.New(), UserID: user.ID, WeekStart: week, ExpiredWaste: 5.00},
	}}
	service := NewWasteService(repo, &fakeGroceries{}, &fakeUsers{}, nil)

	entries, err := service.GetWeeklyWaste(context.Background(), user.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Week != week.AddDate(0, 0, -7).Format("2006-01-02") {
		t.Errorf("expected chronological order, got %+v", entries)
	}
}

func TestStartOfWeek(t *testing.T) {
	// 2024-06-12 is a Wednesday.
	wednesday := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)
	want := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if got := startOfWeek(wednesday); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Sundays belong to the week that started the previous Monday.
	sunday := time.Date(2024, 6, 16, 8, 0, 0, 0, time.UTC)
	if got := startOfWeek(sunday); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	if got := startOfWeek(monday); !got.Equal(monday) {
		t.Errorf("expected %v, got %v", monday, got)
	}
}
