package grocery

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"gorm.io/gorm"

	"sustainable-bao-backend/domain"
	"sustainable-bao-backend/entities"
)

type fakeGroceryRepository struct {
	items map[string]*entities.GroceryItem
}

func newFakeGroceryRepository() *fakeGroceryRepository {
	return &fakeGroceryRepository{items: make(map[string]*entities.GroceryItem)}
}

func (r *fakeGroceryRepository) AddGroceryItem(_ context.Context, item *entities.GroceryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeGroceryRepository) GetGroceryItemByID(_ context.Context, id string) (*entities.GroceryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeGroceryRepository) UpdateGroceryItem(_ context.Context, item *entities.GroceryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeGroceryRepository) DeleteGroceryItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeGroceryRepository) GetGroceryItems(_ context.Context, userID string) ([]*entities.GroceryItem, error) {
	items := make([]*entities.GroceryItem, 0, len(r.items))
	for _, item := range r.items {
		if item.UserID.String() == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakeS3 struct {
	deleted []string
}

func (s *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	return folder + "/" + fileName + ".jpg", nil
}

func (s *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (s *fakeS3) DeleteFile(objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.test/" + objectKey
}

func (s *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.s3.test/"
	if len(link) <= len(prefix) {
		return ""
	}
	return link[len(prefix):]
}

const (
	ownerID  = "3f1a2b84-5f6c-4f0e-9a6f-0f4f3b2a1c9d"
	otherID  = "9d8c7b6a-5f4e-3d2c-1b0a-f9e8d7c6b5a4"
	absentID = "00000000-0000-0000-0000-000000000001"
)

func addRequest() domain.AddGroceryItemRequest {
	return domain.AddGroceryItemRequest{
		Name:         "Milk",
		Quantity:     2,
		Unit:         "liters",
		Price:        2.50,
		PurchaseDate: "2024-06-01",
		ExpiryDate:   "2024-06-08",
	}
}

func TestAddGroceryItemParsesDates(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, &fakeS3{})

	res, err := service.AddGroceryItem(context.Background(), addRequest(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.items[res.ID]
	if stored == nil {
		t.Fatal("item not stored")
	}
	if stored.PurchaseDate.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("unexpected purchase date %v", stored.PurchaseDate)
	}
	if stored.ExpiryDate == nil || stored.ExpiryDate.Format("2006-01-02") != "2024-06-08" {
		t.Errorf("unexpected expiry date %v", stored.ExpiryDate)
	}
	if res.Risk == "" {
		t.Error("expected a risk bucket on the response")
	}
}

func TestAddGroceryItemWithoutExpiry(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, &fakeS3{})

	req := addRequest()
	req.ExpiryDate = ""

	res, err := service.AddGroceryItem(context.Background(), req, ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.items[res.ID].ExpiryDate != nil {
		t.Error("expected nil expiry date for non-perishable item")
	}
	if res.Risk != "" {
		t.Errorf("expected no risk bucket, got %q", res.Risk)
	}
}

func TestAddGroceryItemInvalidInput(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository(), &fakeS3{})
	ctx := context.Background()

	req := addRequest()
	req.Quantity = 0
	if _, err := service.AddGroceryItem(ctx, req, ownerID); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}

	req = addRequest()
	req.Price = -1
	if _, err := service.AddGroceryItem(ctx, req, ownerID); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	req = addRequest()
	req.ExpiryDate = "June 8th"
	if _, err := service.AddGroceryItem(ctx, req, ownerID); !errors.Is(err, domain.ErrInvalidExpiryDate) {
		t.Errorf("expected ErrInvalidExpiryDate, got %v", err)
	}

	req = addRequest()
	req.PurchaseDate = "yesterday"
	if _, err := service.AddGroceryItem(ctx, req, ownerID); !errors.Is(err, domain.ErrInvalidPurchaseDate) {
		t.Errorf("expected ErrInvalidPurchaseDate, got %v", err)
	}
}

func TestUpdateGroceryItemReplacesAllFields(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, &fakeS3{})
	ctx := context.Background()

	res, err := service.AddGroceryItem(ctx, addRequest(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = service.UpdateGroceryItem(ctx, res.ID, domain.UpdateGroceryItemRequest{
		Name:         "Oat Milk",
		Quantity:     1,
		Unit:         "liters",
		Price:        3.20,
		PurchaseDate: "2024-06-02",
	}, ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := repo.items[res.ID]
	if stored.Name != "Oat Milk" || stored.Quantity != 1 || stored.Price != 3.20 {
		t.Errorf("fields not replaced: %+v", stored)
	}
	if stored.ExpiryDate != nil {
		t.Error("expected empty expiry to clear the stored expiry date")
	}
}

func TestUpdateGroceryItemOwnership(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, &fakeS3{})
	ctx := context.Background()

	res, err := service.AddGroceryItem(ctx, addRequest(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = service.UpdateGroceryItem(ctx, res.ID, domain.UpdateGroceryItemRequest{
		Name:         "Milk",
		Quantity:     1,
		Unit:         "liters",
		Price:        2.50,
		PurchaseDate: "2024-06-01",
	}, otherID)
	if !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("expected ErrUserNotAllowed, got %v", err)
	}
}

func TestDeleteGroceryItemNotFound(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository(), &fakeS3{})

	err := service.DeleteGroceryItem(context.Background(), absentID, ownerID)
	if !errors.Is(err, domain.ErrGroceryItemNotFound) {
		t.Fatalf("expected ErrGroceryItemNotFound, got %v", err)
	}
}

func TestDeleteGroceryItemRemovesImage(t *testing.T) {
	repo := newFakeGroceryRepository()
	s3 := &fakeS3{}
	service := NewGroceryService(repo, s3)
	ctx := context.Background()

	res, err := service.AddGroceryItem(ctx, addRequest(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.items[res.ID].ImageURL = "https://bucket.s3.test/groceries/grocery-" + res.ID + ".jpg"

	if err := service.DeleteGroceryItem(ctx, res.ID, ownerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s3.deleted) != 1 {
		t.Errorf("expected stored image deleted, got %v", s3.deleted)
	}
	if _, ok := repo.items[res.ID]; ok {
		t.Error("item still stored after delete")
	}
}

func TestGetGroceryItemsScopedToUser(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo, &fakeS3{})
	ctx := context.Background()

	if _, err := service.AddGroceryItem(ctx, addRequest(), ownerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.AddGroceryItem(ctx, addRequest(), otherID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, err := service.GetGroceryItems(ctx, ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("expected 1 item for owner, got %d", len(items))
	}
}
