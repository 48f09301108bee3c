package grocery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sustainable-bao-backend/domain"
	"sustainable-bao-backend/entities"
	"sustainable-bao-backend/internal/utils/storage"
	"sustainable-bao-backend/pkg/waste"
)

type (
	GroceryService interface {
		AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error)
		UpdateGroceryItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest, userID string) error
		DeleteGroceryItem(ctx context.Context, id string, userID string) error
		GetGroceryItems(ctx context.Context, userID string) ([]domain.GroceryItemResponse, error)
		GetGroceryItemByID(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error)
		UploadGroceryImage(ctx context.Context, req domain.UploadGroceryImageRequest, userID string) error
	}

	groceryService struct {
		groceryRepository GroceryRepository
		s3                storage.AwsS3
	}
)

func NewGroceryService(groceryRepository GroceryRepository, s3 storage.AwsS3) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		s3:                s3,
	}
}

func (s *groceryService) AddGroceryItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	if req.Quantity <= 0 {
		return domain.GroceryItemResponse{}, domain.ErrInvalidQuantity
	}
	if req.Price < 0 {
		return domain.GroceryItemResponse{}, domain.ErrInvalidPrice
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return domain.GroceryItemResponse{}, domain.ErrInvalidPurchaseDate
	}

	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return domain.GroceryItemResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.GroceryItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		Price:        req.Price,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
	}

	if err := s.groceryRepository.AddGroceryItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return toResponse(item, time.Now()), nil
}

func (s *groceryService) UpdateGroceryItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest, userID string) error {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if req.Price < 0 {
		return domain.ErrInvalidPrice
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return domain.ErrInvalidPurchaseDate
	}

	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return err
	}

	// Edits replace every field.
	item.Name = req.Name
	item.Quantity = req.Quantity
	item.Unit = req.Unit
	item.Price = req.Price
	item.PurchaseDate = purchaseDate
	item.ExpiryDate = expiryDate

	return s.groceryRepository.UpdateGroceryItem(ctx, item)
}

func (s *groceryService) DeleteGroceryItem(ctx context.Context, id string, userID string) error {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.groceryRepository.DeleteGroceryItem(ctx, id)
}

func (s *groceryService) GetGroceryItems(ctx context.Context, userID string) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetGroceryItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item, now))
	}

	return response, nil
}

func (s *groceryService) GetGroceryItemByID(ctx context.Context, id string, userID string) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	if item.UserID.String() != userID {
		return domain.GroceryItemResponse{}, domain.ErrUserNotAllowed
	}

	return toResponse(item, time.Now()), nil
}

func (s *groceryService) UploadGroceryImage(ctx context.Context, req domain.UploadGroceryImageRequest, userID string) error {
	item, err := s.groceryRepository.GetGroceryItemByID(ctx, req.GroceryItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	fileName := fmt.Sprintf("grocery-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "groceries", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "groceries", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.groceryRepository.UpdateGroceryItem(ctx, item)
}

func parseExpiryDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	expiryDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}
	return &expiryDate, nil
}

// toResponse computes the risk bucket at read time; it is never stored.
func toResponse(item *entities.GroceryItem, now time.Time) domain.GroceryItemResponse {
	return domain.GroceryItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		Price:        item.Price,
		PurchaseDate: item.PurchaseDate,
		ExpiryDate:   item.ExpiryDate,
		Risk:         waste.BucketFor(item.ExpiryDate, now),
		ImageURL:     item.ImageURL,
		CreatedAt:    item.CreatedAt,
	}
}
