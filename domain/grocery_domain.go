package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddGroceryItem    = "grocery added successfully"
	MessageSuccessUpdateGroceryItem = "grocery updated successfully"
	MessageSuccessDeleteGroceryItem = "grocery deleted successfully"
	MessageSuccessGetGroceryItems   = "groceries retrieved successfully"
	MessageSuccessUploadImage       = "grocery image uploaded successfully"

	MessageFailedAddGroceryItem    = "failed to add grocery"
	MessageFailedUpdateGroceryItem = "failed to update grocery"
	MessageFailedDeleteGroceryItem = "failed to delete grocery"
	MessageFailedGetGroceryItems   = "failed to retrieve groceries"
	MessageFailedUploadImage       = "failed to upload grocery image"

	ErrGroceryItemNotFound = errors.New("grocery not found")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrInvalidPurchaseDate = errors.New("invalid purchase date")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidPrice        = errors.New("price must not be negative")
)

type (
	// Dates travel as "2006-01-02" strings; expiry may be omitted for
	// non-perishable items.
	AddGroceryItemRequest struct {
		Name         string  `json:"name" validate:"required,max=255"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required,max=50"`
		Price        float64 `json:"price" validate:"gte=0"`
		PurchaseDate string  `json:"purchase_date" validate:"required"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
	}

	// Updates replace every field, mirroring the edit form.
	UpdateGroceryItemRequest struct {
		Name         string  `json:"name" validate:"required,max=255"`
		Quantity     float64 `json:"quantity" validate:"required,gt=0"`
		Unit         string  `json:"unit" validate:"required,max=50"`
		Price        float64 `json:"price" validate:"gte=0"`
		PurchaseDate string  `json:"purchase_date" validate:"required"`
		ExpiryDate   string  `json:"expiry_date" validate:"omitempty"`
	}

	GroceryItemResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Quantity     float64    `json:"quantity"`
		Unit         string     `json:"unit"`
		Price        float64    `json:"price"`
		PurchaseDate time.Time  `json:"purchase_date"`
		ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
		Risk         string     `json:"risk,omitempty"`
		ImageURL     string     `json:"image_url,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
	}

	UploadGroceryImageRequest struct {
		GroceryItemID string                `json:"grocery_id" form:"grocery_id" validate:"required,uuid"`
		Image         *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
