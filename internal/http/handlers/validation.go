package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateOrder(o CreateOrderRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(o.DealerID) == "" {
		errs = append(errs, ValidationError{Field: "dealerId", Description: "Dealer is required"})
	}
	if strings.TrimSpace(o.ProductID) == "" {
		errs = append(errs, ValidationError{Field: "productId", Description: "Product is required"})
	}
	if o.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "Quantity must be greater than zero"})
	}
	return errs
}

func validateInventoryUpdate(u InventoryUpdateRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(u.ProductID) == "" {
		errs = append(errs, ValidationError{Field: "productId", Description: "Product is required"})
	}
	if u.WarehouseStock != nil && *u.WarehouseStock < 0 {
		errs = append(errs, ValidationError{Field: "warehouseStock", Description: "Warehouse stock cannot be negative"})
	}
	if u.DealerStock != nil && *u.DealerStock < 0 {
		errs = append(errs, ValidationError{Field: "dealerStock", Description: "Dealer stock cannot be negative"})
	}
	return errs
}

func validateListing(l CreateListingRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(l.SellerID) == "" {
		errs = append(errs, ValidationError{Field: "sellerId", Description: "Seller is required"})
	}
	if strings.TrimSpace(l.PaintName) == "" {
		errs = append(errs, ValidationError{Field: "paintName", Description: "Paint name is required"})
	}
	if !l.Quantity.IsPositive() {
		errs = append(errs, ValidationError{Field: "quantity", Description: "Quantity must be greater than zero"})
	}
	if !l.Price.IsPositive() {
		errs = append(errs, ValidationError{Field: "price", Description: "Price must be greater than zero"})
	}
	return errs
}
