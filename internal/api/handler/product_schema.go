package handler

import "github.com/freshsupply/marketplace-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Category    string  `json:"category"    validate:"omitempty,oneof=Spices Herbs Seeds Powders 'Whole Spices' Blends Other Uncategorized"`
	Image       string  `json:"image"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Category    *string  `json:"category"    validate:"omitempty,oneof=Spices Herbs Seeds Powders 'Whole Spices' Blends Other Uncategorized"`
	Image       *string  `json:"image"`
}

type productResponse struct {
	Product *domain.Product `json:"product"`
}

type productListResponse struct {
	Products []*domain.Product `json:"products"`
}

type messageResponse struct {
	Message string `json:"message"`
}
