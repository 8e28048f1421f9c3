package handler

import "github.com/freshsupply/marketplace-api/internal/core/domain"

type registerBuyerRequest struct {
	ShopName      string `json:"shop_name"       validate:"required"`
	ShopOwnerName string `json:"shop_owner_name" validate:"required"`
	ShopLocation  string `json:"shop_location"   validate:"required"`
	ContactNumber string `json:"contact_number"  validate:"required,contact"`
	Email         string `json:"email"           validate:"required,email"`
	Password      string `json:"password"        validate:"required,min=6"`
}

type registerSupplierRequest struct {
	FullName      string `json:"full_name"      validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required,contact"`
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type buyerResponse struct {
	Buyer *domain.Buyer `json:"buyer"`
}

type buyerLoginResponse struct {
	Token string        `json:"token"`
	Buyer *domain.Buyer `json:"buyer"`
}

type supplierResponse struct {
	Supplier *domain.Supplier `json:"supplier"`
}

type supplierLoginResponse struct {
	Token    string           `json:"token"`
	Supplier *domain.Supplier `json:"supplier"`
}
