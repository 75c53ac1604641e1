package model

type Product struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	SKU  string `db:"sku" json:"sku"`
}

type ProductRequest struct {
	Name string `json:"name" validate:"required"`
	SKU  string `json:"sku" validate:"required"`
}
