package model

type Warehouse struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type WarehouseRequest struct {
	Name string `json:"name" validate:"required"`
}
