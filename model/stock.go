package model

type Stock struct {
	ID          uint64 `db:"id" json:"id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	ProductID   uint64 `db:"product_id" json:"product_id"`
	Quantity    int64  `db:"quantity" json:"quantity"`
}

type StockRequest struct {
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	ProductID   uint64 `json:"product_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
}
