package model

import (
	"encoding/json"
	"time"

	"github.com/muhammadheryan/inventory-hub/constant"
)

type PurchaseRequest struct {
	ID          uint64                         `db:"id" json:"id"`
	Reference   string                         `db:"reference" json:"reference"`
	WarehouseID uint64                         `db:"warehouse_id" json:"warehouse_id"`
	Status      constant.PurchaseRequestStatus `db:"status" json:"status"`
	CreatedAt   time.Time                      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time                      `db:"updated_at" json:"updated_at"`
}

type PurchaseRequestItem struct {
	ID                uint64 `db:"id" json:"id"`
	PurchaseRequestID uint64 `db:"purchase_request_id" json:"purchase_request_id"`
	ProductID         uint64 `db:"product_id" json:"product_id"`
	Quantity          int    `db:"quantity" json:"quantity"`
}

// PurchaseRequestDetail is the request aggregate callers receive: the
// request row enriched with its items.
type PurchaseRequestDetail struct {
	PurchaseRequest
	Items []PurchaseRequestItem `json:"items"`
}

type PurchaseRequestItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreatePurchaseRequestRequest struct {
	Reference   string                       `json:"reference" validate:"required"`
	WarehouseID uint64                       `json:"warehouse_id" validate:"required"`
	Products    []PurchaseRequestItemRequest `json:"products" validate:"required,min=1,dive"`
}

// UpdatePurchaseRequestRequest carries a partial update; nil fields keep
// their stored values. A nil Products slice leaves items untouched.
type UpdatePurchaseRequestRequest struct {
	Reference   *string                      `json:"reference"`
	WarehouseID *uint64                      `json:"warehouse_id"`
	Status      *string                      `json:"status" validate:"omitempty,oneof=DRAFT PENDING COMPLETED"`
	Products    []PurchaseRequestItemRequest `json:"products" validate:"omitempty,dive"`
}

type UpdatePurchaseRequestResponse struct {
	PurchaseRequest PurchaseRequestDetail `json:"purchase_request"`
	FoomHubResponse json.RawMessage       `json:"foomHubResponse,omitempty"`
}

type InsertPurchaseRequestTxItem struct {
	Reference   string
	WarehouseID uint64
	Status      constant.PurchaseRequestStatus
}

type UpdatePurchaseRequestTxItem struct {
	Reference   string
	WarehouseID uint64
	Status      constant.PurchaseRequestStatus
}
