package model

// WebhookStockDetail is one delivered line in the partner's notification.
// Qty is a pointer so a missing field is distinguishable from zero.
type WebhookStockDetail struct {
	ProductName string `json:"product_name"`
	SKUBarcode  string `json:"sku_barcode"`
	Qty         *int   `json:"qty"`
}

type WebhookStockRequest struct {
	Vendor    string               `json:"vendor" validate:"required"`
	Reference string               `json:"reference" validate:"required"`
	QtyTotal  int                  `json:"qty_total"`
	Details   []WebhookStockDetail `json:"details" validate:"required"`
}

type StockUpdateInfo struct {
	ProductID     uint64 `json:"product_id"`
	ProductName   string `json:"product_name"`
	SKUBarcode    string `json:"sku_barcode"`
	QuantityAdded int    `json:"quantity_added"`
	NewStockLevel int64  `json:"new_stock_level"`
}

type WebhookItemError struct {
	ProductName string `json:"product_name,omitempty"`
	SKUBarcode  string `json:"sku_barcode,omitempty"`
	Error       string `json:"error"`
}

// WebhookStockResult is the full accounting returned after a delivery is
// applied. AlreadyProcessed marks an idempotent replay; nothing was mutated.
type WebhookStockResult struct {
	PurchaseRequestID uint64             `json:"purchase_request_id"`
	Reference         string             `json:"reference"`
	WarehouseID       uint64             `json:"warehouse_id"`
	QtyTotal          int                `json:"qty_total,omitempty"`
	ItemsProcessed    int                `json:"items_processed"`
	ItemsFailed       int                `json:"items_failed"`
	StockUpdates      []StockUpdateInfo  `json:"stock_updates"`
	Errors            []WebhookItemError `json:"errors,omitempty"`
	AlreadyProcessed  bool               `json:"alreadyProcessed,omitempty"`
}
