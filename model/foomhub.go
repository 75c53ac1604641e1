package model

// FoomSyncDetail is one line of the outbound sync payload.
type FoomSyncDetail struct {
	ProductName string `json:"product_name"`
	SKUBarcode  string `json:"sku_barcode"`
	Qty         int    `json:"qty"`
}

// FoomSyncRequest is the payload posted to FOOM Hub when a purchase
// request transitions to PENDING.
type FoomSyncRequest struct {
	Vendor    string           `json:"vendor"`
	Reference string           `json:"reference"`
	QtyTotal  int              `json:"qty_total"`
	Details   []FoomSyncDetail `json:"details"`
}
