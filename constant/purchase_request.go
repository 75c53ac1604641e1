package constant

type PurchaseRequestStatus string

const (
	PurchaseRequestStatusDraft     PurchaseRequestStatus = "DRAFT"
	PurchaseRequestStatusPending   PurchaseRequestStatus = "PENDING"
	PurchaseRequestStatusCompleted PurchaseRequestStatus = "COMPLETED"
)

// VendorName is the fixed fulfillment-partner identity. Outbound sync
// payloads carry it and inbound webhooks must present it.
const VendorName = "PT FOOM LAB GLOBAL"
