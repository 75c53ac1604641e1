package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrConflict
	ErrInvalidTransition
	ErrEmptyItems
	ErrUpstreamSync
	ErrInvalidVendor
	ErrWebhookNoItems
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrConflict:          "duplicate value for unique field",
	ErrInvalidTransition: "operation not allowed for current status",
	ErrEmptyItems:        "purchase request has no items",
	ErrUpstreamSync:      "failed to sync with FOOM Hub",
	ErrInvalidVendor:     "invalid vendor",
	ErrWebhookNoItems:    "failed to process any stock items",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrConflict:          http.StatusBadRequest,
	ErrInvalidTransition: http.StatusBadRequest,
	ErrEmptyItems:        http.StatusBadRequest,
	ErrUpstreamSync:      http.StatusBadGateway,
	ErrInvalidVendor:     http.StatusBadRequest,
	ErrWebhookNoItems:    http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrConflict:          "0004",
	ErrInvalidTransition: "0005",
	ErrEmptyItems:        "0006",
	ErrUpstreamSync:      "0007",
	ErrInvalidVendor:     "0008",
	ErrWebhookNoItems:    "0009",
}
