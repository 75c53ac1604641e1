package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/inventory-hub/utils/errors"
	"github.com/muhammadheryan/inventory-hub/utils/logger"
	"go.uber.org/zap"
)

// apiResponse is the stable envelope every endpoint answers with.
type apiResponse struct {
	Success          bool            `json:"success"`
	Data             interface{}     `json:"data,omitempty"`
	Message          string          `json:"message,omitempty"`
	Error            json.RawMessage `json:"error,omitempty"`
	AlreadyProcessed bool            `json:"alreadyProcessed,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("[Transport] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Data: data})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, apiResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	customErr, ok := err.(errors.CustomError)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Internal server error"})
		return
	}

	resp := apiResponse{Success: false, Message: customErr.Error()}
	if detail := customErr.ErrorDetail(); detail != "" {
		// Pass partner/webhook detail through untouched when it is already
		// JSON, otherwise quote it.
		if json.Valid([]byte(detail)) {
			resp.Error = json.RawMessage(detail)
		} else if quoted, err := json.Marshal(detail); err == nil {
			resp.Error = quoted
		}
	}
	writeJSON(w, customErr.ErrorHTTPCode(), resp)
}
