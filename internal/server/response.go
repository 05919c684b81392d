package server

import (
	"encoding/json"
	"net/http"
)

// ServiceValue is the JSON body of every plain HTTP response. Code mirrors
// the HTTP status so bodies remain self-describing when proxies rewrite
// statuses; message and data are omitted when empty.
type ServiceValue[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`
}

func writeServiceValue(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ServiceValue[struct{}]{Code: status, Message: message})
}
