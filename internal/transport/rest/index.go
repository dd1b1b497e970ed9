package rest

import "net/http"

// Index handles GET /.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "GiftCapsule API is running"})
}
