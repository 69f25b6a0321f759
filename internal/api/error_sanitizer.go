package api

import (
	"log"
	"net/http"
)

// Internal errors (database details, file paths) must never leak to API
// consumers. 5xx responses carry a generic safe message while the full error
// is logged server-side for diagnostics.

// respondSafeError logs the internal error and sends a sanitized JSON error
// response to the client.
func respondSafeError(w http.ResponseWriter, code int, internalErr error, publicMsg string) {
	if internalErr != nil {
		log.Printf("ERROR [%d]: %s: %v", code, publicMsg, internalErr)
	}
	respondJSON(w, code, map[string]string{"error": publicMsg})
}
