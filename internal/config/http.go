package config

import (
	"encoding/json"
	"net/http"
	"strings"
)

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// UnsupportedLanguage writes the client error every endpoint returns when a
// language code is outside the supported set.
func UnsupportedLanguage(w http.ResponseWriter) {
	http.Error(w, "unsupported language, supported: "+strings.Join(SupportedLanguageCodes(), ", "), http.StatusBadRequest)
}
