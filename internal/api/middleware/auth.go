package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// UserIDHeader заголовок с идентификатором пользователя админ-панели
const UserIDHeader = "X-User-ID"

const msgUnauthorized = "требуется заголовок X-User-ID"

// Auth проверяет наличие корректного заголовка X-User-ID.
// Административные ручки доступны только аутентифицированным
// пользователям; проверку подписи делает входной gateway.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(UserIDHeader)
		if userIDStr == "" {
			respondUnauthorized(w)
			return
		}

		if _, err := strconv.ParseInt(userIDStr, 10, 64); err != nil {
			respondUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msgUnauthorized})
}
