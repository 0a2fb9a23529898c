package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// HeaderAdminToken заголовок с токеном администратора
const HeaderAdminToken = "X-Admin-Token"

const msgUnauthorized = "missing or invalid admin token"

// AdminAuth middleware доступа к админским ручкам.
// Сравнение токена константное по времени.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(HeaderAdminToken)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": msgUnauthorized})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
