package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser storefront to call the API with cookies
// (the admin panel fetches with credentials: 'include').
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
