package middleware

import (
	"context"
	"net/http"
)

// ShopIDHeader identifies the tenant on every API request.
const ShopIDHeader = "X-Shop-ID"

type contextKey string

const shopIDKey contextKey = "shop_id"

// Tenant resolves the shop from the request header into the context.
// Requests without a shop are rejected; every stored record is scoped to
// one shop and an unscoped query would be meaningless.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shopID := r.Header.Get(ShopIDHeader)
		if shopID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"missing ` + ShopIDHeader + ` header"}`))
			return
		}

		ctx := context.WithValue(r.Context(), shopIDKey, shopID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ShopID returns the tenant resolved by the Tenant middleware, or ""
// when the middleware did not run.
func ShopID(ctx context.Context) string {
	shopID, _ := ctx.Value(shopIDKey).(string)
	return shopID
}
