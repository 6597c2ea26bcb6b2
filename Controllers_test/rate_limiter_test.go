package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The per-IP limiter allows 50 requests per second; the 51st request of a
// burst must be rejected on every route, including unauthenticated ones.
func TestBurstTrafficIsRateLimited(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(t, db)

	for i := 0; i < 50; i++ {
		w := doJSON(t, r, http.MethodGet, "/ping", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
