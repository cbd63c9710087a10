package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveReward(t *testing.T) {
	before := testutil.ToFloat64(rewardsTotal.WithLabelValues("LIKE", OutcomeRewarded))
	coinsBefore := testutil.ToFloat64(coinsCredited.WithLabelValues("LIKE"))

	ObserveReward("LIKE", OutcomeRewarded, 10)
	ObserveReward("LIKE", OutcomeSkipped, 0)

	assert.Equal(t, before+1, testutil.ToFloat64(rewardsTotal.WithLabelValues("LIKE", OutcomeRewarded)))
	assert.Equal(t, coinsBefore+10, testutil.ToFloat64(coinsCredited.WithLabelValues("LIKE")))
}

func TestMiddleware(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/posts/{id}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/posts/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/posts/{id}", "418")))
}

func TestHandler(t *testing.T) {
	ObserveReward("SAVE", OutcomeRewarded, 10)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "bsmart_rewards_total"))
}
