package memory

import (
	"time"

	"helpdesk-chatbot-be/internal/dto"

	"github.com/patrickmn/go-cache"
)

const analyticsKey = "analytics_summary"

// AnalyticsCache keeps the computed dashboard summary for a short TTL so
// repeated admin polls do not hammer the database.
type AnalyticsCache struct {
	cache *cache.Cache
}

func NewAnalyticsCache(ttl time.Duration) *AnalyticsCache {
	c := cache.New(ttl, 10*time.Minute)
	return &AnalyticsCache{
		cache: c,
	}
}

func (r *AnalyticsCache) Save(summary *dto.AnalyticsResponse) {
	r.cache.Set(analyticsKey, summary, cache.DefaultExpiration)
}

func (r *AnalyticsCache) Get() (*dto.AnalyticsResponse, bool) {
	if x, found := r.cache.Get(analyticsKey); found {
		return x.(*dto.AnalyticsResponse), true
	}
	return nil, false
}

func (r *AnalyticsCache) Invalidate() {
	r.cache.Delete(analyticsKey)
}
