package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the mtour application
// Pattern: mtour:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_SHORT = 1 * time.Hour    // 1 hour - for catalog listings
	TTL_SEMI_STATIC_QUICK = 15 * time.Minute // 15 minutes - for tour details
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_SHORT = 5 * time.Minute // 5 minutes - for availability views
)

// Highly Dynamic (Micro TTL: real-time sensitive)
const (
	TTL_REALTIME_SHORT = 30 * time.Second // 30 seconds - for live dashboard data
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "mtour"
)

// ================== CATALOG MODULE ==================

// Catalog Cache Keys
const (
	CACHE_KEY_CATALOG_LIST = CACHE_PREFIX + ":catalog:list"         // + :page:X:limit:Y
	CACHE_KEY_TOUR_BY_SLUG = CACHE_PREFIX + ":catalog:detail:slug:" // + tour-slug
)

// Catalog Cache TTLs
const (
	TTL_CATALOG_LIST = TTL_SEMI_STATIC_SHORT // 1 hour
	TTL_TOUR_DETAIL  = TTL_SEMI_STATIC_QUICK // 15 minutes
)

// ================== OPS MODULE ==================

// Ops Dashboard Cache Keys
const (
	CACHE_KEY_OPS_KPI = CACHE_PREFIX + ":ops:kpi:snapshot" // live dashboard KPI snapshot
)

// Ops Cache TTLs
const (
	TTL_OPS_KPI = TTL_REALTIME_SHORT // 30 seconds
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_CATALOG_ALL = CACHE_PREFIX + ":catalog:*"
	PATTERN_INVALIDATE_OPS_ALL     = CACHE_PREFIX + ":ops:*"
)

// ================== KEY BUILDERS ==================

// BuildCatalogListKey builds the cache key for a paginated catalog listing
func BuildCatalogListKey(page, limit int, country string) string {
	key := fmt.Sprintf("%s:page:%d:limit:%d", CACHE_KEY_CATALOG_LIST, page, limit)
	if country != "" {
		key += ":country:" + country
	}
	return key
}

// BuildTourDetailKey builds the cache key for a published tour detail page
func BuildTourDetailKey(slug string) string {
	return CACHE_KEY_TOUR_BY_SLUG + slug
}
