package services

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// signedURLCache memoizes minted signed URLs by storage path. Entries live
// for half the URL's validity window, so a cache hit always hands out a URL
// with at least half its lifetime remaining.
type signedURLCache struct {
	cache *ttlcache.Cache[string, string]
	ttl   time.Duration
}

func newSignedURLCache(urlLifetime time.Duration) *signedURLCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, string](urlLifetime/2),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)
	go cache.Start()

	return &signedURLCache{cache: cache, ttl: urlLifetime / 2}
}

func (c *signedURLCache) get(path string) (string, bool) {
	item := c.cache.Get(path)
	if item == nil {
		return "", false
	}
	return item.Value(), true
}

func (c *signedURLCache) set(path, url string) {
	c.cache.Set(path, url, c.ttl)
}
