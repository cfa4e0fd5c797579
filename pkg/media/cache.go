package media

import (
	"encoding/base64"
	"fmt"
	"image"
	"sync"

	"github.com/go-cardkit/cardkit/pkg/errors"
	"github.com/go-cardkit/cardkit/pkg/platform"
)

// defaultCacheCapacity bounds the number of decoded images kept resident.
const defaultCacheCapacity = 32

// Cache fetches card images through the native side and caches the decoded
// results by URL.
type Cache struct {
	channel *platform.MethodChannel

	mu       sync.Mutex
	images   map[string]image.Image
	order    []string
	capacity int
}

var (
	defaultCache     *Cache
	defaultCacheOnce sync.Once
)

// DefaultCache returns the process-wide image cache.
func DefaultCache() *Cache {
	defaultCacheOnce.Do(func() {
		defaultCache = NewCache(defaultCacheCapacity)
	})
	return defaultCache
}

// NewCache creates a cache holding at most capacity decoded images.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &Cache{
		channel:  platform.NewMethodChannel("cardkit/media"),
		images:   make(map[string]image.Image),
		capacity: capacity,
	}
}

// Get returns the cached image for a URL, fetching and decoding it through
// the native side on a miss.
func (c *Cache) Get(url string) (image.Image, error) {
	if url == "" {
		return nil, fmt.Errorf("fetch image: %w", platform.ErrInvalidArguments)
	}

	c.mu.Lock()
	if img, ok := c.images[url]; ok {
		c.mu.Unlock()
		return img, nil
	}
	c.mu.Unlock()

	img, err := c.fetch(url)
	if err != nil {
		errors.Report(&errors.CardKitError{
			Op:      "media.Get",
			Kind:    errors.KindMedia,
			Channel: c.channel.Name(),
			Err:     err,
		})
		return nil, err
	}

	c.mu.Lock()
	c.store(url, img)
	c.mu.Unlock()
	return img, nil
}

// Prefetch warms the cache for a set of URLs. Individual failures are
// reported and skipped; prefetching is best effort.
func (c *Cache) Prefetch(urls []string) {
	for _, url := range urls {
		if url == "" {
			continue
		}
		c.Get(url)
	}
}

func (c *Cache) fetch(url string) (image.Image, error) {
	result, err := c.channel.Invoke("fetchImage", map[string]any{"url": url})
	if err != nil {
		return nil, err
	}
	encoded, ok := result.(string)
	if !ok || encoded == "" {
		return nil, fmt.Errorf("fetch image %q: unexpected result %T", url, result)
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("fetch image %q: %w", url, err)
	}
	img, _, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("fetch image %q: %w", url, err)
	}
	return img, nil
}

// store inserts under the capacity bound, evicting the oldest entry first.
// Caller holds c.mu.
func (c *Cache) store(url string, img image.Image) {
	if _, ok := c.images[url]; ok {
		c.images[url] = img
		return
	}
	for len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.images, oldest)
	}
	c.images[url] = img
	c.order = append(c.order, url)
}
