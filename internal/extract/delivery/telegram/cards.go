package telegram

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"checkey/internal/extract"
)

// cardCache holds the one pending confirmation card per chat. Entries expire
// so an abandoned card cannot be saved days later.
type cardCache struct {
	lru *expirable.LRU[int64, extract.ConfirmationCard]
}

func newCardCache(size int, ttl time.Duration) *cardCache {
	return &cardCache{lru: expirable.NewLRU[int64, extract.ConfirmationCard](size, nil, ttl)}
}

func (c *cardCache) Put(chatID int64, card extract.ConfirmationCard) {
	c.lru.Add(chatID, card)
}

func (c *cardCache) Get(chatID int64) (extract.ConfirmationCard, bool) {
	return c.lru.Get(chatID)
}

func (c *cardCache) Remove(chatID int64) {
	c.lru.Remove(chatID)
}
