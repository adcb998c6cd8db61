package cache

import (
	"cinema_admin/invoice"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tickets:pdf:"

// TicketPDFCache giữ file vé đã render theo mã đơn.
// Client nil thì cache tắt: Get luôn miss, Set không làm gì.
type TicketPDFCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTicketPDFCache(rdb *redis.Client, ttl time.Duration) *TicketPDFCache {
	return &TicketPDFCache{rdb: rdb, ttl: ttl}
}

func key(orderCode string) string {
	return keyPrefix + orderCode
}

func (c *TicketPDFCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Get trả về (nil, nil) khi chưa có trong cache
func (c *TicketPDFCache) Get(ctx context.Context, orderCode string) (*invoice.Document, error) {
	if !c.Enabled() {
		return nil, nil
	}
	fields, err := c.rdb.HGetAll(ctx, key(orderCode)).Result()
	if err != nil {
		return nil, err
	}
	content, ok := fields["content"]
	if !ok || content == "" {
		return nil, nil
	}
	return &invoice.Document{
		FileName: fields["name"],
		Content:  []byte(content),
	}, nil
}

func (c *TicketPDFCache) Set(ctx context.Context, orderCode string, doc *invoice.Document) error {
	if !c.Enabled() || doc == nil {
		return nil
	}
	k := key(orderCode)
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, k, "name", doc.FileName, "content", doc.Content)
		if c.ttl > 0 {
			pipe.Expire(ctx, k, c.ttl)
		}
		return nil
	})
	return err
}

// Invalidate xoá file cũ khi đơn thay đổi (đổi ghế, hoàn vé)
func (c *TicketPDFCache) Invalidate(ctx context.Context, orderCode string) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Del(ctx, key(orderCode)).Err()
}
