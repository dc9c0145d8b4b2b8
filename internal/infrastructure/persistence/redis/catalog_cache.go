package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/circuitbreaker"
)

// CatalogCache 目录读缓存
// 设计说明：
// 1. 只缓存"按ISBN查图书"这一条读路径,Key设计：book:isbn:{isbn}
// 2. 借阅引擎绝不读本缓存——容量判定必须在事务内读当前数据库状态,
//    跨请求缓存容量计数会让并发检查观察到过期值
// 3. 写路径(更新/删除图书)主动失效,TTL兜底
// 4. Redis故障由熔断器隔离：熔断打开时GetBook直接返回未命中,
//    目录查询回源MySQL,服务不因缓存故障而不可用
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	cb     *circuitbreaker.CircuitBreaker
}

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("catalog cache: miss")

// NewCatalogCache 创建目录缓存
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	cb := circuitbreaker.NewCircuitBreaker("catalog-cache", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &CatalogCache{
		client: client,
		ttl:    ttl,
		cb:     cb,
	}
}

// bookKey 构造缓存Key
func bookKey(isbn string) string {
	return fmt.Sprintf("book:isbn:%s", isbn)
}

// GetBook 按ISBN读取缓存的图书
// 未命中/熔断打开/Redis故障统一返回ErrCacheMiss,调用方回源数据库
func (c *CatalogCache) GetBook(ctx context.Context, isbn string) (*book.Book, error) {
	var data []byte

	err := c.cb.Execute(func() error {
		raw, err := c.client.Get(ctx, bookKey(isbn)).Bytes()
		if errors.Is(err, redis.Nil) {
			// 未命中是正常结果,不计入熔断失败
			data = nil
			return nil
		}
		if err != nil {
			return err
		}
		data = raw
		return nil
	})
	if err != nil {
		// 熔断打开或Redis故障,按未命中处理
		return nil, ErrCacheMiss
	}
	if data == nil {
		return nil, ErrCacheMiss
	}

	var b book.Book
	if err := json.Unmarshal(data, &b); err != nil {
		// 缓存内容损坏,按未命中处理(回源后会被覆盖)
		return nil, ErrCacheMiss
	}

	return &b, nil
}

// SetBook 写入图书缓存
// 写失败只影响命中率,不影响正确性,错误交给熔断器统计后忽略
func (c *CatalogCache) SetBook(ctx context.Context, b *book.Book) {
	data, err := json.Marshal(b)
	if err != nil {
		return
	}

	_ = c.cb.Execute(func() error {
		return c.client.Set(ctx, bookKey(b.ISBN), data, c.ttl).Err()
	})
}

// InvalidateBook 失效图书缓存(更新/删除图书后调用)
func (c *CatalogCache) InvalidateBook(ctx context.Context, isbn string) {
	_ = c.cb.Execute(func() error {
		return c.client.Del(ctx, bookKey(isbn)).Err()
	})
}
