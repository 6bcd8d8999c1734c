// Package limiter 基于令牌桶的接口限流
package limiter

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face 限流器接口
type Face interface {
	// Key 从请求中提取限流键
	Key(c *gin.Context) string
	// GetBucket 获取键对应的令牌桶
	GetBucket(key string) (*ratelimit.Bucket, bool)
	// AddBuckets 注册限流规则
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule 令牌桶规则
type BucketRule struct {
	// Key 限流键（接口路径前缀）
	Key string
	// FillInterval 放令牌的间隔
	FillInterval time.Duration
	// Capacity 桶容量
	Capacity int64
	// Quantum 每次放入的令牌数
	Quantum int64
}

// Limiter 存放键到令牌桶的映射
type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}

// MethodLimiter 以请求路径作为限流键的限流器
type MethodLimiter struct {
	*Limiter
}

func NewMethodLimiter() Face {
	return MethodLimiter{
		Limiter: &Limiter{limiterBuckets: make(map[string]*ratelimit.Bucket)},
	}
}

// Key 提取请求路径（去掉查询串）
func (l MethodLimiter) Key(c *gin.Context) string {
	uri := c.Request.RequestURI
	if index := strings.Index(uri, "?"); index >= 0 {
		return uri[:index]
	}
	return uri
}

func (l MethodLimiter) GetBucket(key string) (*ratelimit.Bucket, bool) {
	for prefix, bucket := range l.limiterBuckets {
		if strings.HasPrefix(key, prefix) {
			return bucket, true
		}
	}
	return nil, false
}

func (l MethodLimiter) AddBuckets(rules ...BucketRule) Face {
	for _, rule := range rules {
		if _, ok := l.limiterBuckets[rule.Key]; !ok {
			l.limiterBuckets[rule.Key] = ratelimit.NewBucketWithQuantum(rule.FillInterval, rule.Capacity, rule.Quantum)
		}
	}
	return l
}
