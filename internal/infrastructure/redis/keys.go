package redis

import (
	"fmt"
	"time"
)

// ProductCacheTTL bounds how long a cached product detail may be served. A
// fill that lost a race with a write's invalidation is stale for at most this long.
const ProductCacheTTL = 30 * time.Second

func TokenKey(userID int64) string {
	return fmt.Sprintf("user:%d:token", userID)
}

func ProductKey(productID int64) string {
	return fmt.Sprintf("product:%d", productID)
}
