// Package cache provides Valkey (Redis-compatible) client initialization
// and the catalog listing cache used by the storefront API.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the startup ping; an unreachable Valkey should fail
// fast rather than stall boot.
const connectTimeout = 5 * time.Second

// ConnectValkey creates a Valkey client and verifies the connection with a
// ping. The caller owns the returned client and must close it.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	addr := net.JoinHostPort(host, port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping %s: %w", addr, err)
	}

	slog.Info("valkey connected", "addr", addr)
	return client, nil
}
