package testutil

import (
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer wraps a testcontainers Redis instance.
type RedisContainer struct {
	container testcontainers.Container
	// Addr is the "host:port" of the mapped Redis port.
	Addr string
}

// NewRedisContainer starts a Redis test container.
//
// Postcondition: Returns a running container, or fails the test.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	container, addr := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForLog("Ready to accept connections").
			WithStartupTimeout(30 * time.Second),
	})
	return &RedisContainer{container: container, Addr: addr}
}
