// Package testutil starts backing services in containers for integration tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
)

// startContainer runs req, terminates it when the test finishes, and returns
// the "host:port" endpoint of its first exposed port.
//
// Precondition: Docker must be available; req exposes exactly one port.
func startContainer(t *testing.T, req testcontainers.ContainerRequest) (testcontainers.Container, string) {
	t.Helper()
	ctx := context.Background()
	start := time.Now()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("starting %s container: %v [%s]", req.Image, err, time.Since(start))
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("getting %s endpoint: %v", req.Image, err)
	}
	t.Logf("%s container started at %s [%s]", req.Image, endpoint, time.Since(start))
	return container, endpoint
}
