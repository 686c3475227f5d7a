package desk_test

import (
	"testing"

	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

// TestLivezEndpoint verifies the liveness endpoint of the containerised API.
func TestLivezEndpoint(t *testing.T) {
	baseURL := setupAPIContainer(t)
	client := clientsdk.NewSDKClient(baseURL, 0)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
}

// TestReadyzEndpoint verifies the database check behind readiness.
func TestReadyzEndpoint(t *testing.T) {
	baseURL := setupAPIContainer(t)
	client := clientsdk.NewSDKClient(baseURL, 0)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	if health.Checks == nil || health.Checks.Database != "ok" {
		t.Fatalf("database check not ok: %+v", health.Checks)
	}
}
