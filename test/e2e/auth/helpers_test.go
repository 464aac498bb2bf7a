package auth_test

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/notedesk/pkg/authsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for session service end-to-end tests.
 * This includes container setup, service operations, and assertions.
 */

const (
	testImageName    = "notedesk-auth-test:latest"
	testBuildVersion = "e2e"

	accessSecret  = "e2e-access-secret-0123456789"
	refreshSecret = "e2e-refresh-secret-9876543210"

	adminUsername = "admin"
	adminPassword = "Admin123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	fmt.Fprintf(os.Stdout, "Building Auth Service Docker image...")

	// Build the Docker image once before all tests
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	// Run all tests
	exitCode := m.Run()

	// Clean up the Docker image after all tests complete
	fmt.Fprintf(os.Stdout, "Cleaning up Auth Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"--build-arg", "VERSION="+testBuildVersion,
		"-f", "../../../cmd/auth/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

func baseEnv() map[string]string {
	return map[string]string{
		"ACCESS_TOKEN_SECRET":  accessSecret,
		"REFRESH_TOKEN_SECRET": refreshSecret,
		"BOOTSTRAP_USERNAME":   adminUsername,
		"BOOTSTRAP_PASSWORD":   adminPassword,
		"BOOTSTRAP_ROLES":      "Admin,Employee",
		"ENV":                  "test",
		"LOG_LEVEL":            "info",
		"LOG_FORMAT":           "json",
	}
}

// relaxedEnv raises the rate limits. Tests often make many rapid requests
// which would otherwise hit the strict production limits.
func relaxedEnv() map[string]string {
	env := baseEnv()
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"
	return env
}

// startAuthContainer starts the session service in a container and returns
// the base URL. The container is terminated when the test ends.
func startAuthContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("e2e tests need docker")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	// Get the mapped port
	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// setupAuthContainer starts the service with relaxed rate limits.
func setupAuthContainer(t *testing.T) string {
	t.Helper()
	return startAuthContainer(t, relaxedEnv())
}

// setupAuthContainerWithDefaultRateLimits starts the service with DEFAULT
// rate limits, for testing that rate limiting actually works.
func setupAuthContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startAuthContainer(t, baseEnv())
}

// performLogin logs in as the bootstrap admin.
func performLogin(t *testing.T, client *authsdk.SDKClient) *authsdk.Session {
	t.Helper()

	session, err := client.Login(t.Context(), adminUsername, adminPassword)
	require.NoError(t, err, "Login should succeed")
	require.NotNil(t, session, "Session should not be nil")
	require.NotEmpty(t, session.AccessToken())
	require.NotEmpty(t, session.RefreshCookie())

	return session
}

// requireStatus asserts err is an *authsdk.APIError with the given status.
func requireStatus(t *testing.T, err error, status int) *authsdk.APIError {
	t.Helper()
	require.Error(t, err)

	var apiErr *authsdk.APIError
	require.True(t, errors.As(err, &apiErr), "expected an API error, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode, "unexpected status, error: %v", apiErr)
	return apiErr
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *authsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
