package services_test

import (
	"net"
	"testing"

	"github.com/fitstack/fittrack/internal/config"
	"github.com/fitstack/fittrack/internal/services"
)

func TestInitAuthorizerRetriesAfterFailure(t *testing.T) {
	cfg := &config.Config{
		AuthzURL:      "http://127.0.0.1:1", // nothing listens here
		AuthzClientID: "test_client",
	}

	if err := services.InitAuthorizer(cfg, "http", "localhost"); err == nil {
		t.Fatal("Expected init to fail against a dead endpoint")
	}
	if services.IsAuthorizerInitialized() {
		t.Fatal("A failed init must not mark the client initialized")
	}
	if _, err := services.ValidateSession("cookie", []string{"user"}); err == nil {
		t.Error("Expected validation to fail while uninitialized")
	}

	// Stand the endpoint up and retry
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to open listener: %v", err)
	}
	defer ln.Close()

	cfg.AuthzURL = "http://" + ln.Addr().String()
	if err := services.InitAuthorizer(cfg, "http", "localhost"); err != nil {
		t.Fatalf("Expected the retry against a live endpoint to succeed: %v", err)
	}
	if !services.IsAuthorizerInitialized() {
		t.Error("Expected the client to be initialized after a successful retry")
	}

	// Once initialized, further calls are no-ops even if the endpoint
	// goes away again
	ln.Close()
	if err := services.InitAuthorizer(cfg, "http", "localhost"); err != nil {
		t.Errorf("Expected init to be a no-op once initialized, got %v", err)
	}
}
