package tutil

import (
	"os"
	"strings"
)

// IsIntegrationTest reports whether CITADEL_TEST=integration, which enables
// tests that talk to the live API.
func IsIntegrationTest() bool {
	testType := os.Getenv("CITADEL_TEST")
	return strings.ToLower(testType) == "integration"
}
