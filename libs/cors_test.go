package libs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testOrigins = []string{"https://anshapparels.com", "http://localhost:3000"}

func TestCORSHeadersEchoesAllowedOrigin(t *testing.T) {
	headers := CORSHeaders(testOrigins, "http://localhost:3000")

	assert.Equal(t, "http://localhost:3000", headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "true", headers["Access-Control-Allow-Credentials"])
	assert.Equal(t, "Origin", headers["Vary"])
}

func TestCORSHeadersOmitsDisallowedOrigin(t *testing.T) {
	headers := CORSHeaders(testOrigins, "https://evil.example")

	_, ok := headers["Access-Control-Allow-Origin"]
	assert.False(t, ok)
	assert.Equal(t, "GET,POST,PUT,PATCH,DELETE,OPTIONS", headers["Access-Control-Allow-Methods"])
}

func TestCORSHeadersWithoutOriginUsesFirstAllowed(t *testing.T) {
	headers := CORSHeaders(testOrigins, "")
	assert.Equal(t, "https://anshapparels.com", headers["Access-Control-Allow-Origin"])
}

func TestCORSHeadersAlwaysSet(t *testing.T) {
	for _, origin := range []string{"", "https://anshapparels.com", "https://evil.example"} {
		headers := CORSHeaders(testOrigins, origin)
		assert.Equal(t, "Content-Type, Authorization, X-Requested-From", headers["Access-Control-Allow-Headers"], origin)
		assert.Equal(t, "86400", headers["Access-Control-Max-Age"], origin)
		assert.Equal(t, "Origin", headers["Vary"], origin)
	}
}

func TestCORSHeadersNoAllowList(t *testing.T) {
	_, ok := CORSHeaders(nil, "")["Access-Control-Allow-Origin"]
	assert.False(t, ok)
}
