package mux

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestHealthHandler(t *testing.T) {
	ts := newTestServer(t)

	var expects healthResponse
	ts.assertGet(t, "/health", &expects, 200)
	assert.Equal(t, "OK", expects.Status)
	assert.Equal(t, "v0.0.0-test", expects.Version)
}
