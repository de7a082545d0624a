package http

import (
	nethttp "net/http"
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func TestApplyTimeouts(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	server := new(nethttp.Server)
	applyTimeouts(server, cfg)

	assert.Equal(t, 10*time.Second, server.ReadTimeout)
	assert.Equal(t, 5*time.Second, server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, server.WriteTimeout)
	assert.Equal(t, time.Minute, server.IdleTimeout)
}
