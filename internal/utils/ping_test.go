package utils

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingServiceReachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = PingService(context.Background(), "http://"+ln.Addr().String(), time.Second)

	assert.NoError(t, err)
}

func TestPingServiceUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	assert.Error(t, PingService(context.Background(), "http://"+addr, 200*time.Millisecond))
}

func TestPingServiceInvalidURL(t *testing.T) {
	assert.ErrorContains(t, PingService(context.Background(), "not a url", time.Second), "invalid URL")
}
