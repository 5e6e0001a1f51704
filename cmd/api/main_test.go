package main

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServeStopsOnSignal(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	require.NoError(t, serve(srv, quit, time.Second))
}

func TestServeReturnsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := &http.Server{Addr: l.Addr().String(), Handler: http.NotFoundHandler()}
	quit := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() { done <- serve(srv, quit, time.Second) }()

	select {
	case err := <-done:
		require.Error(t, err)
		require.Contains(t, err.Error(), "listen")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the listener failed")
	}
}
