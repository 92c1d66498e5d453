package testutil

import (
	"net"
	"testing"
)

func TestEmulatorAvailable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()

	if !emulatorAvailable(addr) {
		t.Fatalf("expected %s to be reachable", addr)
	}
	_ = ln.Close()
	if emulatorAvailable(addr) {
		t.Fatalf("expected %s to be unreachable after close", addr)
	}
}
