package model

import (
	"context"
	"net"
)

// SecurityLayer abstracts how a server obtains its listener, so TLS can be
// toggled without touching server code.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a network server with a graceful lifecycle.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
