package sender

import (
	"fmt"
	"net"

	"github.com/arloliu/lineproto/errs"
)

// AddrResolver resolves destination and bind-interface host names to TCP
// addresses. The default implementation resolves through the standard
// library; tests and embedders may inject their own via WithResolver.
type AddrResolver interface {
	// ResolveHostPort resolves a destination host and port.
	ResolveHostPort(host, port string) (*net.TCPAddr, error)

	// ResolveHost resolves a local interface host, port zero.
	ResolveHost(host string) (*net.TCPAddr, error)
}

// netResolver resolves with net.ResolveTCPAddr, IPv4 only.
type netResolver struct{}

var _ AddrResolver = netResolver{}

func (netResolver) ResolveHostPort(host, port string) (*net.TCPAddr, error) {
	hostPort := net.JoinHostPort(host, port)
	addr, err := net.ResolveTCPAddr("tcp4", hostPort)
	if err != nil {
		return nil, fmt.Errorf("%w: could not resolve %q: %v",
			errs.ErrAddrResolution, hostPort, err)
	}

	return addr, nil
}

func (netResolver) ResolveHost(host string) (*net.TCPAddr, error) {
	addr, err := net.ResolveTCPAddr("tcp4", net.JoinHostPort(host, "0"))
	if err != nil {
		return nil, fmt.Errorf("%w: could not resolve interface address %q: %v",
			errs.ErrAddrResolution, host, err)
	}

	return addr, nil
}
