package fixtures

import (
	"context"
	"net"
)

// BMCLan returns fixed BMC LAN configuration values.
type BMCLan struct {
	IP   string
	IPv6 string
	MAC  string
	Err  error
}

// Address implements the hardware.BMCLan interface.
func (b *BMCLan) Address(_ context.Context) (net.IP, error) {
	if b.Err != nil {
		return nil, b.Err
	}

	return net.ParseIP(b.IP), nil
}

// V6Address implements the hardware.BMCLan interface.
func (b *BMCLan) V6Address(_ context.Context) (net.IP, error) {
	if b.Err != nil {
		return nil, b.Err
	}

	return net.ParseIP(b.IPv6), nil
}

// Mac implements the hardware.BMCLan interface.
func (b *BMCLan) Mac(_ context.Context) (net.HardwareAddr, error) {
	if b.Err != nil {
		return nil, b.Err
	}

	if b.MAC == "" {
		return nil, nil
	}

	return net.ParseMAC(b.MAC)
}
