package inventory

import (
	"context"
	"net"

	"github.com/bmc-toolbox/common"
	"github.com/metal-toolbox/hwmanager/internal/model"
)

//go:generate mockgen -source collector.go -destination=mock_collector.go -package=inventory

// Collector is the set of accessors the inventory is assembled from.
//
// An accessor returns model.ErrIncompatibleHardwareMethod when the field
// cannot be provided on the running hardware.
type Collector interface {
	NetworkInterfaces(ctx context.Context) ([]*common.NIC, error)
	CPUs(ctx context.Context) ([]*common.CPU, error)
	BlockDevices(ctx context.Context) ([]*common.Drive, error)
	Memory(ctx context.Context) ([]*common.Memory, error)
	SystemVendor(ctx context.Context) (*model.SystemVendor, error)
	BootInfo(ctx context.Context) (*model.BootInfo, error)
	Hostname(ctx context.Context) (string, error)

	// BMCAddress returns the BMC IPv4 address, a nil address with a nil error means unknown.
	BMCAddress(ctx context.Context) (net.IP, error)
	// BMCV6Address returns the BMC IPv6 address, a nil address with a nil error means unknown.
	BMCV6Address(ctx context.Context) (net.IP, error)
	// BMCMac returns the BMC MAC address, a nil address with a nil error means unknown.
	BMCMac(ctx context.Context) (net.HardwareAddr, error)
}
