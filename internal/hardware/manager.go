package hardware

import (
	"context"
	"net"

	"github.com/bmc-toolbox/common"
	"github.com/metal-toolbox/hwmanager/internal/model"
)

// Manager is a hardware manager participating in manager selection.
//
// A Manager reports how well it supports the running machine and exposes the
// accessors it implements as a Capabilities table, accessors left nil are
// served by lower priority managers.
type Manager interface {
	Name() string
	Version() string
	EvaluateSupport(ctx context.Context) (model.HardwareSupport, error)
	Capabilities() Capabilities
}

// Capabilities is the accessor table of a hardware manager.
type Capabilities struct {
	NetworkInterfaces func(context.Context) ([]*common.NIC, error)
	CPUs              func(context.Context) ([]*common.CPU, error)
	BlockDevices      func(context.Context) ([]*common.Drive, error)
	Memory            func(context.Context) ([]*common.Memory, error)
	SystemVendor      func(context.Context) (*model.SystemVendor, error)
	BootInfo          func(context.Context) (*model.BootInfo, error)
	Hostname          func(context.Context) (string, error)
	BMCAddress        func(context.Context) (net.IP, error)
	BMCV6Address      func(context.Context) (net.IP, error)
	BMCMac            func(context.Context) (net.HardwareAddr, error)
}

// Accessor names as they appear in logs, metrics and the capability graph.
const (
	MethodNetworkInterfaces = "NetworkInterfaces"
	MethodCPUs              = "CPUs"
	MethodBlockDevices      = "BlockDevices"
	MethodMemory            = "Memory"
	MethodSystemVendor      = "SystemVendor"
	MethodBootInfo          = "BootInfo"
	MethodHostname          = "Hostname"
	MethodBMCAddress        = "BMCAddress"
	MethodBMCV6Address      = "BMCV6Address"
	MethodBMCMac            = "BMCMac"
)

// Methods returns the accessor names in the order the inventory is assembled.
func Methods() []string {
	return []string{
		MethodNetworkInterfaces,
		MethodCPUs,
		MethodBlockDevices,
		MethodMemory,
		MethodBMCAddress,
		MethodBMCV6Address,
		MethodSystemVendor,
		MethodBootInfo,
		MethodHostname,
		MethodBMCMac,
	}
}

// Implements returns true when the capability table has the named accessor set.
func (c Capabilities) Implements(method string) bool {
	switch method {
	case MethodNetworkInterfaces:
		return c.NetworkInterfaces != nil
	case MethodCPUs:
		return c.CPUs != nil
	case MethodBlockDevices:
		return c.BlockDevices != nil
	case MethodMemory:
		return c.Memory != nil
	case MethodSystemVendor:
		return c.SystemVendor != nil
	case MethodBootInfo:
		return c.BootInfo != nil
	case MethodHostname:
		return c.Hostname != nil
	case MethodBMCAddress:
		return c.BMCAddress != nil
	case MethodBMCV6Address:
		return c.BMCV6Address != nil
	case MethodBMCMac:
		return c.BMCMac != nil
	default:
		return false
	}
}
