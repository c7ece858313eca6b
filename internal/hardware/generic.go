package hardware

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmc-toolbox/common"
	"github.com/metal-toolbox/hwmanager/internal/inventory"
	"github.com/metal-toolbox/hwmanager/internal/ipmi"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	GenericManagerName    = "generic_hardware_manager"
	GenericManagerVersion = "1.2"

	efiPath     = "sys/firmware/efi"
	cmdlinePath = "proc/cmdline"
	bootifParam = "BOOTIF="
)

var (
	ErrNoInventory = errors.New("no device inventory returned by source")
	ErrBootInfo    = errors.New("error reading boot information")
)

// BMCLan looks up the BMC LAN configuration through the generic management protocol.
type BMCLan interface {
	Address(ctx context.Context) (net.IP, error)
	V6Address(ctx context.Context) (net.IP, error)
	Mac(ctx context.Context) (net.HardwareAddr, error)
}

// Generic is the baseline hardware manager, it implements every accessor
// and supports any machine at the HardwareSupportGeneric level.
//
// Components are read from the inventory source on each call, the BMC LAN
// configuration is looked up over IPMI.
type Generic struct {
	source    inventory.Source
	bmc       BMCLan
	fs        afero.Fs
	sysfsRoot string
	hostname  func() (string, error)
	logger    *logrus.Entry
}

type GenericOption func(*Generic)

// WithHostnameFunc sets the function the hostname is looked up with, the default is os.Hostname.
func WithHostnameFunc(fn func() (string, error)) GenericOption {
	return func(g *Generic) {
		g.hostname = fn
	}
}

// NewGeneric returns the generic hardware manager.
func NewGeneric(source inventory.Source, bmc BMCLan, fs afero.Fs, sysfsRoot string, logger *logrus.Logger, opts ...GenericOption) *Generic {
	g := &Generic{
		source:    source,
		bmc:       bmc,
		fs:        fs,
		sysfsRoot: sysfsRoot,
		hostname:  os.Hostname,
		logger:    logger.WithField("manager", GenericManagerName),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Generic) Name() string { return GenericManagerName }

func (g *Generic) Version() string { return GenericManagerVersion }

// EvaluateSupport implements the Manager interface.
func (g *Generic) EvaluateSupport(_ context.Context) (model.HardwareSupport, error) {
	return model.HardwareSupportGeneric, nil
}

func (g *Generic) device(ctx context.Context) (*common.Device, error) {
	device, err := g.source.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	if device == nil {
		return nil, ErrNoInventory
	}

	return device, nil
}

func (g *Generic) NetworkInterfaces(ctx context.Context) ([]*common.NIC, error) {
	device, err := g.device(ctx)
	if err != nil {
		return nil, err
	}

	return device.NICs, nil
}

func (g *Generic) CPUs(ctx context.Context) ([]*common.CPU, error) {
	device, err := g.device(ctx)
	if err != nil {
		return nil, err
	}

	return device.CPUs, nil
}

func (g *Generic) BlockDevices(ctx context.Context) ([]*common.Drive, error) {
	device, err := g.device(ctx)
	if err != nil {
		return nil, err
	}

	return device.Drives, nil
}

func (g *Generic) Memory(ctx context.Context) ([]*common.Memory, error) {
	device, err := g.device(ctx)
	if err != nil {
		return nil, err
	}

	return device.Memory, nil
}

// SystemVendor returns the system manufacturer attributes and BIOS firmware version.
func (g *Generic) SystemVendor(ctx context.Context) (*model.SystemVendor, error) {
	device, err := g.device(ctx)
	if err != nil {
		return nil, err
	}

	vendor := &model.SystemVendor{
		ProductName:  device.Model,
		SerialNumber: device.Serial,
		Manufacturer: device.Vendor,
	}

	if device.BIOS != nil {
		vendor.Firmware = &model.SystemFirmware{Vendor: device.BIOS.Vendor}

		if device.BIOS.Firmware != nil {
			vendor.Firmware.Version = device.BIOS.Firmware.Installed
		}
	}

	return vendor, nil
}

// BootInfo returns the current boot mode and the PXE boot interface MAC address
// passed in the BOOTIF kernel parameter.
func (g *Generic) BootInfo(_ context.Context) (*model.BootInfo, error) {
	info := &model.BootInfo{CurrentBootMode: model.BootModeBIOS}

	isEFI, err := afero.DirExists(g.fs, filepath.Join(g.sysfsRoot, efiPath))
	if err != nil {
		return nil, errors.Wrap(ErrBootInfo, err.Error())
	}

	if isEFI {
		info.CurrentBootMode = model.BootModeUEFI
	}

	cmdline, err := afero.ReadFile(g.fs, filepath.Join(g.sysfsRoot, cmdlinePath))
	if err != nil {
		return nil, errors.Wrap(ErrBootInfo, err.Error())
	}

	info.PXEInterface = bootifMac(string(cmdline))

	return info, nil
}

// bootifMac returns the MAC address in the BOOTIF=01-aa-bb-cc-dd-ee-ff kernel parameter.
func bootifMac(cmdline string) string {
	for _, param := range strings.Fields(cmdline) {
		if !strings.HasPrefix(param, bootifParam) {
			continue
		}

		value := strings.TrimPrefix(param, bootifParam)

		// the leading octet is the ARP hardware type
		if parts := strings.SplitN(value, "-", 2); len(parts) == 2 && len(parts[0]) == 2 {
			value = parts[1]
		}

		mac, err := net.ParseMAC(strings.ReplaceAll(value, "-", ":"))
		if err != nil {
			return ""
		}

		return mac.String()
	}

	return ""
}

func (g *Generic) Hostname(_ context.Context) (string, error) {
	return g.hostname()
}

// BMCAddress returns the BMC IPv4 address, nil when ipmitool is not available or no channel has one.
func (g *Generic) BMCAddress(ctx context.Context) (net.IP, error) {
	ip, err := g.bmc.Address(ctx)
	if err != nil {
		if errors.Is(err, ipmi.ErrUnavailable) {
			g.logger.WithField("err", err.Error()).Debug("bmc address unknown")
			return nil, nil
		}

		return nil, err
	}

	return ip, nil
}

// BMCV6Address returns the BMC IPv6 address, nil when ipmitool is not available or no channel has one.
func (g *Generic) BMCV6Address(ctx context.Context) (net.IP, error) {
	ip, err := g.bmc.V6Address(ctx)
	if err != nil {
		if errors.Is(err, ipmi.ErrUnavailable) {
			g.logger.WithField("err", err.Error()).Debug("bmc v6 address unknown")
			return nil, nil
		}

		return nil, err
	}

	return ip, nil
}

// BMCMac returns the BMC MAC address, model.ErrIncompatibleHardwareMethod is
// returned when there is no BMC reachable over IPMI.
func (g *Generic) BMCMac(ctx context.Context) (net.HardwareAddr, error) {
	mac, err := g.bmc.Mac(ctx)
	if err != nil {
		if errors.Is(err, ipmi.ErrUnavailable) {
			return nil, errors.Wrap(model.ErrIncompatibleHardwareMethod, err.Error())
		}

		return nil, err
	}

	if mac == nil {
		return nil, errors.Wrap(model.ErrIncompatibleHardwareMethod, "no bmc lan channel with an address configured")
	}

	return mac, nil
}

// Capabilities implements the Manager interface.
func (g *Generic) Capabilities() Capabilities {
	return Capabilities{
		NetworkInterfaces: g.NetworkInterfaces,
		CPUs:              g.CPUs,
		BlockDevices:      g.BlockDevices,
		Memory:            g.Memory,
		SystemVendor:      g.SystemVendor,
		BootInfo:          g.BootInfo,
		Hostname:          g.Hostname,
		BMCAddress:        g.BMCAddress,
		BMCV6Address:      g.BMCV6Address,
		BMCMac:            g.BMCMac,
	}
}
