package hardware

import (
	"context"
	"net"
	"strings"

	"github.com/metal-toolbox/hwmanager/internal/identity"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/sirupsen/logrus"
)

const (
	FX700ManagerName    = "fx700_hardware_manager"
	FX700ManagerVersion = "1"

	fx700SysVendor   = "FUJITSU"
	fx700ProductName = "FX700"
)

// IdentityReader returns the firmware identity attributes of the running machine.
type IdentityReader interface {
	Read() (identity.Attributes, error)
}

// IsFX700 returns true when the identity attributes are those of a FUJITSU FX700.
//
// Values are compared exactly after trimming surrounding whitespace, both
// sys_vendor and product_name have to match, a missing attribute is not a match.
func IsFX700(attrs identity.Attributes) bool {
	vendor, ok := attrs[identity.AttributeSysVendor]
	if !ok {
		return false
	}

	product, ok := attrs[identity.AttributeProductName]
	if !ok {
		return false
	}

	return strings.TrimSpace(vendor) == fx700SysVendor &&
		strings.TrimSpace(product) == fx700ProductName
}

// FX700 is the hardware manager for FUJITSU FX700 nodes.
//
// The FX700 BMC is not reachable over the IPMI LAN interface the generic
// manager queries, the BMC accessors report the addresses as unknown instead.
// Every other accessor is left to the generic manager.
type FX700 struct {
	reader IdentityReader
	logger *logrus.Entry
}

// NewFX700 returns the FX700 hardware manager.
func NewFX700(reader IdentityReader, logger *logrus.Logger) *FX700 {
	return &FX700{
		reader: reader,
		logger: logger.WithField("manager", FX700ManagerName),
	}
}

func (f *FX700) Name() string { return FX700ManagerName }

func (f *FX700) Version() string { return FX700ManagerVersion }

// Detect reads the identity attributes and returns true when running on an FX700.
//
// An identity read error is returned as is, it does not mean the node is not an FX700.
func (f *FX700) Detect() (bool, error) {
	attrs, err := f.reader.Read()
	if err != nil {
		return false, err
	}

	matched := IsFX700(attrs)

	f.logger.WithFields(
		logrus.Fields{
			identity.AttributeSysVendor:   strings.TrimSpace(attrs[identity.AttributeSysVendor]),
			identity.AttributeProductName: strings.TrimSpace(attrs[identity.AttributeProductName]),
			"matched":                     matched,
		},
	).Info("hardware identity")

	return matched, nil
}

// EvaluateSupport returns HardwareSupportServiceProvider on FX700 nodes, so the
// BMC accessors take precedence over the generic manager, HardwareSupportNone otherwise.
func (f *FX700) EvaluateSupport(_ context.Context) (model.HardwareSupport, error) {
	matched, err := f.Detect()
	if err != nil {
		return model.HardwareSupportNone, err
	}

	if !matched {
		return model.HardwareSupportNone, nil
	}

	return model.HardwareSupportServiceProvider, nil
}

// BMCAddress returns a nil address, the BMC IPv4 address is unknown.
func (f *FX700) BMCAddress(_ context.Context) (net.IP, error) {
	return nil, nil
}

// BMCV6Address returns a nil address, the BMC IPv6 address is unknown.
func (f *FX700) BMCV6Address(_ context.Context) (net.IP, error) {
	return nil, nil
}

// BMCMac returns a nil address, the BMC MAC address is unknown.
func (f *FX700) BMCMac(_ context.Context) (net.HardwareAddr, error) {
	return nil, nil
}

// Capabilities implements the Manager interface.
func (f *FX700) Capabilities() Capabilities {
	return Capabilities{
		BMCAddress:   f.BMCAddress,
		BMCV6Address: f.BMCV6Address,
		BMCMac:       f.BMCMac,
	}
}
