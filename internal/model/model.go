package model

import (
	"github.com/pkg/errors"
)

type AppKind string

type InventorySourceKind string

const (
	AppName = "hwmanager"

	AppKindDetect    AppKind = "detect"
	AppKindInventory AppKind = "inventory"

	InventorySourceFile InventorySourceKind = "file"
	InventorySourceBMC  InventorySourceKind = "bmc"

	LogLevelInfo  = 0
	LogLevelDebug = 1
	LogLevelTrace = 2
)

// AppKinds returns the supported hwmanager app kinds
func AppKinds() []AppKind { return []AppKind{AppKindDetect, AppKindInventory} }

// InventorySourceKinds returns the supported device inventory sources
func InventorySourceKinds() []InventorySourceKind {
	return []InventorySourceKind{InventorySourceFile, InventorySourceBMC}
}

var (
	// ErrIncompatibleHardwareMethod is returned by a hardware manager accessor
	// when the manager cannot provide the requested field on this hardware.
	//
	// It is the only accessor error that is recovered from, callers fall through
	// to the next manager or omit the field.
	ErrIncompatibleHardwareMethod = errors.New("method not supported by hardware manager")
)

// HardwareSupport is the priority a hardware manager reports for the running machine,
// the manager with the higher value takes precedence.
type HardwareSupport int

const (
	HardwareSupportNone            HardwareSupport = 0
	HardwareSupportGeneric         HardwareSupport = 1
	HardwareSupportMainline        HardwareSupport = 2
	HardwareSupportServiceProvider HardwareSupport = 3
)

func (h HardwareSupport) String() string {
	switch h {
	case HardwareSupportNone:
		return "none"
	case HardwareSupportGeneric:
		return "generic"
	case HardwareSupportMainline:
		return "mainline"
	case HardwareSupportServiceProvider:
		return "service_provider"
	default:
		return "custom"
	}
}

// SystemVendor holds the system manufacturer attributes reported in the inventory.
type SystemVendor struct {
	ProductName  string          `json:"product_name"`
	SerialNumber string          `json:"serial_number"`
	Manufacturer string          `json:"manufacturer"`
	Firmware     *SystemFirmware `json:"firmware,omitempty"`
}

// SystemFirmware is the system (BIOS/UEFI) firmware identity.
type SystemFirmware struct {
	Vendor  string `json:"vendor"`
	Version string `json:"version"`
}

const (
	BootModeUEFI = "uefi"
	BootModeBIOS = "bios"
)

// BootInfo is the current boot configuration of the machine.
type BootInfo struct {
	// CurrentBootMode is one of uefi, bios
	CurrentBootMode string `json:"current_boot_mode"`
	// PXEInterface is the MAC address of the interface the node network booted from, if any.
	PXEInterface string `json:"pxe_interface,omitempty"`
}
