package fixtures

import (
	"context"

	"github.com/bmc-toolbox/common"
	"github.com/jinzhu/copier"
	"github.com/metal-toolbox/hwmanager/internal/identity"
)

var (
	// FX700Identity is the DMI identity of an FX700 node as read from sysfs.
	FX700Identity = identity.Attributes{
		identity.AttributeSysVendor:   "FUJITSU\n",
		identity.AttributeProductName: "FX700\n",
	}

	// NovaIdentity is the DMI identity of an OpenStack Nova instance.
	NovaIdentity = identity.Attributes{
		identity.AttributeSysVendor:   "OpenStack Foundation\n",
		identity.AttributeProductName: "OpenStack Nova\n",
	}

	// FX700 is the component inventory of an FX700 node.
	FX700 = &common.Device{
		Common: common.Common{
			Vendor: "FUJITSU",
			Model:  "FX700",
			Serial: "FX7-0001",
		},
		BIOS: &common.BIOS{
			Common: common.Common{
				Vendor:   "FUJITSU",
				Firmware: &common.Firmware{Installed: "1.2.3"},
			},
		},
		CPUs: []*common.CPU{
			{Common: common.Common{Vendor: "Fujitsu", Model: "A64FX"}},
		},
		Memory: []*common.Memory{
			{Common: common.Common{Vendor: "Fujitsu", Model: "HBM2"}},
		},
		NICs: []*common.NIC{
			{Common: common.Common{Vendor: "Mellanox", Model: "ConnectX-6"}},
		},
		Drives: []*common.Drive{
			{Common: common.Common{Vendor: "Samsung", Model: "PM983", Serial: "S4GNNX0N"}},
		},
	}
)

// CopyInventory returns a deep copy of the given device inventory.
func CopyInventory(src *common.Device) *common.Device {
	dst := &common.Device{}

	copyOptions := copier.Option{IgnoreEmpty: true, DeepCopy: true}

	if err := copier.CopyWithOption(dst, src, copyOptions); err != nil {
		panic(err)
	}

	return dst
}

// IdentityReader returns fixed identity attributes.
type IdentityReader struct {
	Attributes identity.Attributes
	Err        error
	Calls      int
}

// Read implements the hardware.IdentityReader interface.
func (r *IdentityReader) Read() (identity.Attributes, error) {
	r.Calls++

	if r.Err != nil {
		return nil, r.Err
	}

	attrs := make(identity.Attributes, len(r.Attributes))
	for k, v := range r.Attributes {
		attrs[k] = v
	}

	return attrs, nil
}

// InventorySource returns a copy of the device inventory it was created with.
type InventorySource struct {
	Device *common.Device
	Err    error
	Calls  int
}

// Inventory implements the inventory.Source interface.
func (s *InventorySource) Inventory(_ context.Context) (*common.Device, error) {
	s.Calls++

	if s.Err != nil {
		return nil, s.Err
	}

	return CopyInventory(s.Device), nil
}
