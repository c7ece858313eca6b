package cmd

import (
	"github.com/metal-toolbox/hwmanager/internal/app"
	"github.com/metal-toolbox/hwmanager/internal/bmc"
	"github.com/metal-toolbox/hwmanager/internal/hardware"
	"github.com/metal-toolbox/hwmanager/internal/identity"
	"github.com/metal-toolbox/hwmanager/internal/inventory"
	"github.com/metal-toolbox/hwmanager/internal/ipmi"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var (
	ErrInventorySource = errors.New("inventory source error")
)

// initManagers returns the hardware managers in registration order.
//
// The inventory source and the BMC LAN lookup are wrapped in snapshots, the
// managers returned serve a single inventory collection.
func initManagers(hwm *app.App) ([]hardware.Manager, error) {
	fs := afero.NewOsFs()

	source, err := initInventorySource(fs, hwm)
	if err != nil {
		return nil, err
	}

	ipmiClient := ipmi.New(
		hwm.Config.Ipmitool.Path,
		hwm.Config.Ipmitool.MaxChannel,
		hwm.Logger.WithField("component", "ipmi"),
	)

	return []hardware.Manager{
		hardware.NewGeneric(inventory.NewSnapshot(source), ipmiClient.Snapshot(), fs, hwm.Config.SysfsRoot, hwm.Logger),
		hardware.NewFX700(identity.NewReader(fs, hwm.Config.DMIPath), hwm.Logger),
	}, nil
}

func initInventorySource(fs afero.Fs, hwm *app.App) (inventory.Source, error) {
	switch hwm.Config.InventorySource {
	case model.InventorySourceFile:
		return inventory.NewFileSource(fs, hwm.Config.InventoryFile)
	case model.InventorySourceBMC:
		return bmc.NewSource(hwm.Config.BMC, hwm.Logger)
	}

	return nil, errors.Wrap(ErrInventorySource, "expected a valid inventory source parameter: "+string(hwm.Config.InventorySource))
}
