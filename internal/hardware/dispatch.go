package hardware

import (
	"context"
	"net"

	"github.com/bmc-toolbox/common"
	"github.com/metal-toolbox/hwmanager/internal/metrics"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Dispatcher implements inventory.Collector over the selected hardware managers.
//
// Each accessor call goes to the managers in selection order, a manager that
// does not implement the accessor or returns model.ErrIncompatibleHardwareMethod
// is skipped. The first other result is returned.
type Dispatcher struct {
	selected []Selected
	logger   *logrus.Entry
}

// NewDispatcher returns a Dispatcher for managers in the order returned by Select.
func NewDispatcher(selected []Selected, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		selected: selected,
		logger:   logger.WithField("component", "dispatcher"),
	}
}

func dispatch[T any](ctx context.Context, d *Dispatcher, method string, accessor func(Capabilities) func(context.Context) (T, error)) (T, error) {
	var zero T

	for _, s := range d.selected {
		fn := accessor(s.Manager.Capabilities())
		if fn == nil {
			continue
		}

		value, err := fn(ctx)
		if err != nil {
			if errors.Is(err, model.ErrIncompatibleHardwareMethod) {
				metrics.DispatchFallthroughCounter.WithLabelValues(method, s.Manager.Name()).Inc()

				d.logger.WithFields(
					logrus.Fields{
						"method":  method,
						"manager": s.Manager.Name(),
						"err":     err.Error(),
					},
				).Debug("hardware manager cannot serve method, trying next")

				continue
			}

			return zero, err
		}

		return value, nil
	}

	return zero, errors.Wrap(model.ErrIncompatibleHardwareMethod, "no selected hardware manager serves "+method)
}

// Owners returns the name of the manager whose accessor is tried first for each method,
// methods no manager implements are not included.
func (d *Dispatcher) Owners() map[string]string {
	owners := map[string]string{}

	for _, method := range Methods() {
		for _, s := range d.selected {
			if s.Manager.Capabilities().Implements(method) {
				owners[method] = s.Manager.Name()
				break
			}
		}
	}

	return owners
}

func (d *Dispatcher) NetworkInterfaces(ctx context.Context) ([]*common.NIC, error) {
	return dispatch(ctx, d, MethodNetworkInterfaces, func(c Capabilities) func(context.Context) ([]*common.NIC, error) {
		return c.NetworkInterfaces
	})
}

func (d *Dispatcher) CPUs(ctx context.Context) ([]*common.CPU, error) {
	return dispatch(ctx, d, MethodCPUs, func(c Capabilities) func(context.Context) ([]*common.CPU, error) {
		return c.CPUs
	})
}

func (d *Dispatcher) BlockDevices(ctx context.Context) ([]*common.Drive, error) {
	return dispatch(ctx, d, MethodBlockDevices, func(c Capabilities) func(context.Context) ([]*common.Drive, error) {
		return c.BlockDevices
	})
}

func (d *Dispatcher) Memory(ctx context.Context) ([]*common.Memory, error) {
	return dispatch(ctx, d, MethodMemory, func(c Capabilities) func(context.Context) ([]*common.Memory, error) {
		return c.Memory
	})
}

func (d *Dispatcher) SystemVendor(ctx context.Context) (*model.SystemVendor, error) {
	return dispatch(ctx, d, MethodSystemVendor, func(c Capabilities) func(context.Context) (*model.SystemVendor, error) {
		return c.SystemVendor
	})
}

func (d *Dispatcher) BootInfo(ctx context.Context) (*model.BootInfo, error) {
	return dispatch(ctx, d, MethodBootInfo, func(c Capabilities) func(context.Context) (*model.BootInfo, error) {
		return c.BootInfo
	})
}

func (d *Dispatcher) Hostname(ctx context.Context) (string, error) {
	return dispatch(ctx, d, MethodHostname, func(c Capabilities) func(context.Context) (string, error) {
		return c.Hostname
	})
}

func (d *Dispatcher) BMCAddress(ctx context.Context) (net.IP, error) {
	return dispatch(ctx, d, MethodBMCAddress, func(c Capabilities) func(context.Context) (net.IP, error) {
		return c.BMCAddress
	})
}

func (d *Dispatcher) BMCV6Address(ctx context.Context) (net.IP, error) {
	return dispatch(ctx, d, MethodBMCV6Address, func(c Capabilities) func(context.Context) (net.IP, error) {
		return c.BMCV6Address
	})
}

func (d *Dispatcher) BMCMac(ctx context.Context) (net.HardwareAddr, error) {
	return dispatch(ctx, d, MethodBMCMac, func(c Capabilities) func(context.Context) (net.HardwareAddr, error) {
		return c.BMCMac
	})
}
