package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/metal-toolbox/hwmanager/internal/metrics"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	pkgName = "internal/inventory"
)

// Assemble collects the hardware inventory record from the given collector.
//
// The BMC MAC address is the one field that may be missing, it is left out when
// the collector returns model.ErrIncompatibleHardwareMethod for it. An error
// from any other accessor aborts the assembly and is returned.
func Assemble(ctx context.Context, c Collector, logger *logrus.Logger) (*Record, error) {
	collectionID := uuid.New()

	ctx, span := otel.Tracer(pkgName).Start(
		ctx,
		"inventory.Assemble",
		trace.WithAttributes(attribute.String("collectionID", collectionID.String())),
	)
	defer span.End()

	le := logger.WithField("collectionID", collectionID.String())

	startTS := time.Now()

	record, err := assemble(ctx, c, le)

	state := "succeeded"
	if err != nil {
		state = "failed"
	}

	metrics.AssemblyCounter.WithLabelValues(state).Inc()
	metrics.AssemblyRunTimeSummary.WithLabelValues(state).Observe(time.Since(startTS).Seconds())

	le = le.WithFields(logrus.Fields{"elapsed": time.Since(startTS).String(), "state": state})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		le.WithField("err", err.Error()).Warn("hardware inventory assembly failed")
		return nil, err
	}

	le.Info("hardware inventory assembled")

	return record, nil
}

func assemble(ctx context.Context, c Collector, le *logrus.Entry) (*Record, error) {
	var err error

	wrap := func(field string, err error) error {
		return errors.Wrap(err, "inventory "+field)
	}

	record := &Record{}

	if record.Interfaces, err = c.NetworkInterfaces(ctx); err != nil {
		return nil, wrap("interfaces", err)
	}

	if record.CPUs, err = c.CPUs(ctx); err != nil {
		return nil, wrap("cpu", err)
	}

	if record.Disks, err = c.BlockDevices(ctx); err != nil {
		return nil, wrap("disks", err)
	}

	if record.Memory, err = c.Memory(ctx); err != nil {
		return nil, wrap("memory", err)
	}

	bmcAddress, err := c.BMCAddress(ctx)
	if err != nil {
		return nil, wrap("bmc_address", err)
	}

	record.BMCAddress = ipString(bmcAddress)

	bmcV6Address, err := c.BMCV6Address(ctx)
	if err != nil {
		return nil, wrap("bmc_v6address", err)
	}

	record.BMCV6Address = ipString(bmcV6Address)

	if record.SystemVendor, err = c.SystemVendor(ctx); err != nil {
		return nil, wrap("system_vendor", err)
	}

	if record.Boot, err = c.BootInfo(ctx); err != nil {
		return nil, wrap("boot", err)
	}

	if record.Hostname, err = c.Hostname(ctx); err != nil {
		return nil, wrap("hostname", err)
	}

	bmcMac, err := c.BMCMac(ctx)
	switch {
	case err == nil:
		record.BMCMac = macString(bmcMac)
		record.HasBMCMac = true
	case errors.Is(err, model.ErrIncompatibleHardwareMethod):
		le.WithField("reason", err.Error()).Debug("bmc_mac not supported, omitted from inventory")
	default:
		return nil, wrap("bmc_mac", err)
	}

	return record, nil
}
