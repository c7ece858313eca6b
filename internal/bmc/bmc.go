package bmc

import (
	"context"
	"strings"
	"time"

	bmclibv2 "github.com/bmc-toolbox/bmclib/v2"
	logrusrv2 "github.com/bombsimon/logrusr/v2"
	"github.com/pkg/errors"

	"github.com/bmc-toolbox/common"
	"github.com/jacobweinstock/registrar"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/sirupsen/logrus"
)

var (
	// logoutTimeout is the timeout value when logging out of a bmc
	logoutTimeout = "1m"

	// login errors
	errBMCLogin             = errors.New("bmc login error")
	errBMCLoginTimeout      = errors.New("bmc login timeout")
	errBMCLoginUnAuthorized = errors.New("bmc login unauthorized")

	errBMCInventory = errors.New("bmc inventory error")

	ErrBMCOptions = errors.New("bmc address and credentials required")
)

// client is the subset of the bmclib client the inventory source uses.
type client interface {
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	Inventory(ctx context.Context) (*common.Device, error)
}

// Source is an inventory.Source that collects the component inventory from the host BMC.
//
// A BMC session is opened and closed for each inventory query.
type Source struct {
	newClient func() client
	logger    *logrus.Entry
}

type Option func(*Source)

// WithClientFunc sets the function the BMC client is created with.
func WithClientFunc(fn func() client) Option {
	return func(s *Source) {
		s.newClient = fn
	}
}

// NewSource returns a BMC inventory source for the BMC in opts.
func NewSource(opts *model.BMCOptions, logger *logrus.Logger, options ...Option) (*Source, error) {
	if opts == nil || opts.Address == "" || opts.Username == "" || opts.Password == "" {
		return nil, ErrBMCOptions
	}

	s := &Source{
		newClient: func() client { return newBmclibv2Client(opts, logger) },
		logger:    logger.WithField("bmc", opts.Address),
	}

	for _, opt := range options {
		opt(s)
	}

	return s, nil
}

// Inventory implements the inventory.Source interface.
func (s *Source) Inventory(ctx context.Context) (*common.Device, error) {
	c := s.newClient()

	if err := open(ctx, c); err != nil {
		return nil, err
	}

	defer func() {
		if err := closeSession(c); err != nil {
			s.logger.WithField("err", err.Error()).Warn("bmc logout error")
		}
	}()

	device, err := c.Inventory(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "no compatible System Odata IDs identified") {
			return nil, errors.Wrap(errBMCInventory, "redfish_incompatible: no compatible System Odata IDs identified")
		}

		return nil, errors.Wrap(errBMCInventory, err.Error())
	}

	if device == nil {
		return nil, errors.Wrap(errBMCInventory, "empty inventory returned")
	}

	// format the device inventory vendor attribute so its consistent
	device.Vendor = common.FormatVendorName(device.Vendor)

	s.logger.WithFields(
		logrus.Fields{
			"vendor": device.Vendor,
			"model":  device.Model,
		},
	).Debug("bmc inventory collected")

	return device, nil
}

func open(ctx context.Context, c client) error {
	startTS := time.Now()

	if err := c.Open(ctx); err != nil {
		if strings.Contains(err.Error(), "operation timed out") {
			return errors.Wrap(errBMCLoginTimeout, "operation timed out in "+time.Since(startTS).String())
		}

		if strings.Contains(err.Error(), "401: ") || strings.Contains(err.Error(), "FailedState to login") {
			return errors.Wrap(errBMCLoginUnAuthorized, err.Error())
		}

		return errors.Wrap(errBMCLogin, err.Error())
	}

	return nil
}

// closeSession logs out of the BMC, no parent context is passed so the
// logout continues when the parent context has been cancelled.
func closeSession(c client) error {
	timeout, err := time.ParseDuration(logoutTimeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return c.Close(ctx)
}

// newBmclibv2Client initializes a bmclibv2 client with the given credentials
func newBmclibv2Client(opts *model.BMCOptions, l *logrus.Logger) *bmclibv2.Client {
	logger := logrus.New()
	logger.Formatter = l.Formatter

	// bmclib uses logr, for which the trace logs are logged with log.V(3),
	// this is a hax so the logrusr lib will enable trace logging
	// since any value that is less than (logrus.LogLevel - 4) >= log.V(3) is ignored
	// https://github.com/bombsimon/logrusr/blob/master/logrusr.go#L64
	switch l.GetLevel() {
	case logrus.TraceLevel:
		logger.Level = 7
	case logrus.DebugLevel:
		logger.Level = 5
	}

	logruslogr := logrusrv2.New(logger)

	bmcClient := bmclibv2.NewClient(
		opts.Address,
		opts.Username,
		opts.Password,
		bmclibv2.WithLogger(logruslogr),
	)

	// The drivers are limited to the HTTPS means of connection,
	// the BMC LAN configuration is read over ipmitool by the generic manager.
	switch common.FormatVendorName(opts.Vendor) {
	case common.VendorDell, common.VendorHPE:
		bmcClient.Registry.Drivers = bmcClient.Registry.Using("redfish")
	case common.VendorAsrockrack:
		bmcClient.Registry.Drivers = bmcClient.Registry.Using("vendorapi")
	default:
		// attempt both drivers when vendor is unknown
		drivers := append(registrar.Drivers{},
			bmcClient.Registry.Using("redfish")...,
		)

		drivers = append(drivers,
			bmcClient.Registry.Using("vendorapi")...,
		)

		bmcClient.Registry.Drivers = drivers
	}

	return bmcClient
}
