package ipmi

import (
	"bufio"
	"context"
	"net"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultCommandTimeout = 30 * time.Second
	unsetIPv4Address      = "0.0.0.0"
)

var (
	// ErrUnavailable is returned when ipmitool could not be executed at all.
	ErrUnavailable = errors.New("ipmitool unavailable")
	ErrCommand     = errors.New("ipmitool command error")
)

// Executor runs a command and returns its output.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

type commandExecutor struct {
	timeout time.Duration
}

// Execute implements the Executor interface.
func (e *commandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", errors.Wrap(ErrUnavailable, err.Error())
		}

		return "", errors.Wrap(ErrCommand, name+" "+strings.Join(args, " ")+": "+err.Error())
	}

	return string(out), nil
}

// Client queries the BMC LAN configuration through ipmitool over the in-band interface.
type Client struct {
	path       string
	maxChannel int
	executor   Executor
	logger     *logrus.Entry
}

type Option func(*Client)

// WithExecutor sets the command executor, the default runs the command with a timeout.
func WithExecutor(e Executor) Option {
	return func(c *Client) {
		c.executor = e
	}
}

// New returns an ipmitool Client that queries LAN channels 1 through maxChannel.
func New(path string, maxChannel int, logger *logrus.Entry, opts ...Option) *Client {
	c := &Client{
		path:       path,
		maxChannel: maxChannel,
		executor:   &commandExecutor{timeout: defaultCommandTimeout},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// lanConfig is the subset of the `lan print` output used.
type lanConfig struct {
	address string
	mac     string
}

// channels returns the LAN configuration of each channel that reported one.
//
// Channels returning errors are skipped, ErrUnavailable is returned when ipmitool cannot be run.
func (c *Client) channels(ctx context.Context) ([]lanConfig, error) {
	configs := []lanConfig{}

	for channel := 1; channel <= c.maxChannel; channel++ {
		out, err := c.executor.Execute(ctx, c.path, "lan", "print", strconv.Itoa(channel))
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				return nil, err
			}

			c.logger.WithFields(logrus.Fields{"channel": channel, "err": err.Error()}).Trace("lan print failed")

			continue
		}

		configs = append(configs, parseLanPrint(out))
	}

	return configs, nil
}

// Address returns the first configured BMC IPv4 address, nil if none is configured.
func (c *Client) Address(ctx context.Context) (net.IP, error) {
	configs, err := c.channels(ctx)
	if err != nil {
		return nil, err
	}

	return firstAddress(configs), nil
}

// Mac returns the MAC address of the first channel with a configured IPv4 address, nil if none.
func (c *Client) Mac(ctx context.Context) (net.HardwareAddr, error) {
	configs, err := c.channels(ctx)
	if err != nil {
		return nil, err
	}

	return firstMac(configs), nil
}

func firstAddress(configs []lanConfig) net.IP {
	for _, cfg := range configs {
		if ip := net.ParseIP(cfg.address); ip != nil && cfg.address != unsetIPv4Address {
			return ip
		}
	}

	return nil
}

func firstMac(configs []lanConfig) net.HardwareAddr {
	for _, cfg := range configs {
		if cfg.address == "" || cfg.address == unsetIPv4Address {
			continue
		}

		mac, err := net.ParseMAC(cfg.mac)
		if err != nil {
			continue
		}

		return mac
	}

	return nil
}

// V6Address returns the first active, globally routable BMC IPv6 address, nil if none.
func (c *Client) V6Address(ctx context.Context) (net.IP, error) {
	for channel := 1; channel <= c.maxChannel; channel++ {
		out, err := c.executor.Execute(ctx, c.path, "lan6", "print", strconv.Itoa(channel))
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				return nil, err
			}

			continue
		}

		if ip := parseLan6Print(out); ip != nil {
			return ip, nil
		}
	}

	return nil, nil
}

// Snapshot returns a view of the BMC LAN configuration that runs `lan print`
// and `lan6 print` at most once each, for use within a single inventory collection.
func (c *Client) Snapshot() *Snapshot {
	return &Snapshot{client: c}
}

// Snapshot serves Address, Mac and V6Address from one query of the LAN channels.
type Snapshot struct {
	client *Client

	lanOnce sync.Once
	configs []lanConfig
	lanErr  error

	lan6Once sync.Once
	v6       net.IP
	lan6Err  error
}

func (s *Snapshot) channels(ctx context.Context) ([]lanConfig, error) {
	s.lanOnce.Do(func() {
		s.configs, s.lanErr = s.client.channels(ctx)
	})

	return s.configs, s.lanErr
}

// Address implements the hardware.BMCLan interface.
func (s *Snapshot) Address(ctx context.Context) (net.IP, error) {
	configs, err := s.channels(ctx)
	if err != nil {
		return nil, err
	}

	return firstAddress(configs), nil
}

// Mac implements the hardware.BMCLan interface.
func (s *Snapshot) Mac(ctx context.Context) (net.HardwareAddr, error) {
	configs, err := s.channels(ctx)
	if err != nil {
		return nil, err
	}

	return firstMac(configs), nil
}

// V6Address implements the hardware.BMCLan interface.
func (s *Snapshot) V6Address(ctx context.Context) (net.IP, error) {
	s.lan6Once.Do(func() {
		s.v6, s.lan6Err = s.client.V6Address(ctx)
	})

	return s.v6, s.lan6Err
}

func splitField(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

func parseLanPrint(out string) lanConfig {
	cfg := lanConfig{}

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		key, value, ok := splitField(scanner.Text())
		if !ok {
			continue
		}

		switch key {
		case "IP Address":
			cfg.address = value
		case "MAC Address":
			cfg.mac = value
		}
	}

	return cfg
}

func parseLan6Print(out string) net.IP {
	var pending net.IP

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		key, value, ok := splitField(scanner.Text())
		if !ok {
			continue
		}

		switch key {
		case "Address":
			addr, _, _ := strings.Cut(value, "/")

			pending = net.ParseIP(addr)
			if pending == nil || pending.To4() != nil || pending.IsUnspecified() || pending.IsLinkLocalUnicast() {
				pending = nil
			}
		case "Status":
			if pending != nil && value == "active" {
				return pending
			}

			pending = nil
		}
	}

	return nil
}
