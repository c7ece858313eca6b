package hardware

import (
	"context"
	"testing"

	"github.com/metal-toolbox/hwmanager/internal/fixtures"
	"github.com/metal-toolbox/hwmanager/internal/inventory"
	"github.com/metal-toolbox/hwmanager/internal/ipmi"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGeneric(t *testing.T, bmc BMCLan, efi bool, cmdline string) *Generic {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.Nil(t, afero.WriteFile(fs, "/proc/cmdline", []byte(cmdline), 0o444))

	if efi {
		require.Nil(t, fs.MkdirAll("/sys/firmware/efi", 0o755))
	}

	return NewGeneric(
		&fixtures.InventorySource{Device: fixtures.FX700},
		bmc,
		fs,
		"/",
		logrus.New(),
		WithHostnameFunc(func() (string, error) { return "fx700-01", nil }),
	)
}

func TestGenericComponents(t *testing.T) {
	g := newTestGeneric(t, &fixtures.BMCLan{}, true, "")
	ctx := context.Background()

	nics, err := g.NetworkInterfaces(ctx)
	require.Nil(t, err)
	assert.Equal(t, "ConnectX-6", nics[0].Model)

	cpus, err := g.CPUs(ctx)
	require.Nil(t, err)
	assert.Equal(t, "A64FX", cpus[0].Model)

	drives, err := g.BlockDevices(ctx)
	require.Nil(t, err)
	assert.Equal(t, "PM983", drives[0].Model)

	memory, err := g.Memory(ctx)
	require.Nil(t, err)
	assert.Equal(t, "HBM2", memory[0].Model)

	vendor, err := g.SystemVendor(ctx)
	require.Nil(t, err)
	assert.Equal(t, &model.SystemVendor{
		ProductName:  "FX700",
		SerialNumber: "FX7-0001",
		Manufacturer: "FUJITSU",
		Firmware:     &model.SystemFirmware{Vendor: "FUJITSU", Version: "1.2.3"},
	}, vendor)

	hostname, err := g.Hostname(ctx)
	require.Nil(t, err)
	assert.Equal(t, "fx700-01", hostname)

	support, err := g.EvaluateSupport(ctx)
	require.Nil(t, err)
	assert.Equal(t, model.HardwareSupportGeneric, support)
}

func TestGenericSourceErrors(t *testing.T) {
	errSource := errors.New("inventory source down")
	g := NewGeneric(&fixtures.InventorySource{Err: errSource}, &fixtures.BMCLan{}, afero.NewMemMapFs(), "/", logrus.New())

	_, err := g.CPUs(context.Background())
	assert.ErrorIs(t, err, errSource)

	ctrl := gomock.NewController(t)

	source := inventory.NewMockSource(ctrl)
	source.EXPECT().Inventory(gomock.Any()).Return(nil, nil).Times(1)

	g = NewGeneric(source, &fixtures.BMCLan{}, afero.NewMemMapFs(), "/", logrus.New())

	_, err = g.Memory(context.Background())
	assert.ErrorIs(t, err, ErrNoInventory)
}

func TestGenericBootInfo(t *testing.T) {
	tests := []struct {
		name     string
		efi      bool
		cmdline  string
		expected *model.BootInfo
	}{
		{
			"uefi pxe boot",
			true,
			"initrd=agent.initramfs BOOTIF=01-3c-ec-ef-12-34-56 ipa-debug=1\n",
			&model.BootInfo{CurrentBootMode: model.BootModeUEFI, PXEInterface: "3c:ec:ef:12:34:56"},
		},
		{
			"legacy boot without bootif",
			false,
			"root=/dev/ram0 console=ttyS0\n",
			&model.BootInfo{CurrentBootMode: model.BootModeBIOS},
		},
		{
			"bootif without hardware type",
			true,
			"BOOTIF=3c:ec:ef:12:34:56",
			&model.BootInfo{CurrentBootMode: model.BootModeUEFI, PXEInterface: "3c:ec:ef:12:34:56"},
		},
		{
			"invalid bootif",
			true,
			"BOOTIF=bogus",
			&model.BootInfo{CurrentBootMode: model.BootModeUEFI},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGeneric(t, &fixtures.BMCLan{}, tc.efi, tc.cmdline)

			got, err := g.BootInfo(context.Background())
			require.Nil(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestGenericBootInfoNoCmdline(t *testing.T) {
	g := NewGeneric(&fixtures.InventorySource{Device: fixtures.FX700}, &fixtures.BMCLan{}, afero.NewMemMapFs(), "/", logrus.New())

	_, err := g.BootInfo(context.Background())
	assert.ErrorIs(t, err, ErrBootInfo)
}

func TestGenericBMC(t *testing.T) {
	ctx := context.Background()

	t.Run("bmc configured", func(t *testing.T) {
		g := newTestGeneric(t, &fixtures.BMCLan{IP: "10.20.30.40", IPv6: "fd00:10::40", MAC: "3c:ec:ef:12:34:56"}, true, "")

		ip, err := g.BMCAddress(ctx)
		require.Nil(t, err)
		assert.Equal(t, "10.20.30.40", ip.String())

		ip6, err := g.BMCV6Address(ctx)
		require.Nil(t, err)
		assert.Equal(t, "fd00:10::40", ip6.String())

		mac, err := g.BMCMac(ctx)
		require.Nil(t, err)
		assert.Equal(t, "3c:ec:ef:12:34:56", mac.String())
	})

	t.Run("no bmc channel configured", func(t *testing.T) {
		g := newTestGeneric(t, &fixtures.BMCLan{}, true, "")

		ip, err := g.BMCAddress(ctx)
		assert.Nil(t, err)
		assert.Nil(t, ip)

		_, err = g.BMCMac(ctx)
		assert.ErrorIs(t, err, model.ErrIncompatibleHardwareMethod)
	})

	t.Run("ipmitool unavailable", func(t *testing.T) {
		g := newTestGeneric(t, &fixtures.BMCLan{Err: errors.Wrap(ipmi.ErrUnavailable, "not found")}, true, "")

		ip, err := g.BMCAddress(ctx)
		assert.Nil(t, err)
		assert.Nil(t, ip)

		ip6, err := g.BMCV6Address(ctx)
		assert.Nil(t, err)
		assert.Nil(t, ip6)

		_, err = g.BMCMac(ctx)
		assert.ErrorIs(t, err, model.ErrIncompatibleHardwareMethod)
	})

	t.Run("bmc query error", func(t *testing.T) {
		errCtx := context.DeadlineExceeded
		g := newTestGeneric(t, &fixtures.BMCLan{Err: errCtx}, true, "")

		_, err := g.BMCAddress(ctx)
		assert.ErrorIs(t, err, errCtx)

		_, err = g.BMCMac(ctx)
		assert.ErrorIs(t, err, errCtx)
		assert.NotErrorIs(t, err, model.ErrIncompatibleHardwareMethod)
	})
}
