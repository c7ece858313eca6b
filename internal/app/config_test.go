package app

import (
	"testing"

	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfgFile, content string) *App {
	t.Helper()

	fs := afero.NewMemMapFs()
	if cfgFile != "" {
		require.Nil(t, afero.WriteFile(fs, cfgFile, []byte(content), 0o600))
	}

	return &App{
		v:      viper.New(),
		fs:     fs,
		Config: &model.Config{AppKind: model.AppKindInventory},
	}
}

func TestLoadConfigurationDefaults(t *testing.T) {
	a := newTestApp(t, "", "")

	require.Nil(t, a.LoadConfiguration(""))

	assert.Equal(t, "info", a.Config.LogLevel)
	assert.Equal(t, model.AppKindInventory, a.Config.AppKind)
	assert.Equal(t, model.DefaultDMIPath, a.Config.DMIPath)
	assert.Equal(t, model.DefaultSysfsRoot, a.Config.SysfsRoot)
	assert.Equal(t, model.InventorySourceFile, a.Config.InventorySource)
	assert.Equal(t, model.DefaultInventoryFile, a.Config.InventoryFile)
	assert.Equal(t, model.DefaultIpmitoolPath, a.Config.Ipmitool.Path)
	assert.Equal(t, model.DefaultIpmiMaxChannel, a.Config.Ipmitool.MaxChannel)
	assert.False(t, a.Config.StrictDetection)
}

func TestLoadConfigurationFile(t *testing.T) {
	content := `
log_level: debug
dmi_path: /run/dmi
strict_detection: true
inventory_source: bmc
metrics_textfile: /var/lib/node_exporter/hwmanager.prom
bmc:
  address: 10.20.30.40
  username: root
  password: hunter2
ipmitool:
  max_channel: 4
`
	a := newTestApp(t, "/etc/hwmanager/config.yaml", content)

	require.Nil(t, a.LoadConfiguration("/etc/hwmanager/config.yaml"))

	assert.Equal(t, "debug", a.Config.LogLevel)
	assert.Equal(t, "/run/dmi", a.Config.DMIPath)
	assert.True(t, a.Config.StrictDetection)
	assert.Equal(t, model.InventorySourceBMC, a.Config.InventorySource)
	assert.Equal(t, "/var/lib/node_exporter/hwmanager.prom", a.Config.MetricsTextfile)
	assert.Equal(t, &model.BMCOptions{Address: "10.20.30.40", Username: "root", Password: "hunter2"}, a.Config.BMC)
	assert.Equal(t, 4, a.Config.Ipmitool.MaxChannel)
	assert.Equal(t, model.DefaultIpmitoolPath, a.Config.Ipmitool.Path)
}

func TestLoadConfigurationEnvOverrides(t *testing.T) {
	t.Setenv("HWMANAGER_LOG_LEVEL", "trace")
	t.Setenv("HWMANAGER_INVENTORY_FILE", "/tmp/inventory.json")
	t.Setenv("HWMANAGER_IPMITOOL_PATH", "/usr/local/bin/ipmitool")

	a := newTestApp(t, "/config.yaml", "log_level: debug\n")

	require.Nil(t, a.LoadConfiguration("/config.yaml"))

	assert.Equal(t, "trace", a.Config.LogLevel)
	assert.Equal(t, "/tmp/inventory.json", a.Config.InventoryFile)
	assert.Equal(t, "/usr/local/bin/ipmitool", a.Config.Ipmitool.Path)
}

func TestLoadConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		cfgFile  string
		content  string
		load     string
		contains []string
	}{
		{
			name: "missing config file",
			load: "/nonexistent.yaml",
			contains: []string{
				"ReadConfig error",
			},
		},
		{
			name:    "invalid values",
			cfgFile: "/config.yaml",
			content: "log_level: verbose\ninventory_source: serverservice\nipmitool:\n  max_channel: 0\n",
			load:    "/config.yaml",
			contains: []string{
				`invalid log_level: "verbose"`,
				`invalid inventory_source: "serverservice"`,
				"invalid ipmitool.max_channel: 0",
			},
		},
		{
			name:    "bmc source without credentials",
			cfgFile: "/config.yaml",
			content: "inventory_source: bmc\n",
			load:    "/config.yaml",
			contains: []string{
				"bmc.address not defined",
				"bmc.username and bmc.password required",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestApp(t, tc.cfgFile, tc.content)

			err := a.LoadConfiguration(tc.load)
			assert.ErrorIs(t, err, ErrConfig)

			for _, s := range tc.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}
