package model

const (
	DefaultDMIPath         = "/sys/devices/virtual/dmi/id"
	DefaultSysfsRoot       = "/"
	DefaultInventoryFile   = "/etc/hwmanager/inventory.yaml"
	DefaultIpmitoolPath    = "ipmitool"
	DefaultIpmiMaxChannel  = 11
	DefaultInventorySource = InventorySourceFile
)

// Config holds application configuration read from a YAML or set by env variables.
//
// nolint:govet // prefer readability over field alignment optimization for this case.
type Config struct {
	// LogLevel is the app verbose logging level.
	// one of - info, debug, trace
	LogLevel string `mapstructure:"log_level"`

	// AppKind is the application kind - detect / inventory
	AppKind AppKind `mapstructure:"app_kind"`

	// DMIPath is the directory the firmware identity attributes are read from.
	DMIPath string `mapstructure:"dmi_path"`

	// SysfsRoot is prefixed to the EFI and kernel cmdline paths read for boot information.
	SysfsRoot string `mapstructure:"sysfs_root"`

	// StrictDetection aborts manager selection when a manager fails to evaluate
	// hardware support, instead of excluding that manager.
	StrictDetection bool `mapstructure:"strict_detection"`

	// InventorySource is where the generic manager reads the device component inventory from,
	// one of file OR bmc
	InventorySource InventorySourceKind `mapstructure:"inventory_source"`

	// InventoryFile is the YAML/JSON device inventory document for the file inventory source.
	InventoryFile string `mapstructure:"inventory_file"`

	// MetricsTextfile when set, the prometheus metrics are written to this file on exit.
	MetricsTextfile string `mapstructure:"metrics_textfile"`

	// BMC defines the BMC connection parameters for the bmc inventory source.
	//
	// This parameter is required when InventorySource is set to bmc.
	BMC *BMCOptions `mapstructure:"bmc"`

	// Ipmitool configures the generic BMC address lookup.
	Ipmitool *IpmitoolOptions `mapstructure:"ipmitool"`
}

// BMCOptions defines the BMC the bmc inventory source connects to.
type BMCOptions struct {
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Vendor   string `mapstructure:"vendor"`
}

// IpmitoolOptions defines the ipmitool invocation parameters.
type IpmitoolOptions struct {
	Path       string `mapstructure:"path"`
	MaxChannel int    `mapstructure:"max_channel"`
}
