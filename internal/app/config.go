package app

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jeremywohl/flatten"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

var (
	ErrConfig = errors.New("configuration error")
)

// LoadConfiguration loads application configuration
//
// Reads in the cfgFile when available and overrides from environment variables.
func (a *App) LoadConfiguration(cfgFile string) error {
	a.v.SetFs(a.fs)
	a.v.SetConfigType("yaml")
	a.v.SetEnvPrefix(model.AppName)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// these are initialized here so viper can read in configuration from env vars
	// once https://github.com/spf13/viper/pull/1429 is merged, this can go.
	a.Config.BMC = &model.BMCOptions{}
	a.Config.Ipmitool = &model.IpmitoolOptions{}

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)

		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrap(ErrConfig, "ReadConfig error: "+err.Error())
		}
	}

	a.setDefaults()

	if err := a.envBindVars(); err != nil {
		return errors.Wrap(ErrConfig, "env var bind error: "+err.Error())
	}

	if err := a.v.Unmarshal(a.Config); err != nil {
		return errors.Wrap(ErrConfig, "Unmarshal error: "+err.Error())
	}

	if err := validate(a.Config); err != nil {
		return errors.Wrap(ErrConfig, err.Error())
	}

	return nil
}

func (a *App) setDefaults() {
	a.v.SetDefault("log_level", "info")
	a.v.SetDefault("dmi_path", model.DefaultDMIPath)
	a.v.SetDefault("sysfs_root", model.DefaultSysfsRoot)
	a.v.SetDefault("inventory_source", string(model.DefaultInventorySource))
	a.v.SetDefault("inventory_file", model.DefaultInventoryFile)
	a.v.SetDefault("ipmitool.path", model.DefaultIpmitoolPath)
	a.v.SetDefault("ipmitool.max_channel", model.DefaultIpmiMaxChannel)
}

// envBindVars binds environment variables to the struct
// without a configuration file being unmarshalled,
// this is a workaround for a viper bug,
//
// This can be replaced by the solution in https://github.com/spf13/viper/pull/1429
// once that PR is merged.
func (a *App) envBindVars() error {
	envKeysMap := map[string]interface{}{}
	if err := mapstructure.Decode(a.Config, &envKeysMap); err != nil {
		return err
	}

	// Flatten nested conf map
	flat, err := flatten.Flatten(envKeysMap, "", flatten.DotStyle)
	if err != nil {
		return errors.Wrap(err, "Unable to flatten config")
	}

	for k := range flat {
		if err := a.v.BindEnv(k); err != nil {
			return errors.Wrap(ErrConfig, "env var bind error: "+err.Error())
		}
	}

	return nil
}

// validate returns all the configuration errors found.
func validate(cfg *model.Config) error {
	var errs *multierror.Error

	switch cfg.LogLevel {
	case "info", "debug", "trace":
	default:
		errs = multierror.Append(errs, fmt.Errorf("invalid log_level: %q", cfg.LogLevel))
	}

	if cfg.DMIPath == "" {
		errs = multierror.Append(errs, errors.New("dmi_path not defined"))
	}

	switch cfg.InventorySource {
	case model.InventorySourceFile:
		if cfg.InventoryFile == "" {
			errs = multierror.Append(errs, errors.New("inventory_file not defined"))
		}
	case model.InventorySourceBMC:
		if cfg.BMC == nil || cfg.BMC.Address == "" {
			errs = multierror.Append(errs, errors.New("bmc.address not defined"))
		}

		if cfg.BMC == nil || cfg.BMC.Username == "" || cfg.BMC.Password == "" {
			errs = multierror.Append(errs, errors.New("bmc.username and bmc.password required"))
		}
	default:
		errs = multierror.Append(errs, fmt.Errorf("invalid inventory_source: %q, expected one of %v", cfg.InventorySource, model.InventorySourceKinds()))
	}

	if cfg.Ipmitool == nil || cfg.Ipmitool.Path == "" {
		errs = multierror.Append(errs, errors.New("ipmitool.path not defined"))
	}

	if cfg.Ipmitool != nil && cfg.Ipmitool.MaxChannel < 1 {
		errs = multierror.Append(errs, fmt.Errorf("invalid ipmitool.max_channel: %d", cfg.Ipmitool.MaxChannel))
	}

	return errs.ErrorOrNil()
}
