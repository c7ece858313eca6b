package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/equinix-labs/otel-init-go/otelinit"
	"github.com/metal-toolbox/hwmanager/internal/app"
	"github.com/metal-toolbox/hwmanager/internal/hardware"
	"github.com/metal-toolbox/hwmanager/internal/inventory"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/metal-toolbox/hwmanager/internal/version"
	"github.com/spf13/cobra"
)

var (
	pretty bool
)

var cmdInventory = &cobra.Command{
	Use:   "inventory",
	Short: "Collect the hardware inventory from the selected hardware managers and print it as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		// exit after runInventory returns so the metrics textfile and traces are flushed
		if err := runInventory(cmd.Context()); err != nil {
			os.Exit(1)
		}
	},
}

func runInventory(ctx context.Context) error {
	hwm, termCh, err := app.New(model.AppKindInventory, cfgFile, logLevel())
	if err != nil {
		log.Fatal(err)
	}

	ctx, otelShutdown := otelinit.InitOpenTelemetry(ctx, model.AppName)
	defer otelShutdown(ctx)

	// Setup cancel context with cancel func.
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	// routine listens for termination signal and cancels the context
	go func() {
		<-termCh
		hwm.Logger.Info("got TERM signal, exiting...")
		cancelFunc()
	}()

	version.ExportBuildInfoMetric()

	defer writeMetrics(hwm)

	record, err := collect(ctx, hwm)
	if err != nil {
		hwm.Logger.Error(err)
		return err
	}

	var b []byte
	if pretty {
		b, err = json.MarshalIndent(record, "", "  ")
	} else {
		b, err = json.Marshal(record)
	}

	if err != nil {
		hwm.Logger.Error(err)
		return err
	}

	fmt.Println(string(b))

	return nil
}

func collect(ctx context.Context, hwm *app.App) (*inventory.Record, error) {
	managers, err := initManagers(hwm)
	if err != nil {
		return nil, err
	}

	selected, err := hardware.Select(ctx, managers, hwm.Config.StrictDetection, hwm.Logger)
	if err != nil {
		return nil, err
	}

	return inventory.Assemble(ctx, hardware.NewDispatcher(selected, hwm.Logger), hwm.Logger)
}

func init() {
	cmdInventory.PersistentFlags().BoolVarP(&pretty, "pretty", "", false, "Indent the inventory JSON output")

	rootCmd.AddCommand(cmdInventory)
}
