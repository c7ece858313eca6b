package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/metal-toolbox/hwmanager/internal/app"
	"github.com/metal-toolbox/hwmanager/internal/hardware"
	"github.com/metal-toolbox/hwmanager/internal/metrics"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/spf13/cobra"
)

var cmdDetect = &cobra.Command{
	Use:   "detect",
	Short: "Evaluate the hardware support of each hardware manager and list the results",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDetect(cmd.Context()); err != nil {
			os.Exit(1)
		}
	},
}

type detected struct {
	Manager  string `json:"manager"`
	Version  string `json:"version"`
	Support  string `json:"support"`
	Level    int    `json:"level"`
	Selected bool   `json:"selected"`
	Error    string `json:"error,omitempty"`
}

// detectedManagers lists every evaluated manager in registration order, the
// managers that serve accessors are marked selected.
func detectedManagers(evaluations []hardware.Evaluation) []detected {
	out := make([]detected, 0, len(evaluations))

	for _, e := range evaluations {
		d := detected{
			Manager:  e.Manager.Name(),
			Version:  e.Manager.Version(),
			Support:  e.Support.String(),
			Level:    int(e.Support),
			Selected: e.Support != model.HardwareSupportNone,
		}

		if e.Err != nil {
			d.Error = e.Err.Error()
		}

		out = append(out, d)
	}

	return out
}

func runDetect(ctx context.Context) error {
	hwm, _, err := app.New(model.AppKindDetect, cfgFile, logLevel())
	if err != nil {
		log.Fatal(err)
	}

	defer writeMetrics(hwm)

	managers, err := initManagers(hwm)
	if err != nil {
		hwm.Logger.Error(err)
		return err
	}

	evaluations, err := hardware.Evaluate(ctx, managers, hwm.Config.StrictDetection, hwm.Logger)
	if err != nil {
		hwm.Logger.Error(err)
		return err
	}

	b, err := json.MarshalIndent(detectedManagers(evaluations), "", "  ")
	if err != nil {
		hwm.Logger.Error(err)
		return err
	}

	fmt.Println(string(b))

	return nil
}

func writeMetrics(hwm *app.App) {
	if hwm.Config.MetricsTextfile == "" {
		return
	}

	if err := metrics.WriteTextfile(hwm.Config.MetricsTextfile); err != nil {
		hwm.Logger.Warn(err)
	}
}

func init() {
	rootCmd.AddCommand(cmdDetect)
}
