package cmd

import (
	"fmt"
	"log"

	"github.com/emicklei/dot"
	"github.com/metal-toolbox/hwmanager/internal/app"
	"github.com/metal-toolbox/hwmanager/internal/hardware"
	"github.com/metal-toolbox/hwmanager/internal/model"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	mermaid bool
}

var (
	exportFlagSet = &exportFlags{}
)

var cmdExportCapabilities = &cobra.Command{
	Use:   "export-capabilities [--mermaid]",
	Short: "Export the accessor to hardware manager table of the selected managers as a graph",
	Run: func(cmd *cobra.Command, args []string) {
		hwm, _, err := app.New(model.AppKindDetect, cfgFile, logLevel())
		if err != nil {
			log.Fatal(err)
		}

		managers, err := initManagers(hwm)
		if err != nil {
			hwm.Logger.Fatal(err)
		}

		selected, err := hardware.Select(cmd.Context(), managers, hwm.Config.StrictDetection, hwm.Logger)
		if err != nil {
			hwm.Logger.Fatal(err)
		}

		g := hardware.Graph(selected)

		if exportFlagSet.mermaid {
			fmt.Println(dot.MermaidGraph(g, dot.MermaidTopDown))
			return
		}

		fmt.Println(g.String())
	},
}

func init() {
	cmdExportCapabilities.Flags().BoolVarP(&exportFlagSet.mermaid, "mermaid", "", false, "export the graph in mermaid format")

	rootCmd.AddCommand(cmdExportCapabilities)
}
