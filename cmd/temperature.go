package cmd

import (
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ec"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ui"
	"github.com/spf13/cobra"
)

var temperatureCmd = &cobra.Command{
	Use:   "temperature",
	Short: "Print the current chip temperature reported by the EC",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		device, err := ec.NewPortDevice()
		if err != nil {
			return err
		}

		temp, err := ec.NewDriver(device).GetTemperature()
		if err != nil {
			return err
		}

		ui.Printfln("%d", temp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(temperatureCmd)
}
