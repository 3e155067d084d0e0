package fan

import (
	"strconv"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ec"
	"github.com/spf13/cobra"
)

var setSpeedCmd = &cobra.Command{
	Use:   "setSpeed",
	Short: "Set the fan duty cycle to the given percentage ([0..100])",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return err
		}

		device, err := ec.NewPortDevice()
		if err != nil {
			return err
		}

		return ec.NewDriver(device).SetFanSpeed(uint8(percent))
	},
}

func init() {
	Command.AddCommand(setSpeedCmd)
}
