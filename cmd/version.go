package cmd

import (
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of clevofan",
	Long:  `All software has versions. This is clevofan's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("1.0.0")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
