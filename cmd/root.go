package cmd

import (
	"fmt"
	"os"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/cmd/fan"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/cmd/global"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/configuration"
	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clevofan",
	Short: "A daemon to control the fan of a Clevo NS50MU laptop.",
	Long: `clevofan is a simple daemon that reads the chip temperature from
the embedded controller of a Clevo NS50MU laptop and adjusts the fan
duty cycle through a hysteresis based control loop.`,
	// this is the default command to run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		setupUi()
		printHeader()

		configuration.LoadConfig()

		internal.RunDaemon()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&global.NoColor, "no-color", "", false, "Disable all terminal output coloration")
	rootCmd.PersistentFlags().BoolVarP(&global.NoStyle, "no-style", "", false, "Disable all terminal output styling")
	rootCmd.PersistentFlags().BoolVarP(&global.Verbose, "verbose", "v", false, "More verbose output")

	rootCmd.AddCommand(fan.Command)
}

func setupUi() {
	ui.SetDebugEnabled(global.Verbose)

	if global.NoColor {
		pterm.DisableColor()
	}
	if global.NoStyle {
		pterm.DisableStyling()
	}
}

// Print a large text with the LetterStyle from the standard theme.
func printHeader() {
	err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle("clevo", pterm.NewStyle(pterm.FgLightBlue)),
		pterm.NewLettersFromStringWithStyle("fan", pterm.NewStyle(pterm.FgWhite)),
	).Render()
	if err != nil {
		fmt.Println("clevofan")
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(func() {
		configuration.InitConfig()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
