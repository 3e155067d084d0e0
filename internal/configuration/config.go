package configuration

import (
	"strings"

	"github.com/SanteriHetekivi/clevo-ns50mu-fan-controller/internal/ui"
	"github.com/spf13/viper"
)

type Configuration struct {
	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

type ApiConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

var CurrentConfig Configuration

// InitConfig prepares the configuration sources. There is deliberately no
// config file: the control constants are fixed by the hardware and only the
// ambient surfaces (metrics, status API) can be toggled, via environment
// variables like CLEVOFAN_STATISTICS_ENABLED.
func InitConfig() {
	viper.SetEnvPrefix("clevofan")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)
	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.port", 9001)
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
