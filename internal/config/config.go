package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultAPIURL    = "https://clawdsbet.com/api"
	DefaultHealthURL = "https://clawdsbet.com/health"
)

// flagKeys maps persistent flag names onto the viper keys they override.
var flagKeys = map[string]string{
	"api-url":   KeyAPIURL,
	"api-key":   KeyAPIKey,
	"log-level": KeyLogLevel,
}

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		for name, key := range flagKeys {
			if flag := root.PersistentFlags().Lookup(name); flag != nil {
				_ = viper.BindPFlag(key, flag)
			}
		}
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyAPIURL, DefaultAPIURL)
	viper.SetDefault(KeyAPIKey, "")
	viper.SetDefault(KeyHealthURL, DefaultHealthURL)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyOTelEnabled, false)
}

func APIURL() string    { return viper.GetString(KeyAPIURL) }
func APIKey() string    { return viper.GetString(KeyAPIKey) }
func HealthURL() string { return viper.GetString(KeyHealthURL) }
func LogLevel() string  { return viper.GetString(KeyLogLevel) }
func OTelEnabled() bool { return viper.GetBool(KeyOTelEnabled) }
