package config

import (
	"github.com/spf13/viper"
)

// Config app configuration
type Config struct {
	JWTKey          string   `mapstructure:"jwtKey"`
	TokenExpiration int      `mapstructure:"tokenExpiration"`
	OTPLength       int      `mapstructure:"otpLength"`
	OTPTTL          int      `mapstructure:"otpTTL"`
	TestPhones      []string `mapstructure:"testPhones"`
	TestOTP         string   `mapstructure:"testOtp"`
	SMSGatewayURL   string   `mapstructure:"smsGatewayURL"`
	SMSAuthKey      string   `mapstructure:"smsAuthKey"`
	SMSRoute        string   `mapstructure:"smsRoute"`
	SMSSenderID     string   `mapstructure:"smsSenderID"`
	ExpoPushURL     string   `mapstructure:"expoPushURL"`
	PANGatewayURL   string   `mapstructure:"panGatewayURL"`
	PANSecretKey    string   `mapstructure:"panSecretKey"`
}

// InitConfig initialize app configuration
func InitConfig() (*Config, error) {
	config := &Config{}
	subv := viper.Sub("app")
	err := subv.Unmarshal(&config)
	return config, err
}
