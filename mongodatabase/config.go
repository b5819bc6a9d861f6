package mongodatabase

import (
	"github.com/spf13/viper"
)

// DBConfig configuration for db
type DBConfig struct {
	Host        string `mapstructure:"host"`
	DBName      string `mapstructure:"dbName"`
	MaxPoolSize uint64 `mapstructure:"maxPoolSize"`
}

// InitConfig initialize db configuration
func InitConfig() (*DBConfig, error) {
	dbconfig := &DBConfig{}
	subv := viper.Sub("mongodatabase")
	err := subv.Unmarshal(&dbconfig)
	if dbconfig.MaxPoolSize == 0 {
		dbconfig.MaxPoolSize = 100
	}
	return dbconfig, err
}
