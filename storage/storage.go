package storage

import (
	"errors"

	"github.com/agrimandi/agrimandi-server/model"

	"github.com/spf13/viper"
)

// New create new storage adapter
func New(conf *Config) (model.FileStorage, error) {
	var s model.FileStorage
	var err error
	switch conf.Type {
	case "local":
		s, err = NewLocalStorage(conf.Path)
	case "s3":
		s, err = NewS3Storage(conf.Path, conf.Region, conf.Endpoint, conf.AccessKeyID, conf.SecretAccessKey)
	}
	if err != nil {
		return nil, errors.New("failed to create storage adapter")
	}
	return s, nil
}

func NewTmp() (model.FileStorage, error) {
	config := &Config{}
	subv := viper.Sub("tmpFileStorage")
	err := subv.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return New(config)
}
