package model

import (
	"github.com/agrimandi/agrimandi-server/cache"
	"github.com/agrimandi/agrimandi-server/mongodatabase"
)

// Repos container to hold handles for cache / db repos
type Repos struct {
	Cache      *cache.Cache
	MongoDB    *mongodatabase.DBConfig
	Storage    FileStorage
	TmpStorage FileStorage
}
