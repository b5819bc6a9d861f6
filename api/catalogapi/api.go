package catalogapi

import (
	"github.com/agrimandi/agrimandi-server/api/common"
	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/cache"
	repo "github.com/agrimandi/agrimandi-server/model"
)

type api struct {
	config *common.Config
	cache  *cache.Cache
	App    *app.App
}

// New creates a new api
func New(conf *common.Config, repos *repo.Repos, app *app.App) *api {
	return &api{
		config: conf,
		cache:  repos.Cache,
		App:    app,
	}
}
