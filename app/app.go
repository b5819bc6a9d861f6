package app

import (
	"github.com/agrimandi/agrimandi-server/app/auth"
	"github.com/agrimandi/agrimandi-server/app/category"
	"github.com/agrimandi/agrimandi-server/app/config"
	"github.com/agrimandi/agrimandi-server/app/kyc"
	"github.com/agrimandi/agrimandi-server/app/mandi"
	"github.com/agrimandi/agrimandi-server/app/notification"
	"github.com/agrimandi/agrimandi-server/app/order"
	"github.com/agrimandi/agrimandi-server/app/otp"
	"github.com/agrimandi/agrimandi-server/app/plan"
	"github.com/agrimandi/agrimandi-server/app/post"
	"github.com/agrimandi/agrimandi-server/app/rates"
	appStorage "github.com/agrimandi/agrimandi-server/app/storage"
	"github.com/agrimandi/agrimandi-server/app/user"
	"github.com/agrimandi/agrimandi-server/cache"
	"github.com/agrimandi/agrimandi-server/model"
	repo "github.com/agrimandi/agrimandi-server/model"
	"github.com/agrimandi/agrimandi-server/mongodatabase"
	"github.com/agrimandi/agrimandi-server/storage"

	"github.com/sirupsen/logrus"
)

// App our application
type App struct {
	Config              *config.Config
	Repos               *repo.Repos
	AuthService         auth.Service
	OtpService          otp.Service
	UserService         user.Service
	MandiService        mandi.Service
	RatesService        rates.Service
	CategoryService     category.Service
	OrderService        order.Service
	NotificationService notification.Service
	KycService          kyc.Service
	PostService         post.Service
	PlanService         plan.Service
	StorageService      appStorage.Service
}

// NewContext create new request context
func (a *App) NewContext() *Context {
	return &Context{
		Logger: logrus.StandardLogger(),
	}
}

// New create a new app
func New() (app *App, err error) {
	appConf, err := config.InitConfig()
	if err != nil {
		return nil, err
	}

	cacheConf, err := cache.InitConfig()
	if err != nil {
		return nil, err
	}

	mongoDBConf, err := mongodatabase.InitConfig()
	if err != nil {
		return nil, err
	}

	storageConf, err := storage.InitConfig()
	if err != nil {
		return nil, err
	}

	fileStore, err := storage.New(storageConf)
	if err != nil {
		return nil, err
	}

	tmpStore, err := storage.NewTmp()
	if err != nil {
		return nil, err
	}

	repos := &model.Repos{
		Cache:      cache.New(cacheConf),
		MongoDB:    mongoDBConf,
		Storage:    fileStore,
		TmpStorage: tmpStore,
	}

	userService := user.NewService(repos, appConf)
	notificationService := notification.NewService(repos, appConf)

	return &App{
		Config:              appConf,
		Repos:               repos,
		AuthService:         auth.NewService(repos, appConf),
		OtpService:          otp.NewService(repos, appConf),
		UserService:         userService,
		MandiService:        mandi.NewService(repos, appConf),
		RatesService:        rates.NewService(repos, appConf, notificationService),
		CategoryService:     category.NewService(repos, appConf),
		OrderService:        order.NewService(repos, appConf, notificationService),
		NotificationService: notificationService,
		KycService:          kyc.NewService(repos, appConf, userService, notificationService),
		PostService:         post.NewService(repos, appConf),
		PlanService:         plan.NewService(repos, appConf),
		StorageService:      appStorage.NewService(repos, appConf),
	}, nil
}

// Close closes application handles and connections
func (a *App) Close() {
	logrus.Info("Closing Connection to cache")

	err := a.Repos.Cache.Close()
	if err != nil {
		logrus.Error("unable to close connection to cache", err)
	}
}

// ValidationError error when inputs are invalid
type ValidationError struct {
	Message string `json:"message"`
	// InvalidUnit carries the offending unit on price validation failures
	InvalidUnit string `json:"invalidUnit,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserError when user is disallowed from resource
type UserError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *UserError) Error() string {
	return e.Message
}
