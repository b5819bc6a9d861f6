package api

import (
	"net/http"

	authApipk "github.com/agrimandi/agrimandi-server/api/authapi"
	catalogApipk "github.com/agrimandi/agrimandi-server/api/catalogapi"
	"github.com/agrimandi/agrimandi-server/api/common"
	kycApipk "github.com/agrimandi/agrimandi-server/api/kycapi"
	mandiApipk "github.com/agrimandi/agrimandi-server/api/mandiapi"
	notificationApipk "github.com/agrimandi/agrimandi-server/api/notificationapi"
	orderApipk "github.com/agrimandi/agrimandi-server/api/orderapi"
	userApipk "github.com/agrimandi/agrimandi-server/api/userapi"

	"github.com/agrimandi/agrimandi-server/app"
	"github.com/agrimandi/agrimandi-server/cache"

	"github.com/gorilla/mux"
)

// API agrimandi api
type API struct {
	App    *app.App
	Config *common.Config
	Cache  *cache.Cache
}

// New creates a new api
func New(a *app.App) (api *API, err error) {
	api = &API{App: a}
	api.Config, err = common.InitConfig()
	if err != nil {
		return nil, err
	}
	return api, nil
}

func (a *API) Init(r *mux.Router) {

	/* ****************** AUTH ****************** */
	authAPI := authApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/ping", a.handler(authAPI.Ping, false)).Methods(http.MethodGet)
	r.Handle("/auth/otp/request", a.handler(authAPI.RequestOTP, false)).Methods(http.MethodPost)
	r.Handle("/auth/otp/verify", a.handler(authAPI.VerifyOTP, false)).Methods(http.MethodPost)

	/* ****************** USERS ****************** */
	userAPI := userApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/b2bUser", a.handler(userAPI.CreateB2BUser, false)).Methods(http.MethodPost)
	r.Handle("/b2bUser", a.handler(userAPI.ListB2BUsers, true)).Methods(http.MethodGet)
	r.Handle("/b2bUser/{userID}", a.handler(userAPI.FetchB2BUser, true)).Methods(http.MethodGet)
	r.Handle("/b2bUser/{userID}", a.handler(userAPI.UpdateB2BUser, true)).Methods(http.MethodPut)
	r.Handle("/b2bUser/{userID}", a.handler(userAPI.DeleteB2BUser, true)).Methods(http.MethodDelete)
	r.Handle("/b2bUser/{userID}/catalog/price", a.handler(userAPI.UpdateCatalogPrice, true)).Methods(http.MethodPut)
	r.Handle("/b2cUser", a.handler(userAPI.CreateB2CUser, false)).Methods(http.MethodPost)
	r.Handle("/b2cUser", a.handler(userAPI.ListB2CUsers, true)).Methods(http.MethodGet)
	r.Handle("/b2cUser/{userID}", a.handler(userAPI.FetchB2CUser, true)).Methods(http.MethodGet)
	r.Handle("/b2cUser/{userID}", a.handler(userAPI.UpdateB2CUser, true)).Methods(http.MethodPut)
	r.Handle("/b2cUser/{userID}", a.handler(userAPI.DeleteB2CUser, true)).Methods(http.MethodDelete)
	r.Handle("/user/pushToken", a.handler(userAPI.AddPushToken, true)).Methods(http.MethodPost)
	r.Handle("/user/address", a.handler(userAPI.CreateAddress, true)).Methods(http.MethodPost)
	r.Handle("/user/address", a.handler(userAPI.ListAddresses, true)).Methods(http.MethodGet)
	r.Handle("/user/address/{addressID}", a.handler(userAPI.UpdateAddress, true)).Methods(http.MethodPut)
	r.Handle("/user/address/{addressID}", a.handler(userAPI.DeleteAddress, true)).Methods(http.MethodDelete)
	r.Handle("/user/file", a.handler(userAPI.UploadFile, true)).Methods(http.MethodPost)
	r.Handle("/user/file", a.handler(userAPI.GetFile, true)).Methods(http.MethodGet)
	r.Handle("/user/file", a.handler(userAPI.DeleteFile, true)).Methods(http.MethodDelete)

	/* ****************** MANDI ****************** */
	mandiAPI := mandiApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/mandi", a.handler(mandiAPI.CreateMandi, true)).Methods(http.MethodPost)
	r.Handle("/mandi", a.handler(mandiAPI.ListMandis, false)).Methods(http.MethodGet)
	r.Handle("/mandi/search", a.handler(mandiAPI.SearchMandis, false)).Methods(http.MethodGet)
	r.Handle("/mandi/{mandiID}", a.handler(mandiAPI.FetchMandi, false)).Methods(http.MethodGet)
	r.Handle("/mandi/{mandiID}", a.handler(mandiAPI.UpdateMandi, true)).Methods(http.MethodPut)
	r.Handle("/mandi/{mandiID}", a.handler(mandiAPI.DeleteMandi, true)).Methods(http.MethodDelete)

	/* ****************** MANDI RATES ****************** */
	r.Handle("/mandiRates", a.handler(mandiAPI.SaveCategoryPrices, true)).Methods(http.MethodPost)
	r.Handle("/mandiRates/bulk", a.handler(mandiAPI.SaveBulkRates, true)).Methods(http.MethodPost)
	r.Handle("/mandiRates/difference/{mandiID}/{category}", a.handler(mandiAPI.GetPriceDifference, false)).Methods(http.MethodGet)
	r.Handle("/mandiRates/history/{mandiID}", a.handler(mandiAPI.GetHistory, false)).Methods(http.MethodGet)
	r.Handle("/mandiRates/category/{category}", a.handler(mandiAPI.GetMandiByCategory, false)).Methods(http.MethodGet)
	r.Handle("/mandiRates/{mandiID}", a.handler(mandiAPI.GetRates, false)).Methods(http.MethodGet)

	/* ****************** KYC ****************** */
	kycAPI := kycApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/kyc/pan/verify", a.handler(kycAPI.VerifyPAN, true)).Methods(http.MethodPost)
	r.Handle("/kyc/{userID}", a.handler(kycAPI.FetchKYC, true)).Methods(http.MethodGet)
	r.Handle("/kyc/{userID}", a.handler(kycAPI.UpdateKYC, true)).Methods(http.MethodPut)
	r.Handle("/kyc/{userID}/status", a.handler(kycAPI.UpdateKYCStatus, true)).Methods(http.MethodPut)
	r.Handle("/kyc/{userID}/document", a.handler(kycAPI.UploadDocument, true)).Methods(http.MethodPost)
	r.Handle("/kyc/{userID}/document", a.handler(kycAPI.RemoveDocument, true)).Methods(http.MethodDelete)

	/* ****************** CATALOG ****************** */
	catalogAPI := catalogApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/category", a.handler(catalogAPI.CreateCategory, true)).Methods(http.MethodPost)
	r.Handle("/category", a.handler(catalogAPI.ListCategories, false)).Methods(http.MethodGet)
	r.Handle("/category/{categoryID}", a.handler(catalogAPI.UpdateCategory, true)).Methods(http.MethodPut)
	r.Handle("/category/{categoryID}", a.handler(catalogAPI.DeleteCategory, true)).Methods(http.MethodDelete)
	r.Handle("/category/{categoryID}/subCategory", a.handler(catalogAPI.ListSubCategories, false)).Methods(http.MethodGet)
	r.Handle("/subCategory", a.handler(catalogAPI.CreateSubCategory, true)).Methods(http.MethodPost)
	r.Handle("/subCategory/{subCategoryID}", a.handler(catalogAPI.DeleteSubCategory, true)).Methods(http.MethodDelete)

	/* ****************** POSTS / QUOTATIONS / PLANS ****************** */
	r.Handle("/post", a.handler(catalogAPI.CreatePost, true)).Methods(http.MethodPost)
	r.Handle("/post", a.handler(catalogAPI.ListPosts, false)).Methods(http.MethodGet)
	r.Handle("/post/{postID}", a.handler(catalogAPI.FetchPost, false)).Methods(http.MethodGet)
	r.Handle("/post/{postID}", a.handler(catalogAPI.UpdatePost, true)).Methods(http.MethodPut)
	r.Handle("/post/{postID}", a.handler(catalogAPI.DeletePost, true)).Methods(http.MethodDelete)
	r.Handle("/post/{postID}/quotation", a.handler(catalogAPI.ListQuotationsByPost, true)).Methods(http.MethodGet)
	r.Handle("/quotation", a.handler(catalogAPI.CreateQuotation, true)).Methods(http.MethodPost)
	r.Handle("/quotation/{quotationID}", a.handler(catalogAPI.DeleteQuotation, true)).Methods(http.MethodDelete)
	r.Handle("/plan", a.handler(catalogAPI.CreatePlan, true)).Methods(http.MethodPost)
	r.Handle("/plan", a.handler(catalogAPI.ListPlans, false)).Methods(http.MethodGet)
	r.Handle("/plan/{planID}", a.handler(catalogAPI.UpdatePlan, true)).Methods(http.MethodPut)
	r.Handle("/plan/{planID}", a.handler(catalogAPI.DeletePlan, true)).Methods(http.MethodDelete)

	/* ****************** ORDERS ****************** */
	orderAPI := orderApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/order", a.handler(orderAPI.CreateOrder, true)).Methods(http.MethodPost)
	r.Handle("/order", a.handler(orderAPI.ListOrders, true)).Methods(http.MethodGet)
	r.Handle("/order/{orderID}", a.handler(orderAPI.FetchOrder, true)).Methods(http.MethodGet)
	r.Handle("/order/{orderID}/status", a.handler(orderAPI.UpdateOrderStatus, true)).Methods(http.MethodPut)
	r.Handle("/order/{orderID}", a.handler(orderAPI.DeleteOrder, true)).Methods(http.MethodDelete)

	/* ****************** NOTIFICATIONS ****************** */
	notificationAPI := notificationApipk.New(a.Config, a.App.Repos, a.App)
	r.Handle("/notification", a.handler(notificationAPI.CreateNotification, true)).Methods(http.MethodPost)
	r.Handle("/notification", a.handler(notificationAPI.ListNotifications, true)).Methods(http.MethodGet)
	r.Handle("/notification/unread/count", a.handler(notificationAPI.UnreadCount, true)).Methods(http.MethodGet)
	r.Handle("/notification/read/{notificationID}", a.handler(notificationAPI.MarkNotificationAsRead, true)).Methods(http.MethodPost)
	r.Handle("/notification/markall/read", a.handler(notificationAPI.MarkAllNotificationsAsRead, true)).Methods(http.MethodPost)
}
