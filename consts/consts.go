package consts

// collections
const (
	B2BUsers           = "users_b2b"
	B2CUsers           = "users_b2c"
	Addresses          = "addresses"
	KYC                = "kyc"
	Orders             = "orders"
	Categories         = "categories"
	SubCategories      = "subcategories"
	Mandis             = "mandis"
	MandiCategoryPrice = "mandi_category_prices"
	B2BNotifications   = "notifications_b2b"
	B2CNotifications   = "notifications_b2c"
	Posts              = "posts"
	Quotations         = "quotations"
	Plans              = "plans"
)

// user roles
const (
	RoleRetailer     = "Retailer"
	RoleWholesaler   = "Wholesaler"
	RoleManufacturer = "Manufacturer"
	RoleConsumer     = "Consumer"
	RoleAdmin        = "Admin"
)

// user segments
const (
	SegmentB2B = "B2B"
	SegmentB2C = "B2C"
)

// price units
const (
	UnitKg  = "Kg"
	UnitTon = "Ton"
)

// KYC status
const (
	KYCPending  = "pending"
	KYCVerified = "verified"
	KYCRejected = "rejected"
)

// order status
const (
	OrderPlaced    = "Placed"
	OrderAccepted  = "Accepted"
	OrderRejected  = "Rejected"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
	OrderCancelled = "Cancelled"
)

// price difference tags
const (
	TagIncrement = "Increment"
	TagDecrement = "Decrement"
)

// history timeframes
const (
	TimeframeToday = "today"
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
	TimeframeYear  = "year"
	TimeframeAll   = "all"
)
