package constants

// Supported locales, primary first.
var SupportedLocales = []string{LocaleUz, LocaleRu}

const (
	LocaleUz = "uz"
	LocaleRu = "ru"
)

// Banner types.
const (
	BannerTypeSale     = "sale"
	BannerTypeNew      = "new"
	BannerTypeDelivery = "delivery"
	BannerTypeCustom   = "custom"
)

// IsValidBannerType reports whether t names a known banner type.
func IsValidBannerType(t string) bool {
	switch t {
	case BannerTypeSale, BannerTypeNew, BannerTypeDelivery, BannerTypeCustom:
		return true
	}
	return false
}

// Order statuses.
const (
	OrderStatusNew       = "new"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDone      = "done"
	OrderStatusCancelled = "cancelled"
)

// IsValidOrderStatus reports whether s names a known order status.
func IsValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusConfirmed, OrderStatusDone, OrderStatusCancelled:
		return true
	}
	return false
}

// Entity ID prefixes. Products created through the admin panel before the
// remote sync confirms them carry the local prefix; everything else is
// server-assigned.
const (
	LocalProductIDPrefix = "local_"
	ProductIDPrefix      = "p_"
	CategoryIDPrefix     = "c_"
)

// SessionIDHeader carries the anonymous cart session token.
const SessionIDHeader = "X-Session-ID"

// Override-store keys inside a kvstore namespace.
const (
	KeyLocalProducts = "admin_products"
	KeyDeletedIDs    = "deleted_product_ids"
	KeyLocalCats     = "admin_categories"
)

// Queue names.
const (
	QueueDefault = "default"
)
