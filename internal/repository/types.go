package repository

// ProductListFilter narrows product listings.
type ProductListFilter struct {
	CategoryID   string
	Search       string
	InStockOnly  bool
	WithCategory bool
}

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	SessionID string
	UserID    *uint
	Status    string
	Page      int
	PageSize  int
}
