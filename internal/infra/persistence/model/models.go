// Package model holds the GORM table mappings of the storefront.
package model

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CartModel{},
		&CartItemModel{},
		&AddressModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PaymentDetailModel{},
		&FavoriteModel{},
		&ReviewModel{},
		&HeroBannerModel{},
	}
}
