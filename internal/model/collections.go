package model

// Collection names, lowercase of the entity type.
const (
	CollectionProduct     = "tobaccoproduct"
	CollectionLabel       = "label"
	CollectionPriceUpdate = "priceupdate"
	CollectionStore       = "store"
)

// Collections is the fixed list reported by GET /schema.
func Collections() []string {
	return []string{
		CollectionProduct,
		CollectionLabel,
		CollectionPriceUpdate,
		CollectionStore,
	}
}
