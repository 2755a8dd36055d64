package domain

const (
	CollectionUser         = "users"
	CollectionWardrobeItem = "wardrobe_items"
)
