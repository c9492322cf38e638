package world

// Character is the runtime record for one game character.
// Location is a location id on the map identified by MapID.
type Character struct {
	ID             int64    `json:"id"`
	UUID           string   `json:"uuid,omitempty"`
	Name           string   `json:"name"`
	MapID          int      `json:"map_id"`
	Location       int      `json:"location"`
	BehaviorTreeID string   `json:"behavior_tree_id,omitempty"`
	ShopPools      []string `json:"shop_pools,omitempty"`

	// Shop runtime state, set by the open-shop behavior.
	ShopOpen     bool `json:"-"`
	ShopOpenedAt int  `json:"-"` // game minutes at the moment the shop opened
}

// HasShop reports whether this character can run a shop at all.
func (c *Character) HasShop() bool {
	return len(c.ShopPools) > 0
}
