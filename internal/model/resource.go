package model

// ResourceKind identifies a harvestable resource type.
type ResourceKind int32

const (
	ResourceMeat ResourceKind = iota
	ResourceWood
	ResourceGold
)

// resourceKinds lists all kinds in canonical order. Iteration over this
// slice keeps stockpile drains and loot emission deterministic.
var resourceKinds = []ResourceKind{ResourceMeat, ResourceWood, ResourceGold}

// ResourceKinds returns all resource kinds in canonical order.
func ResourceKinds() []ResourceKind {
	return resourceKinds
}

// String returns the resource name.
func (k ResourceKind) String() string {
	switch k {
	case ResourceMeat:
		return "meat"
	case ResourceWood:
		return "wood"
	case ResourceGold:
		return "gold"
	default:
		return "unknown"
	}
}
