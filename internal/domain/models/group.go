package models

// GroupName identifies one life-stage bucket of the herd.
type GroupName string

const (
	GroupCows        GroupName = "Cows"
	GroupCalves      GroupName = "Calves"
	GroupYoungHeifer GroupName = "Young_Heifer"
	GroupAdultHeifer GroupName = "Adult_Heifer"
	GroupYoungBull   GroupName = "Young_Bull"
	GroupAdultBull   GroupName = "Adult_Bull"
)

var groupOrder = []GroupName{
	GroupCows,
	GroupCalves,
	GroupYoungHeifer,
	GroupAdultHeifer,
	GroupYoungBull,
	GroupAdultBull,
}

// GroupNames returns every group in report order.
func GroupNames() []GroupName {
	out := make([]GroupName, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// Snapshot maps each group to the animals classified into it as of one reference date.
type Snapshot map[GroupName][]Animal

// WeightedAnimal pairs a record with its estimated live weight.
type WeightedAnimal struct {
	Animal   Animal  `json:"cattle"`
	WeightKg float64 `json:"weight"`
}

// GroupListing is the weight-annotated view of a single group.
type GroupListing struct {
	Group       GroupName        `json:"group"`
	Animals     []WeightedAnimal `json:"animals"`
	ActiveCount int              `json:"active_count"`
}
