package capacity

import "fmt"

// ErrUnknownRegion is returned for regions with no configured daily default.
// Unknown regions are an explicit error; they never inherit another region's
// capacity.
var ErrUnknownRegion = fmt.Errorf("unknown region")

// Regions is the region configuration table mapping each region to its daily
// default slot count.
type Regions struct {
	defaults map[int]int
}

func NewRegions(defaults map[int]int) (*Regions, error) {
	if len(defaults) == 0 {
		return nil, fmt.Errorf("at least one region must be configured")
	}
	table := make(map[int]int, len(defaults))
	for region, slots := range defaults {
		if slots <= 0 {
			return nil, fmt.Errorf("region %d has non-positive default capacity %d", region, slots)
		}
		table[region] = slots
	}
	return &Regions{defaults: table}, nil
}

// DefaultFor returns the daily default slot count for region.
func (r *Regions) DefaultFor(region int) (int, error) {
	slots, ok := r.defaults[region]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRegion, region)
	}
	return slots, nil
}

// Known reports whether region has a configured default.
func (r *Regions) Known(region int) bool {
	_, ok := r.defaults[region]
	return ok
}

// All returns the configured region identifiers.
func (r *Regions) All() []int {
	regions := make([]int, 0, len(r.defaults))
	for region := range r.defaults {
		regions = append(regions, region)
	}
	return regions
}
