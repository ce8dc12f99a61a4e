package world

import "fmt"

// Overworld is the set of regions a game spans, plus the region the
// player is currently in.
type Overworld struct {
	regions []*Region
	current *Region
}

// NewOverworld creates an overworld. The first region becomes current.
func NewOverworld(regions ...*Region) *Overworld {
	o := &Overworld{regions: regions}
	if len(regions) > 0 {
		o.current = regions[0]
	}
	return o
}

// Regions returns the overworld's regions in authoring order.
func (o *Overworld) Regions() []*Region {
	return o.regions
}

// CurrentRegion returns the region the player is in.
func (o *Overworld) CurrentRegion() *Region {
	return o.current
}

// CurrentRoom returns the room the player is in, or nil.
func (o *Overworld) CurrentRoom() *Room {
	if o.current == nil {
		return nil
	}
	return o.current.CurrentRoom()
}

// SetCurrentRegion moves the player to another region. The region must be
// part of the overworld.
func (o *Overworld) SetCurrentRegion(r *Region) bool {
	for _, region := range o.regions {
		if region == r {
			o.current = r
			return true
		}
	}
	return false
}

// FindRegion looks up a region by name.
func (o *Overworld) FindRegion(name string) (*Region, bool) {
	for _, region := range o.regions {
		if region.Identifier().Matches(name) {
			return region, true
		}
	}
	return nil, false
}

// Move delegates movement to the current region. It fails closed when
// there is no current region.
func (o *Overworld) Move(d Direction) bool {
	if o.current == nil {
		return false
	}
	return o.current.Move(d)
}

// OverworldMaker aggregates region makers into an overworld.
type OverworldMaker struct {
	makers []*RegionMaker
}

// NewOverworldMaker creates a maker over the given region makers.
func NewOverworldMaker(makers ...*RegionMaker) *OverworldMaker {
	return &OverworldMaker{makers: makers}
}

// Add appends a region maker.
func (m *OverworldMaker) Add(rm *RegionMaker) {
	m.makers = append(m.makers, rm)
}

// Make builds every region and assembles the overworld. The first region
// becomes current.
func (m *OverworldMaker) Make() (*Overworld, error) {
	if len(m.makers) == 0 {
		return nil, fmt.Errorf("overworld: no regions")
	}
	regions := make([]*Region, 0, len(m.makers))
	for _, rm := range m.makers {
		region, err := rm.Make()
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return NewOverworld(regions...), nil
}
