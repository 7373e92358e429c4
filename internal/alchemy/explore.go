package alchemy

// Exploration is the result of walking the recipe graph from the base types.
type Exploration struct {
	// Generation maps each reachable type to the round it first appears in.
	// Base types are generation 0.
	Generation map[ElementType]int
	// Order lists reachable types in discovery order.
	Order []ElementType
	// Unreachable lists types no sequence of recipes can produce.
	Unreachable []ElementType
}

// Explore applies every recipe whose inputs are both known, round by round,
// until no round adds a type.
func Explore(c *Creator) Exploration {
	ex := Exploration{Generation: make(map[ElementType]int)}
	for _, t := range BaseTypes {
		if _, ok := ex.Generation[t]; ok {
			continue
		}
		ex.Generation[t] = 0
		ex.Order = append(ex.Order, t)
	}

	recipes := c.Recipes()
	for gen := 1; ; gen++ {
		var found []ElementType
		for _, r := range recipes {
			ga, okA := ex.Generation[r.A]
			gb, okB := ex.Generation[r.B]
			if !okA || !okB || ga >= gen || gb >= gen {
				continue
			}
			for _, t := range r.Results {
				if _, known := ex.Generation[t]; known {
					continue
				}
				ex.Generation[t] = gen
				found = append(found, t)
			}
		}
		if len(found) == 0 {
			break
		}
		ex.Order = append(ex.Order, found...)
	}

	for _, t := range ElementTypes() {
		if _, ok := ex.Generation[t]; !ok {
			ex.Unreachable = append(ex.Unreachable, t)
		}
	}
	return ex
}
