package alchemy

import (
	"fmt"
	"strings"
)

// Recipe maps an unordered pair of input types to the types it produces.
type Recipe struct {
	A, B    ElementType
	Results []ElementType
}

func (r Recipe) String() string {
	names := make([]string, len(r.Results))
	for i, t := range r.Results {
		names[i] = t.String()
	}
	return fmt.Sprintf("%s + %s -> %s", r.A, r.B, strings.Join(names, ", "))
}

var defaultRecipes = []Recipe{
	{Earth, Air, []ElementType{Dust}},
	{Air, Fire, []ElementType{Energy}},
	{Earth, Fire, []ElementType{Lava}},
	{Water, Earth, []ElementType{Mud}},
	{Earth, Earth, []ElementType{Pressure}},
	{Air, Air, []ElementType{Pressure}},
	{Water, Air, []ElementType{Rain}},
	{Water, Water, []ElementType{Sea}},
	{Water, Fire, []ElementType{Steam}},
	{Water, Energy, []ElementType{Steam}},
	{Air, Steam, []ElementType{Cloud}},
	{Fire, Dust, []ElementType{Gunpowder}},
	{Water, Sea, []ElementType{Ocean}},
	{Sea, Sea, []ElementType{Ocean}},
	{Earth, Rain, []ElementType{Plant}},
	{Sea, Fire, []ElementType{Salt}},
	{Ocean, Fire, []ElementType{Salt}},
	{Air, Lava, []ElementType{Stone}},
	{Gunpowder, Fire, []ElementType{Explosion, Smoke}},
	{Fire, Stone, []ElementType{Metal}},
	{Stone, Air, []ElementType{Sand}},
	{Cloud, Electricity, []ElementType{Storm}},
	{Cloud, Energy, []ElementType{Storm}},
	{Sea, Wind, []ElementType{Wave}},
	{Ocean, Wind, []ElementType{Wave}},
	{Energy, Explosion, []ElementType{AtomicBomb}},
	{Sea, Sand, []ElementType{Beach}},
	{Ocean, Sand, []ElementType{Beach}},
	{Water, Sand, []ElementType{Beach}},
	{Sand, Sand, []ElementType{Desert}},
	{Metal, Energy, []ElementType{Electricity}},
	{Fire, Sand, []ElementType{Glass}},
	{Electricity, Sand, []ElementType{Glass}},
	{Air, Wave, []ElementType{Sound}},
	{Air, Pressure, []ElementType{Wind}},
	{Air, Energy, []ElementType{Wind}},
}

// DefaultRecipes returns a copy of the built-in recipe list.
func DefaultRecipes() []Recipe {
	out := make([]Recipe, len(defaultRecipes))
	for i, r := range defaultRecipes {
		out[i] = Recipe{A: r.A, B: r.B, Results: append([]ElementType(nil), r.Results...)}
	}
	return out
}

// pairKey is an order-independent recipe key: a <= b always.
type pairKey struct {
	a, b ElementType
}

func keyOf(a, b ElementType) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Creator is the immutable recipe table.
type Creator struct {
	recipes []Recipe
	table   map[pairKey][]ElementType
}

// NewCreator returns a Creator holding the built-in recipes.
func NewCreator() *Creator {
	c, err := NewCreatorFromRecipes(defaultRecipes)
	if err != nil {
		panic(fmt.Sprintf("alchemy: built-in recipes are invalid: %v", err))
	}
	return c
}

// NewCreatorFromRecipes builds a table from recipes. Every recipe needs at
// least one result, known types only, and each unordered pair may appear once.
func NewCreatorFromRecipes(recipes []Recipe) (*Creator, error) {
	verr := &ValidationError{}
	c := &Creator{
		recipes: make([]Recipe, 0, len(recipes)),
		table:   make(map[pairKey][]ElementType, len(recipes)),
	}
	for i, r := range recipes {
		prefix := fmt.Sprintf("recipe %d", i)
		if !r.A.Valid() || !r.B.Valid() {
			verr.Add(prefix + ": unknown input type")
			continue
		}
		prefix = fmt.Sprintf("recipe %d (%s + %s)", i, r.A, r.B)
		if len(r.Results) == 0 {
			verr.Add(prefix + ": no results")
			continue
		}
		bad := false
		for _, t := range r.Results {
			if !t.Valid() {
				verr.Add(fmt.Sprintf("%s: unknown result type %d", prefix, uint8(t)))
				bad = true
			}
		}
		if bad {
			continue
		}
		key := keyOf(r.A, r.B)
		if _, exists := c.table[key]; exists {
			verr.Add(prefix + ": duplicate pair")
			continue
		}
		results := append([]ElementType(nil), r.Results...)
		c.table[key] = results
		c.recipes = append(c.recipes, Recipe{A: r.A, B: r.B, Results: results})
	}
	if verr.HasIssues() {
		return nil, verr
	}
	return c, nil
}

// Lookup returns the results of combining a and b in either order.
func (c *Creator) Lookup(a, b ElementType) ([]ElementType, bool) {
	results, ok := c.table[keyOf(a, b)]
	if !ok {
		return nil, false
	}
	return append([]ElementType(nil), results...), true
}

// Recipes lists the table in declaration order.
func (c *Creator) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = Recipe{A: r.A, B: r.B, Results: append([]ElementType(nil), r.Results...)}
	}
	return out
}

// Inputs returns every type used as a recipe input, in enum order.
func (c *Creator) Inputs() []ElementType {
	var seen [elementTypeCount]bool
	for key := range c.table {
		seen[key.a] = true
		seen[key.b] = true
	}
	var out []ElementType
	for t, ok := range seen {
		if ok {
			out = append(out, ElementType(t))
		}
	}
	return out
}
