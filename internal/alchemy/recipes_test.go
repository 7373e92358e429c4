package alchemy

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestDefaultRecipesAreSymmetric(t *testing.T) {
	c := NewCreator()
	for _, r := range DefaultRecipes() {
		ab, okAB := c.Lookup(r.A, r.B)
		ba, okBA := c.Lookup(r.B, r.A)
		if !okAB || !okBA {
			t.Fatalf("%s: lookup missing (ab=%v ba=%v)", r, okAB, okBA)
		}
		if !slices.Equal(ab, r.Results) || !slices.Equal(ba, r.Results) {
			t.Fatalf("%s: got %v and %v, expected %v", r, ab, ba, r.Results)
		}
	}
}

func TestLookupUnknownPair(t *testing.T) {
	c := NewCreator()
	if results, ok := c.Lookup(Water, Steam); ok {
		t.Fatalf("expected no recipe for WATER + STEAM, got %v", results)
	}
	if _, ok := c.Lookup(Sound, Glass); ok {
		t.Fatal("expected no recipe for SOUND + GLASS")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	c := NewCreator()
	results, _ := c.Lookup(Water, Fire)
	results[0] = Sound
	again, _ := c.Lookup(Water, Fire)
	if again[0] != Steam {
		t.Fatalf("table mutated through lookup: got %v", again)
	}
}

func TestGunpowderFireHasTwoResults(t *testing.T) {
	c := NewCreator()
	results, ok := c.Lookup(Fire, Gunpowder)
	if !ok {
		t.Fatal("expected recipe for FIRE + GUNPOWDER")
	}
	expected := []ElementType{Explosion, Smoke}
	if !slices.Equal(results, expected) {
		t.Fatalf("got %v, expected %v", results, expected)
	}
}

func TestInputsExcludeTerminalTypes(t *testing.T) {
	inputs := NewCreator().Inputs()
	for _, terminal := range []ElementType{AtomicBomb, Beach, Desert, Glass, Sound, Mud, Plant} {
		if slices.Contains(inputs, terminal) {
			t.Fatalf("%s should not be a recipe input", terminal)
		}
	}
	for _, base := range BaseTypes {
		if !slices.Contains(inputs, base) {
			t.Fatalf("%s should be a recipe input", base)
		}
	}
	if !slices.IsSorted(inputs) {
		t.Fatalf("inputs not in enum order: %v", inputs)
	}
}

func TestNewCreatorFromRecipesCollectsIssues(t *testing.T) {
	_, err := NewCreatorFromRecipes([]Recipe{
		{Water, Fire, []ElementType{Steam}},
		{Fire, Water, []ElementType{Smoke}},
		{Air, Air, nil},
		{ElementType(200), Air, []ElementType{Wind}},
		{Earth, Earth, []ElementType{ElementType(99)}},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 4 {
		t.Fatalf("expected 4 issues, got %d: %v", len(verr.Issues), verr.Issues)
	}
	for i, want := range []string{"duplicate pair", "no results", "unknown input type", "unknown result type"} {
		if !strings.Contains(verr.Issues[i], want) {
			t.Fatalf("issue %d = %q, expected it to mention %q", i, verr.Issues[i], want)
		}
	}
}

func TestNewCreatorFromRecipesKeepsOrder(t *testing.T) {
	c, err := NewCreatorFromRecipes([]Recipe{
		{Air, Fire, []ElementType{Energy}},
		{Water, Air, []ElementType{Rain}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	recipes := c.Recipes()
	if len(recipes) != 2 || recipes[0].Results[0] != Energy || recipes[1].Results[0] != Rain {
		t.Fatalf("unexpected recipe order: %v", recipes)
	}
}

func TestParseElementType(t *testing.T) {
	got, err := ParseElementType(" atomic_bomb ")
	if err != nil || got != AtomicBomb {
		t.Fatalf("got %v (%v), expected ATOMIC_BOMB", got, err)
	}
	if _, err := ParseElementType("phlogiston"); err == nil {
		t.Fatal("expected error for unknown name")
	}
	if s := ElementType(250).String(); s != "ElementType(250)" {
		t.Fatalf("got %q for invalid type", s)
	}
	if n := len(ElementTypes()); n != 31 {
		t.Fatalf("expected 31 types, got %d", n)
	}
}
