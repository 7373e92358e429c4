package alchemy

import (
	"fmt"
	"slices"
)

// Combination describes a reaction triggered by a move.
type Combination struct {
	// Moved is the dragged tile at the position that triggered the reaction.
	Moved Element
	// Partner is the tile it was dropped onto.
	Partner Element
	// Results are the new tiles, ordered from Moved towards Partner.
	Results []Element
	// Discovered lists result types that were unlocked by this reaction.
	Discovered []ElementType
}

// Store owns the tiles on the board and the set of discovered types. It is
// not safe for concurrent use.
type Store struct {
	cfg     Config
	creator *Creator

	elements   []Element
	discovered []ElementType
	unlocked   [elementTypeCount]bool
	nextID     ElementID

	listener Listener
	logger   Logger
}

// NewStore returns a store using the built-in recipe table.
func NewStore(cfg Config) *Store {
	return NewStoreWithCreator(cfg, NewCreator())
}

// NewStoreWithCreator returns a store that combines tiles with creator.
func NewStoreWithCreator(cfg Config, creator *Creator) *Store {
	if creator == nil {
		creator = NewCreator()
	}
	s := &Store{
		cfg:      cfg,
		creator:  creator,
		listener: NopListener{},
		logger:   NewNopLogger(),
	}
	s.Reset()
	return s
}

// SetListener installs the event port. nil restores the no-op listener.
func (s *Store) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	s.listener = l
}

// SetLogger installs a logger. nil restores the no-op logger.
func (s *Store) SetLogger(l Logger) {
	if l == nil {
		l = NewNopLogger()
	}
	s.logger = l
}

// Reset clears the board and the discovered set. Ids keep increasing across
// resets so stale ids never alias new tiles.
func (s *Store) Reset() {
	for _, e := range s.elements {
		s.listener.ElementRemoved(e)
	}
	s.elements = s.elements[:0]
	s.discovered = s.discovered[:0]
	s.unlocked = [elementTypeCount]bool{}
	for _, t := range BaseTypes {
		s.unlock(t)
	}
	if !s.cfg.SeedBaseTiles {
		return
	}
	cx, cy := s.center()
	w, h := s.cfg.ElementWidth, s.cfg.ElementHeight
	s.place(Fire, cx-w, cy)
	s.place(Water, cx+w, cy)
	s.place(Earth, cx, cy-h)
	s.place(Air, cx, cy+h)
}

// Config returns the configuration the store was built with.
func (s *Store) Config() Config { return s.cfg }

// Size returns the board dimensions.
func (s *Store) Size() (width, height float64) { return s.cfg.Width, s.cfg.Height }

// Creator returns the recipe table in use.
func (s *Store) Creator() *Creator { return s.creator }

// Elements returns a copy of the live tiles in store order.
func (s *Store) Elements() []Element {
	return slices.Clone(s.elements)
}

// Element looks up a live tile by id.
func (s *Store) Element(id ElementID) (Element, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.elements[i], true
	}
	return Element{}, false
}

// ElementAt returns the top-most tile containing (x, y). Tiles later in store
// order are drawn on top, so the search runs backwards.
func (s *Store) ElementAt(x, y float64) (Element, bool) {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].Contains(x, y) {
			return s.elements[i], true
		}
	}
	return Element{}, false
}

// Count returns the number of live tiles.
func (s *Store) Count() int { return len(s.elements) }

// Discovered returns the unlocked types in the order they were discovered.
func (s *Store) Discovered() []ElementType {
	return slices.Clone(s.discovered)
}

// IsDiscovered reports whether t may be spawned.
func (s *Store) IsDiscovered(t ElementType) bool {
	return t.Valid() && s.unlocked[t]
}

// AddElement spawns a tile of type t in the centre of the board.
func (s *Store) AddElement(t ElementType) (Element, error) {
	if !s.IsDiscovered(t) {
		return Element{}, fmt.Errorf("add %s: %w", t, ErrNotDiscovered)
	}
	cx, cy := s.center()
	e := s.place(t, cx, cy)
	s.logger.Debugf("element added: id=%d type=%s", e.ID, e.Type)
	return e, nil
}

// SetNewPosition moves a tile so its top-left corner is at (x, y) and then
// tries to combine it with the first overlapping tile that has a recipe. The
// returned Combination is nil when nothing reacted. Rejected moves leave the
// store untouched.
func (s *Store) SetNewPosition(id ElementID, x, y float64) (*Combination, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("move %d: %w", id, ErrNotFound)
	}
	if !s.fits(x, y) {
		return nil, fmt.Errorf("move %d to (%g, %g): %w", id, x, y, ErrOutOfBounds)
	}
	s.elements[i].Left = x
	s.elements[i].Top = y
	moved := s.elements[i]
	s.listener.ElementMoved(moved)
	return s.combine(moved), nil
}

// Remove deletes a tile.
func (s *Store) Remove(id ElementID) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	e := s.elements[i]
	s.elements = slices.Delete(s.elements, i, i+1)
	s.listener.ElementRemoved(e)
	return nil
}

func (s *Store) combine(moved Element) *Combination {
	for _, other := range s.elements {
		if other.ID == moved.ID {
			continue
		}
		if !s.touching(moved, other) {
			continue
		}
		results, ok := s.creator.Lookup(moved.Type, other.Type)
		if !ok || len(results) == 0 {
			continue
		}
		return s.react(moved, other, results)
	}
	return nil
}

func (s *Store) react(moved, partner Element, results []ElementType) *Combination {
	parts := float64(len(results) + 1)
	stepX := (partner.Left - moved.Left) / parts
	stepY := (partner.Top - moved.Top) / parts

	s.elements = slices.DeleteFunc(s.elements, func(e Element) bool {
		return e.ID == moved.ID || e.ID == partner.ID
	})

	combo := &Combination{Moved: moved, Partner: partner}
	created := make([]Element, 0, len(results))
	for i, t := range results {
		x := moved.Left + stepX*float64(i+1)
		y := moved.Top + stepY*float64(i+1)
		x, y = s.clamp(x, y)
		e := s.newElement(t, x, y)
		s.elements = append(s.elements, e)
		created = append(created, e)
		if !s.unlocked[t] {
			s.unlock(t)
			combo.Discovered = append(combo.Discovered, t)
		}
	}
	combo.Results = created

	s.listener.ElementRemoved(moved)
	s.listener.ElementRemoved(partner)
	for _, t := range combo.Discovered {
		s.logger.Infof("element discovered: type=%s total=%d", t, len(s.discovered))
		s.listener.ElementDiscovered(t)
	}
	for _, e := range created {
		s.listener.ElementCreated(e)
	}
	s.logger.Debugf("combined: %s(%d) + %s(%d) -> %d result(s)", moved.Type, moved.ID, partner.Type, partner.ID, len(created))
	return combo
}

func (s *Store) touching(a, b Element) bool {
	if s.cfg.Overlap == OverlapAABB {
		return intersects(a, b)
	}
	return cornersOverlap(a, b)
}

// cornersOverlap is true when a corner of either tile lies inside the other.
func cornersOverlap(a, b Element) bool {
	for _, c := range a.Corners() {
		if b.Contains(c[0], c[1]) {
			return true
		}
	}
	for _, c := range b.Corners() {
		if a.Contains(c[0], c[1]) {
			return true
		}
	}
	return false
}

// intersects is an inclusive axis-aligned rectangle test.
func intersects(a, b Element) bool {
	return a.Left <= b.Right() && b.Left <= a.Right() && a.Top <= b.Bottom() && b.Top <= a.Bottom()
}

func (s *Store) place(t ElementType, x, y float64) Element {
	x, y = s.clamp(x, y)
	e := s.newElement(t, x, y)
	s.elements = append(s.elements, e)
	s.listener.ElementCreated(e)
	return e
}

func (s *Store) newElement(t ElementType, x, y float64) Element {
	e := Element{
		ID:     s.nextID,
		Type:   t,
		Left:   x,
		Top:    y,
		Width:  s.cfg.ElementWidth,
		Height: s.cfg.ElementHeight,
	}
	s.nextID++
	return e
}

func (s *Store) unlock(t ElementType) {
	s.unlocked[t] = true
	s.discovered = append(s.discovered, t)
}

func (s *Store) indexOf(id ElementID) int {
	for i := range s.elements {
		if s.elements[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) center() (float64, float64) {
	return (s.cfg.Width - s.cfg.ElementWidth) / 2, (s.cfg.Height - s.cfg.ElementHeight) / 2
}

func (s *Store) fits(x, y float64) bool {
	return x >= 0 && y >= 0 && x+s.cfg.ElementWidth <= s.cfg.Width && y+s.cfg.ElementHeight <= s.cfg.Height
}

func (s *Store) clamp(x, y float64) (float64, float64) {
	return clampRange(x, 0, s.cfg.Width-s.cfg.ElementWidth), clampRange(y, 0, s.cfg.Height-s.cfg.ElementHeight)
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
