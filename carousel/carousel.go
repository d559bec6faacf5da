// Package carousel implements the paging arithmetic behind the card carousels:
// grouping an ordered item list into fixed-size pages, padding the last page
// with placeholder slots, and clamped navigation between pages.
//
// State values are small and copied by value. Every transition returns a new
// State, so handlers can load state from a session, apply one transition and
// store the result without any shared mutation.
package carousel

// Viewport breakpoints in CSS pixels.
const (
	MediumWidth = 768
	LargeWidth  = 1024
)

// ItemsPerPage maps a viewport width to the number of cards shown at once.
// Negative widths are treated as zero.
func ItemsPerPage(width int) int {
	switch {
	case width < MediumWidth:
		return 1
	case width < LargeWidth:
		return 2
	default:
		return 3
	}
}

// WidthSource reports the current viewport width in CSS pixels.
type WidthSource interface {
	ViewportWidth() int
}

// Resolver turns a WidthSource into an items-per-page value.
type Resolver struct {
	src WidthSource
}

// NewResolver creates a Resolver reading widths from src.
func NewResolver(src WidthSource) Resolver {
	return Resolver{src: src}
}

// ItemsPerPage resolves the page size for the width currently reported by the source.
func (r Resolver) ItemsPerPage() int {
	if r.src == nil {
		return ItemsPerPage(LargeWidth)
	}
	return ItemsPerPage(r.src.ViewportWidth())
}

// Apply resizes s to the resolved page size. The page index resets to 0
// whenever the page size changes.
func (r Resolver) Apply(s State) State {
	return s.Resize(r.ItemsPerPage())
}

// Width is a fixed WidthSource.
type Width int

// ViewportWidth implements WidthSource.
func (w Width) ViewportWidth() int { return int(w) }

// TotalPages returns ceil(count / perPage). A non-positive perPage yields 0.
func TotalPages(count, perPage int) int {
	if count <= 0 || perPage <= 0 {
		return 0
	}
	return (count + perPage - 1) / perPage
}

// Slot is one position on a page. Placeholder slots carry the zero Item.
type Slot[T any] struct {
	Item        T
	Placeholder bool
}

// Pad wraps items in slots and appends placeholders until the slot count is
// an exact multiple of perPage.
func Pad[T any](items []T, perPage int) []Slot[T] {
	if perPage <= 0 {
		perPage = 1
	}
	n := TotalPages(len(items), perPage) * perPage
	slots := make([]Slot[T], n)
	for i := range items {
		slots[i].Item = items[i]
	}
	for i := len(items); i < n; i++ {
		slots[i].Placeholder = true
	}
	return slots
}

// State is the navigation state of one carousel.
type State struct {
	PerPage int
	Index   int
}

// NewState returns a state at the first page for the given page size.
func NewState(perPage int) State {
	if perPage <= 0 {
		perPage = 1
	}
	return State{PerPage: perPage}
}

// Next advances one page, stopping at the last page. With no pages the index stays 0.
func (s State) Next(total int) State {
	last := total - 1
	if last < 0 {
		last = 0
	}
	s.Index = min(s.Index+1, last)
	return s
}

// Previous moves back one page, stopping at the first page.
func (s State) Previous() State {
	s.Index = max(s.Index-1, 0)
	return s
}

// JumpTo sets the page index directly. Callers only offer indices in
// [0, total) so no clamping happens here; see InRange.
func (s State) JumpTo(index int) State {
	s.Index = index
	return s
}

// Resize switches to a new page size. Page boundaries shift on a size change,
// so the index resets to 0; an unchanged size keeps the index.
func (s State) Resize(perPage int) State {
	if perPage <= 0 {
		perPage = 1
	}
	if perPage == s.PerPage {
		return s
	}
	return State{PerPage: perPage}
}

// Reset returns to the first page.
func (s State) Reset() State {
	s.Index = 0
	return s
}

// Clamp forces the index into [0, total-1], or 0 when there are no pages.
// Used when restoring a stored state against the current item count.
func (s State) Clamp(total int) State {
	if s.Index >= total {
		s.Index = total - 1
	}
	if s.Index < 0 {
		s.Index = 0
	}
	return s
}

// InRange reports whether index addresses an existing page.
func InRange(index, total int) bool {
	return index >= 0 && index < total
}

// Page is what a presentation layer needs for one render: the slots of the
// current page and the current/total page indices.
type Page[T any] struct {
	Index   int
	Total   int
	PerPage int
	Slots   []Slot[T]
}

// ShowControls reports whether navigation arrows and dots should render.
func (p Page[T]) ShowControls() bool {
	return p.Total > 1
}

// HasPrevious reports whether a previous page exists.
func (p Page[T]) HasPrevious() bool {
	return p.Index > 0
}

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool {
	return p.Index < p.Total-1
}

// Dots returns the page indices offered by dot navigation.
func (p Page[T]) Dots() []int {
	dots := make([]int, p.Total)
	for i := range dots {
		dots[i] = i
	}
	return dots
}

// View slices the padded items for the page addressed by s. An index outside
// the page range yields an empty slot list with the index preserved.
func View[T any](items []T, s State) Page[T] {
	perPage := s.PerPage
	if perPage <= 0 {
		perPage = 1
	}
	padded := Pad(items, perPage)
	total := len(padded) / perPage
	p := Page[T]{Index: s.Index, Total: total, PerPage: perPage}
	if InRange(s.Index, total) {
		start := s.Index * perPage
		p.Slots = padded[start : start+perPage]
	}
	return p
}

// Carousel couples an item list with its navigation state.
type Carousel[T any] struct {
	items []T
	state State
}

// New creates a carousel over items. The stored state is clamped to the
// current page range.
func New[T any](items []T, s State) *Carousel[T] {
	if s.PerPage <= 0 {
		s.PerPage = 1
	}
	c := &Carousel[T]{items: items, state: s}
	c.state = c.state.Clamp(c.TotalPages())
	return c
}

// State returns the current navigation state.
func (c *Carousel[T]) State() State { return c.state }

// TotalPages returns the page count for the current page size.
func (c *Carousel[T]) TotalPages() int {
	return TotalPages(len(c.items), c.state.PerPage)
}

// Next advances one page and returns the new index.
func (c *Carousel[T]) Next() int {
	c.state = c.state.Next(c.TotalPages())
	return c.state.Index
}

// Previous moves back one page and returns the new index.
func (c *Carousel[T]) Previous() int {
	c.state = c.state.Previous()
	return c.state.Index
}

// JumpTo sets the page index and returns it.
func (c *Carousel[T]) JumpTo(index int) int {
	c.state = c.state.JumpTo(index)
	return c.state.Index
}

// Resize applies a new page size and returns the resulting index.
func (c *Carousel[T]) Resize(perPage int) int {
	c.state = c.state.Resize(perPage)
	return c.state.Index
}

// Page returns the current page view.
func (c *Carousel[T]) Page() Page[T] {
	return View(c.items, c.state)
}

// ShowControls reports whether navigation should render.
func (c *Carousel[T]) ShowControls() bool {
	return c.TotalPages() > 1
}
