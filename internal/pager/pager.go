// Package pager models a paged view and the indicator that follows it.
package pager

import (
	"strings"
	"sync"
)

// PageChangeListener receives page selection events
type PageChangeListener interface {
	OnPageSelected(position int)
}

// PageChangeFunc adapts a function to PageChangeListener
type PageChangeFunc func(position int)

// OnPageSelected calls f(position)
func (f PageChangeFunc) OnPageSelected(position int) { f(position) }

// Pager holds a page count and the current page
type Pager struct {
	mu        sync.Mutex
	count     int
	current   int
	listeners []PageChangeListener
}

// New creates a pager with count pages positioned on the first page
func New(count int) *Pager {
	if count < 0 {
		count = 0
	}
	return &Pager{count: count}
}

// Count returns the number of pages
func (p *Pager) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// CurrentItem returns the selected page
func (p *Pager) CurrentItem() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// SetCount changes the number of pages, pulling the current page back into range
func (p *Pager) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	p.mu.Lock()
	p.count = count
	moved := false
	if p.current >= count && count > 0 {
		p.current = count - 1
		moved = true
	} else if count == 0 && p.current != 0 {
		p.current = 0
		moved = true
	}
	current := p.current
	listeners := append([]PageChangeListener(nil), p.listeners...)
	p.mu.Unlock()

	if moved {
		notify(listeners, current)
	}
}

// SetCurrentItem selects a page, clamped to the valid range, and notifies
// listeners when the selection changes
func (p *Pager) SetCurrentItem(item int) {
	p.mu.Lock()
	item = clamp(item, p.count)
	if item == p.current {
		p.mu.Unlock()
		return
	}
	p.current = item
	listeners := append([]PageChangeListener(nil), p.listeners...)
	p.mu.Unlock()

	notify(listeners, item)
}

// RegisterOnPageChange adds a listener
func (p *Pager) RegisterOnPageChange(l PageChangeListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// UnregisterOnPageChange removes a listener. l must be comparable, so a
// PageChangeFunc cannot be unregistered.
func (p *Pager) UnregisterOnPageChange(l PageChangeListener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.listeners {
		if existing == l {
			p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
			return
		}
	}
}

func notify(listeners []PageChangeListener, position int) {
	for _, l := range listeners {
		l.OnPageSelected(position)
	}
}

func clamp(item, count int) int {
	if count <= 0 || item < 0 {
		return 0
	}
	if item >= count {
		return count - 1
	}
	return item
}

// PageCount returns how many pages of size pageSize hold total items.
// An empty list still has one page.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// PageBounds returns the half-open item range [lo, hi) shown on page
func PageBounds(page, pageSize, total int) (lo, hi int) {
	if pageSize <= 0 || total <= 0 {
		return 0, 0
	}
	page = clamp(page, PageCount(total, pageSize))
	lo = page * pageSize
	hi = lo + pageSize
	if hi > total {
		hi = total
	}
	return lo, hi
}

// Indicator shows the page count and the selected page of a Pager
type Indicator interface {
	// SetPager binds the indicator to a pager
	SetPager(p *Pager)

	// SetPagerAt binds the indicator to a pager and selects initialPosition
	SetPagerAt(p *Pager, initialPosition int)

	// SetCurrentItem selects a page on both the pager and the indicator
	SetCurrentItem(item int)

	// SetOnPageChange sets a listener that receives forwarded page events
	SetOnPageChange(l PageChangeListener)

	// NotifyDataSetChanged refreshes the indicator after the page count changed
	NotifyDataSetChanged()
}

// Dots is an indicator drawn as a row of dots with the current page filled
type Dots struct {
	mu       sync.Mutex
	pager    *Pager
	count    int
	current  int
	listener PageChangeListener
}

// NewDots creates an unbound dot indicator
func NewDots() *Dots {
	return &Dots{}
}

// SetPager binds the indicator to p
func (d *Dots) SetPager(p *Pager) {
	d.mu.Lock()
	if d.pager == p {
		d.mu.Unlock()
		return
	}
	old := d.pager
	d.pager = p
	d.mu.Unlock()

	if old != nil {
		old.UnregisterOnPageChange(d)
	}
	if p != nil {
		p.RegisterOnPageChange(d)
	}
	d.NotifyDataSetChanged()
}

// SetPagerAt binds the indicator to p and selects initialPosition
func (d *Dots) SetPagerAt(p *Pager, initialPosition int) {
	d.SetPager(p)
	d.SetCurrentItem(initialPosition)
}

// SetCurrentItem selects a page. It must be used to choose the first page
// before the indicator is rendered.
func (d *Dots) SetCurrentItem(item int) {
	d.mu.Lock()
	p := d.pager
	d.mu.Unlock()

	if p == nil {
		return
	}
	p.SetCurrentItem(item)

	d.mu.Lock()
	d.current = p.CurrentItem()
	d.mu.Unlock()
}

// SetOnPageChange sets the listener page events are forwarded to
func (d *Dots) SetOnPageChange(l PageChangeListener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listener = l
}

// NotifyDataSetChanged re-reads the page count and selection from the pager
func (d *Dots) NotifyDataSetChanged() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pager == nil {
		d.count, d.current = 0, 0
		return
	}
	d.count = d.pager.Count()
	d.current = d.pager.CurrentItem()
}

// OnPageSelected tracks the pager and forwards the event
func (d *Dots) OnPageSelected(position int) {
	d.mu.Lock()
	d.current = position
	l := d.listener
	d.mu.Unlock()

	if l != nil {
		l.OnPageSelected(position)
	}
}

// Current returns the selected page as last seen by the indicator
func (d *Dots) Current() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Count returns the page count as last seen by the indicator
func (d *Dots) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}

// String renders the indicator, e.g. "○●○"
func (d *Dots) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var b strings.Builder
	for i := 0; i < d.count; i++ {
		if i == d.current {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

var (
	_ Indicator          = (*Dots)(nil)
	_ PageChangeListener = (*Dots)(nil)
)
