package state

import (
	"slices"
	"strings"
	"sync"

	"github.com/sandeepkv93/taskdesk/internal/model"
)

// Counts holds the size of each status subset of the search-filtered base.
type Counts struct {
	All       int
	Pending   int
	Completed int
}

// Tasks is the local view of the user's tasks plus the query parameters
// (search term, status filter) the list is rendered with.
type Tasks struct {
	mu      sync.RWMutex
	items   []model.Task
	term    string
	filter  model.StatusFilter
	loading bool
	err     *string
}

func NewTasks() *Tasks {
	return &Tasks{filter: model.StatusAll}
}

// ReplaceAll discards the collection and keeps items in the order received.
func (c *Tasks) ReplaceAll(items []model.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
}

// Insert appends t without checking for an id collision.
func (c *Tasks) Insert(t model.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, t)
}

// Replace swaps the first task with t.ID in place. It reports false and
// drops t when no task matches.
func (c *Tasks) Replace(t model.Task) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(t.ID)
	if idx < 0 {
		return false
	}
	c.items[idx] = t
	return true
}

// RemoveByID drops the first task with id. Unknown ids are ignored.
func (c *Tasks) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.items = slices.Delete(c.items, idx, idx+1)
	return true
}

func (c *Tasks) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(t model.Task) bool { return t.ID == id })
}

func (c *Tasks) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns the collection in insertion order.
func (c *Tasks) All() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

func (c *Tasks) Get(id string) (model.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx := c.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return c.items[idx], true
}

func (c *Tasks) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.term = term
}

func (c *Tasks) SearchTerm() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.term
}

// SetStatusFilter ignores values outside all/pending/completed.
func (c *Tasks) SetStatusFilter(f model.StatusFilter) {
	if !f.IsValid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

func (c *Tasks) StatusFilter() model.StatusFilter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

// AllTasks is the search-filtered collection, most recent first.
func (c *Tasks) AllTasks() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return SortByRecency(FilterBySearch(c.items, c.term))
}

// PendingTasks keeps insertion order; only the all view is sorted.
func (c *Tasks) PendingTasks() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filterByStatus(FilterBySearch(c.items, c.term), model.StatusPending)
}

func (c *Tasks) CompletedTasks() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filterByStatus(FilterBySearch(c.items, c.term), model.StatusCompleted)
}

// Visible returns the view selected by the current status filter.
func (c *Tasks) Visible() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	base := FilterBySearch(c.items, c.term)
	if c.filter == model.StatusAll {
		return SortByRecency(base)
	}
	return filterByStatus(base, c.filter)
}

// Counts reflects the search term regardless of the active status filter.
func (c *Tasks) Counts() Counts {
	c.mu.RLock()
	defer c.mu.RUnlock()
	base := FilterBySearch(c.items, c.term)
	out := Counts{All: len(base)}
	for _, t := range base {
		if t.Completed {
			out.Completed++
		} else {
			out.Pending++
		}
	}
	return out
}

func (c *Tasks) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

func (c *Tasks) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Tasks) SetError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = &msg
}

func (c *Tasks) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = nil
}

func (c *Tasks) Error() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err == nil {
		return "", false
	}
	return *c.err, true
}

// FilterBySearch keeps tasks whose title or description contains term,
// ignoring case and surrounding whitespace. A blank term keeps everything.
// The result never aliases items.
func FilterBySearch(items []model.Task, term string) []model.Task {
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]model.Task, 0, len(items))
	for _, t := range items {
		if needle == "" ||
			strings.Contains(strings.ToLower(t.Title), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}

// SortByRecency orders items by CreatedAt descending in place, keeping the
// relative order of equal timestamps.
func SortByRecency(items []model.Task) []model.Task {
	slices.SortStableFunc(items, func(a, b model.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items
}

func filterByStatus(items []model.Task, f model.StatusFilter) []model.Task {
	out := items[:0]
	for _, t := range items {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
