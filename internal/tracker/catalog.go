package tracker

import (
	"strings"

	"github.com/google/uuid"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Catalog owns the set of activity definitions. Insertion order is preserved
// and is the canonical display order everywhere an ordered list is shown.
type Catalog struct {
	activities []Activity
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// DefaultCatalog seeds the three starter activities a fresh install gets.
func DefaultCatalog() *Catalog {
	return &Catalog{activities: []Activity{
		{ID: "default", Name: "Study", Color: "#3498db"},
		{ID: "game", Name: "Game", Color: "#e67e22"},
		{ID: "rest", Name: "Rest", Color: "#2ecc71"},
	}}
}

// Add validates and appends a new activity, returning the stored record
// with its freshly allocated id.
func (c *Catalog) Add(name, color string) (Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Activity{}, ErrEmptyName
	}
	if err := validateColor(color); err != nil {
		return Activity{}, err
	}
	if _, ok := c.byName(name); ok {
		return Activity{}, ErrDuplicateName
	}

	activity := Activity{
		ID:    uuid.NewString(),
		Name:  name,
		Color: normalizeColor(color),
	}
	c.activities = append(c.activities, activity)
	return activity, nil
}

// Edit mutates the named fields of an existing activity in place. The id
// and insertion position never change.
func (c *Catalog) Edit(id, name, color string) (Activity, error) {
	idx, ok := c.index(id)
	if !ok {
		return Activity{}, ErrActivityNotFound
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Activity{}, ErrEmptyName
	}
	if err := validateColor(color); err != nil {
		return Activity{}, err
	}
	if other, ok := c.byName(name); ok && other.ID != id {
		return Activity{}, ErrDuplicateName
	}

	c.activities[idx].Name = name
	c.activities[idx].Color = normalizeColor(color)
	return c.activities[idx], nil
}

// Remove deletes the activity record. Referential cleanup of timeline
// minutes and a live session on the id is the Tracker's job; the catalog
// only owns the records themselves.
func (c *Catalog) Remove(id string) (Activity, error) {
	idx, ok := c.index(id)
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	removed := c.activities[idx]
	c.activities = append(c.activities[:idx], c.activities[idx+1:]...)
	return removed, nil
}

// List returns the activities in insertion order.
func (c *Catalog) List() []Activity {
	out := make([]Activity, len(c.activities))
	copy(out, c.activities)
	return out
}

// Get looks up an activity by id.
func (c *Catalog) Get(id string) (Activity, bool) {
	idx, ok := c.index(id)
	if !ok {
		return Activity{}, false
	}
	return c.activities[idx], true
}

// Len reports the number of defined activities.
func (c *Catalog) Len() int {
	return len(c.activities)
}

// Replace swaps in a full activity list, used when loading from the store.
func (c *Catalog) Replace(activities []Activity) {
	c.activities = make([]Activity, len(activities))
	copy(c.activities, activities)
}

func (c *Catalog) index(id string) (int, bool) {
	for i, a := range c.activities {
		if a.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (c *Catalog) byName(name string) (Activity, bool) {
	for _, a := range c.activities {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

func validateColor(color string) error {
	if _, err := colorful.Hex(strings.TrimSpace(color)); err != nil {
		return ErrBadColor
	}
	return nil
}

func normalizeColor(color string) string {
	parsed, err := colorful.Hex(strings.TrimSpace(color))
	if err != nil {
		return color
	}
	return parsed.Hex()
}
