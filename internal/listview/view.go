package listview

import (
	"fmt"

	apperrors "sphereoftech/internal/errors"
)

// Keyed is a record with a unique key within its collection.
type Keyed interface {
	Key() string
}

// View holds an immutable source collection, the active query and the
// selected record.
//
// Changing the query never changes the selection: a record filtered out of
// Visible stays selected until the user picks another one. SelectionVisible
// reports that case so renderers can flag it.
type View[T Keyed] struct {
	source   []T
	fields   Fields[T]
	query    Query
	selected int
}

// New creates a view over a private copy of source, selecting its first record.
func New[T Keyed](source []T, fields Fields[T]) (*View[T], error) {
	if len(source) == 0 {
		return nil, apperrors.ErrEmptyCollection
	}
	return &View[T]{
		source: append([]T(nil), source...),
		fields: fields,
		query:  Query{Category: All},
	}, nil
}

// MustNew is New for fixture-backed collections that cannot be empty.
func MustNew[T Keyed](source []T, fields Fields[T]) *View[T] {
	v, err := New(source, fields)
	if err != nil {
		panic(fmt.Sprintf("listview: %v", err))
	}
	return v
}

// Source returns a copy of the unfiltered records.
func (v *View[T]) Source() []T {
	return append([]T(nil), v.source...)
}

// Len returns the size of the unfiltered collection.
func (v *View[T]) Len() int {
	return len(v.source)
}

// Query returns the active query.
func (v *View[T]) Query() Query {
	return v.query
}

// SetSearch replaces the search string.
func (v *View[T]) SetSearch(search string) {
	v.query.Search = search
}

// SetCategory replaces the category selector. Empty means All.
func (v *View[T]) SetCategory(category string) {
	if category == "" {
		category = All
	}
	v.query.Category = category
}

// Visible returns the records matching the active query, in source order.
func (v *View[T]) Visible() []T {
	return Apply(v.source, v.query, v.fields)
}

// Categories returns the category options for this collection.
func (v *View[T]) Categories() []string {
	if v.fields.Category == nil {
		return []string{All}
	}
	return Categories(v.source, v.fields.Category)
}

// CycleCategory advances the selector to the next category option.
func (v *View[T]) CycleCategory() string {
	v.SetCategory(NextCategory(v.Categories(), v.query.Category))
	return v.query.Category
}

// Selected returns the selected record.
func (v *View[T]) Selected() T {
	return v.source[v.selected]
}

// IsSelected reports whether key identifies the selected record.
func (v *View[T]) IsSelected(key string) bool {
	return v.source[v.selected].Key() == key
}

// Select selects the record with the given key from the loaded collection.
// The record does not have to be visible under the current query.
func (v *View[T]) Select(key string) error {
	for i, r := range v.source {
		if r.Key() == key {
			v.selected = i
			return nil
		}
	}
	return fmt.Errorf("select %q: %w", key, apperrors.ErrRecordNotFound)
}

// SelectVisible selects the i-th record of the filtered list, as a click on
// the list renderer would.
func (v *View[T]) SelectVisible(i int) error {
	visible := v.Visible()
	if i < 0 || i >= len(visible) {
		return fmt.Errorf("select row %d of %d: %w", i, len(visible), apperrors.ErrRecordNotFound)
	}
	return v.Select(visible[i].Key())
}

// SelectedRow returns the position of the selection in Visible, or -1 when
// the selection is filtered out.
func (v *View[T]) SelectedRow() int {
	key := v.Selected().Key()
	for i, r := range v.Visible() {
		if r.Key() == key {
			return i
		}
	}
	return -1
}

// SelectionVisible reports whether the selected record is in the filtered list.
func (v *View[T]) SelectionVisible() bool {
	return v.SelectedRow() >= 0
}

// MoveSelection moves the selection delta rows within the filtered list,
// clamping at both ends. When the selection is filtered out it jumps to the
// first visible row. An empty filtered list leaves the selection unchanged.
func (v *View[T]) MoveSelection(delta int) {
	visible := v.Visible()
	if len(visible) == 0 {
		return
	}
	row := v.SelectedRow()
	if row < 0 {
		row = 0
	} else {
		row += delta
	}
	if row < 0 {
		row = 0
	}
	if row >= len(visible) {
		row = len(visible) - 1
	}
	_ = v.Select(visible[row].Key())
}
