// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/tag.go

package core

// Tag is a named virtual desktop.
type Tag struct {
	ID                 TagID
	Label              string
	Hidden             bool
	Layout             string
	FlippedHorizontal  bool
	FlippedVertical    bool
	MainWidthPercentage int
}

// SetLayout sets the tag's layout and clamps the main-width percentage to
// [0, 100].
func (t *Tag) SetLayout(layout string, mainWidth int) {
	t.Layout = layout
	switch {
	case mainWidth < 0:
		mainWidth = 0
	case mainWidth > 100:
		mainWidth = 100
	}
	t.MainWidthPercentage = mainWidth
}

// RotateFlags cycles none -> horizontal -> vertical -> both -> none,
// rotating both flip flags together cycles through four orientations.
func (t *Tag) RotateFlags() {
	switch {
	case !t.FlippedHorizontal && !t.FlippedVertical:
		t.FlippedHorizontal = true
	case t.FlippedHorizontal && !t.FlippedVertical:
		t.FlippedHorizontal = false
		t.FlippedVertical = true
	case !t.FlippedHorizontal && t.FlippedVertical:
		t.FlippedHorizontal = true
	default:
		t.FlippedHorizontal = false
		t.FlippedVertical = false
	}
}

// Tags is the ordered registry of all known tags, including the hidden NSP
// tag.
type Tags struct {
	all    []*Tag
	nextID TagID
}

// NewTags returns an empty tag registry.
func NewTags() *Tags {
	return &Tags{nextID: 1}
}

// AddNew creates a visible tag with the given label and default layout.
func (t *Tags) AddNew(label, layout string) *Tag {
	tag := &Tag{ID: t.nextID, Label: label, Layout: layout, MainWidthPercentage: 50}
	t.nextID++
	t.all = append(t.all, tag)
	return tag
}

// AddNewHidden creates a hidden tag (used for NSP).
func (t *Tags) AddNewHidden(label string) *Tag {
	tag := t.AddNew(label, "")
	tag.Hidden = true
	return tag
}

// All returns every known tag, in creation order.
func (t *Tags) All() []*Tag {
	return t.all
}

// Get returns the tag with the given id, or nil.
func (t *Tags) Get(id TagID) *Tag {
	for _, tag := range t.all {
		if tag.ID == id {
			return tag
		}
	}
	return nil
}

// GetByLabel returns the tag with the given label, or nil.
func (t *Tags) GetByLabel(label string) *Tag {
	for _, tag := range t.all {
		if tag.Label == label {
			return tag
		}
	}
	return nil
}

// NSP returns the distinguished hidden scratchpad tag, creating it if
// absent.
func (t *Tags) NSP() *Tag {
	if tag := t.GetByLabel(NSPTagLabel); tag != nil {
		return tag
	}
	return t.AddNewHidden(NSPTagLabel)
}

// Visible returns all non-hidden tags, in creation order.
func (t *Tags) Visible() []*Tag {
	var out []*Tag
	for _, tag := range t.all {
		if !tag.Hidden {
			out = append(out, tag)
		}
	}
	return out
}
