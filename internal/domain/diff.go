package domain

import (
	"fmt"
	"strings"
)

// FieldChange records one field whose value differs between two snapshots.
type FieldChange struct {
	Field Field
	Old   string
	New   string
}

// ChangeSet is an ordered field-level diff between two card snapshots.
type ChangeSet []FieldChange

// Diff compares the prior snapshot against the current card and returns the
// fields whose values differ, in edit-bar order. A nil prior is treated as an
// all-blank card.
func Diff(prior, current *Place) ChangeSet {
	if prior == nil {
		prior = &Place{}
	}

	var cs ChangeSet
	for _, f := range EditableFields() {
		oldV, _ := prior.Value(f)
		newV, _ := current.Value(f)
		if oldV != newV {
			cs = append(cs, FieldChange{Field: f, Old: oldV, New: newV})
		}
	}
	return cs
}

// Empty reports whether the diff contains no changes.
func (cs ChangeSet) Empty() bool { return len(cs) == 0 }

// Render formats the diff as a numbered list, one change per line:
//
//  1. phone_number: 88887777 -> +50688887777
func (cs ChangeSet) Render() string {
	lines := make([]string, len(cs))
	for i, ch := range cs {
		lines[i] = fmt.Sprintf("%d. %s: %s -> %s", i+1, ch.Field, ch.Old, ch.New)
	}
	return strings.Join(lines, "\n")
}
