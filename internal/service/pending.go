package service

// PendingSet stages join-table edits for a parent entity that has not been
// persisted yet. Order of addition is preserved; everything stays local until
// the parent is created and the set is flushed.
type PendingSet struct {
	selectMessage    string
	duplicateMessage string
	ids              []uint
}

func NewPendingSet(selectMessage, duplicateMessage string) *PendingSet {
	return &PendingSet{
		selectMessage:    selectMessage,
		duplicateMessage: duplicateMessage,
	}
}

// Add stages a target id. A missing selection or a duplicate is rejected with
// a ValidationError without any network call.
func (p *PendingSet) Add(id uint) error {
	if id == 0 {
		return &ValidationError{Message: p.selectMessage}
	}
	for _, existing := range p.ids {
		if existing == id {
			return &ValidationError{Message: p.duplicateMessage}
		}
	}

	p.ids = append(p.ids, id)
	return nil
}

// Remove drops a staged id; removing an absent id is a no-op (no confirmation
// step for unsaved list edits).
func (p *PendingSet) Remove(id uint) {
	for i, existing := range p.ids {
		if existing == id {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			return
		}
	}
}

func (p *PendingSet) Contains(id uint) bool {
	for _, existing := range p.ids {
		if existing == id {
			return true
		}
	}
	return false
}

func (p *PendingSet) IDs() []uint {
	out := make([]uint, len(p.ids))
	copy(out, p.ids)
	return out
}

func (p *PendingSet) Len() int {
	return len(p.ids)
}
