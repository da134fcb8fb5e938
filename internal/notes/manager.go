package notes

import "fmt"

// CategoryCount pairs a label with the number of notes carrying it.
type CategoryCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Manager coordinates the repository and the category index so the tag
// invariant holds: every non-empty tag on a persisted note appears in the
// index. The reverse is not enforced; empty categories are kept.
type Manager struct {
	repo *Repository
	cats *CategoryIndex
}

// NewManager creates a manager over an already loaded repository and index.
func NewManager(repo *Repository, cats *CategoryIndex) *Manager {
	return &Manager{repo: repo, cats: cats}
}

// Repository returns the underlying note repository.
func (m *Manager) Repository() *Repository { return m.repo }

// Categories returns the underlying category index.
func (m *Manager) Categories() *CategoryIndex { return m.cats }

// Upsert persists the note and implicitly registers a previously unseen tag
// in the category index.
func (m *Manager) Upsert(note Note) (Note, error) {
	saved, err := m.repo.Upsert(note)
	if err != nil {
		return Note{}, err
	}
	if err := m.cats.Add(saved.Tag); err != nil {
		return Note{}, fmt.Errorf("register tag %q: %w", saved.Tag, err)
	}
	return saved, nil
}

// DeleteNote removes a note by id. Its category is kept even when it drops
// to zero members.
func (m *Manager) DeleteNote(id string) error {
	return m.repo.Delete(id)
}

// DeleteCategory removes the label and every note tagged with it, as one
// logical operation. The destructive cascade requires the caller to pass
// confirmed=true; the confirmation prompt itself lives at the call site.
func (m *Manager) DeleteCategory(label string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := m.repo.deleteByTag(label); err != nil {
		return fmt.Errorf("delete notes tagged %q: %w", label, err)
	}
	if err := m.cats.Remove(label); err != nil {
		return fmt.Errorf("remove category %q: %w", label, err)
	}
	return nil
}

// ListWithCounts returns every category label paired with its current note
// count. Counts are derived from the repository on each call, never stored.
func (m *Manager) ListWithCounts() []CategoryCount {
	labels := m.cats.Labels()
	out := make([]CategoryCount, 0, len(labels))
	for _, label := range labels {
		out = append(out, CategoryCount{
			Label: label,
			Count: len(m.repo.FilterByTag(label)),
		})
	}
	return out
}
