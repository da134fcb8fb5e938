// Package notes holds the note repository and the category index, the two
// persisted collections behind the editor. Both are full-collection reads
// and writes against a kvstore.Store; neither keeps derived state.
package notes

import "time"

// UntitledTitle is substituted for an empty title at persistence time.
const UntitledTitle = "Untitled"

// Note is a user-authored title/body record with an optional single tag.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayTitle returns the title as shown to the user, falling back to
// "Untitled" when empty.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return UntitledTitle
	}
	return n.Title
}
