package models

// TimeBlock represents a scheduled job interval on a single day board.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM).
type TimeBlock struct {
	ID             string      `bson:"id" json:"id"`
	Title          string      `bson:"title" json:"title"`
	Description    string      `bson:"description,omitempty" json:"description,omitempty"`
	Location       string      `bson:"location,omitempty" json:"location,omitempty"`
	Start          int         `bson:"start" json:"start"`
	End            int         `bson:"end" json:"end"`
	Column         int         `bson:"column" json:"column"`
	Color          string      `bson:"color" json:"color"`
	PrepTime       *PrepWindow `bson:"prepTime,omitempty" json:"prepTime,omitempty"`
	AssignedMovers []string    `bson:"assignedMovers,omitempty" json:"assignedMovers,omitempty"`
}

// PrepWindow is an optional preparation interval immediately preceding a block.
// Start + Duration always equals the owning block's Start.
type PrepWindow struct {
	Start    int `bson:"start" json:"start"`       // minutes from midnight
	Duration int `bson:"duration" json:"duration"` // minutes
}

// Duration returns the block length in minutes.
func (b TimeBlock) Duration() int {
	return b.End - b.Start
}

// HasMover reports whether the given mover id is assigned to the block.
func (b TimeBlock) HasMover(moverID string) bool {
	for _, id := range b.AssignedMovers {
		if id == moverID {
			return true
		}
	}
	return false
}

// Mover is a named crew member that can be assigned to blocks.
type Mover struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Color string `bson:"color" json:"color"`
}

// BlockDraft carries the editable fields of the block editor form.
// Committing a draft replaces the block with the matching ID atomically.
type BlockDraft struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Location       string   `json:"location"`
	Start          int      `json:"start"`
	End            int      `json:"end"`
	AssignedMovers []string `json:"assignedMovers"`
}
