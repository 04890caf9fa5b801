package schedule

import "moveboard/models"

// BoardService exposes the schedule board to the HTTP layer. Each call loads
// the owner's board for the day, applies exactly one engine operation, and
// writes the snapshot back.
type BoardService interface {
	GetBoard(ownerID, date string) (*DayBoard, error)
	ClearBoard(ownerID, date string) error

	CreateBlockAt(ownerID, date string, y float64) (*models.TimeBlock, error)
	MoveBlock(ownerID, date, blockID string, deltaX, deltaY float64) (*models.TimeBlock, error)
	ResizeBlock(ownerID, date, blockID string, initialHeight, deltaY float64) (*models.TimeBlock, error)
	AdjustPrep(ownerID, date, blockID string, deltaY float64) (*models.TimeBlock, error)
	DeleteBlock(ownerID, date, blockID string) error
	CommitEdit(ownerID, date string, draft models.BlockDraft) (*models.TimeBlock, error)

	AddMover(ownerID, date, name string) (*models.Mover, error)
	RemoveMover(ownerID, date, moverID string) error
	ToggleMover(ownerID, date, blockID, moverID string) (*models.TimeBlock, error)

	BeginGesture(ownerID, date, blockID string, kind GestureKind, ev PointerEvent) (*GestureState, error)
	UpdateGesture(ownerID, date string, ev PointerEvent) (*GestureState, error)
	EndGesture(ownerID, date string, ev PointerEvent) (GesturePhase, *DayBoard, error)
	CancelGesture(ownerID, date string) error
}
