package schedule

import (
	"errors"

	"moveboard/models"

	"github.com/google/uuid"
)

// Board errors.
var (
	ErrBlockNotFound = errors.New("block not found on board")
	ErrMoverNotFound = errors.New("mover not found on board")
	ErrNoFreeColumn  = errors.New("no free column for the requested interval")
)

// DayBoard holds the schedule state for one owner on one day. All mutations
// funnel through one entry point per operation type so the lane non-overlap
// and snap-alignment invariants are enforced in a single place.
type DayBoard struct {
	OwnerID string             `json:"ownerId"`
	Date    string             `json:"date"` // YYYY-MM-DD
	Blocks  []models.TimeBlock `json:"blocks"`
	Movers  []models.Mover     `json:"movers"`
	Gesture *GestureState      `json:"gesture,omitempty"`
}

// NewDayBoard returns an empty board for the given owner and day.
func NewDayBoard(ownerID, date string) *DayBoard {
	return &DayBoard{OwnerID: ownerID, Date: date}
}

// block returns a pointer into the board's block slice, or nil.
func (b *DayBoard) block(id string) *models.TimeBlock {
	for i := range b.Blocks {
		if b.Blocks[i].ID == id {
			return &b.Blocks[i]
		}
	}
	return nil
}

// FindBlock returns a copy of the block with the given id.
func (b *DayBoard) FindBlock(id string) (models.TimeBlock, bool) {
	if blk := b.block(id); blk != nil {
		return *blk, true
	}
	return models.TimeBlock{}, false
}

// columnFree reports whether lane col has no block overlapping [start,end),
// ignoring the block with id exclude.
func (b *DayBoard) columnFree(col, start, end int, exclude string) bool {
	for i := range b.Blocks {
		blk := &b.Blocks[i]
		if blk.ID == exclude || blk.Column != col {
			continue
		}
		if overlaps(start, end, blk.Start, blk.End) {
			return false
		}
	}
	return true
}

// findColumn scans lanes 0..MaxColumns-1 and returns the first one free for
// [start,end). The preferred lane is tried first so a dragged block lands in
// the lane under the pointer whenever it fits.
func (b *DayBoard) findColumn(preferred, start, end int, exclude string) (int, bool) {
	if b.columnFree(preferred, start, end, exclude) {
		return preferred, true
	}
	for col := 0; col < MaxColumns; col++ {
		if col == preferred {
			continue
		}
		if b.columnFree(col, start, end, exclude) {
			return col, true
		}
	}
	return 0, false
}

// CreateBlockAt creates a one-hour block at the snapped time under the given
// vertical pixel offset. The block lands in the first lane free for its
// interval; creation is refused when every lane is occupied there.
func (b *DayBoard) CreateBlockAt(y float64) (*models.TimeBlock, error) {
	start := Snap(PixelsToMinutes(y))
	start = clampInt(start, 0, MinutesPerDay-SnapMinutes)
	end := start + DefaultBlockMinutes
	if end > MinutesPerDay {
		end = MinutesPerDay
	}

	col, ok := b.findColumn(0, start, end, "")
	if !ok {
		return nil, ErrNoFreeColumn
	}

	blk := models.TimeBlock{
		ID:     uuid.NewString(),
		Title:  "New Job",
		Start:  start,
		End:    end,
		Column: col,
		Color:  BlockPalette[len(b.Blocks)%len(BlockPalette)],
	}
	b.Blocks = append(b.Blocks, blk)
	return b.block(blk.ID), nil
}

// placeBlock moves blk to the snapped start and the desired lane, preserving
// duration and shifting any prep window with it. The start is clamped inside
// the day; when the desired lane is occupied the nearest free lane is used.
func (b *DayBoard) placeBlock(blk *models.TimeBlock, newStart, desiredCol int) error {
	dur := blk.Duration()
	newStart = Snap(newStart)
	newStart = clampInt(newStart, 0, MinutesPerDay-dur)
	newEnd := newStart + dur

	desiredCol = clampInt(desiredCol, 0, MaxColumns-1)
	col, ok := b.findColumn(desiredCol, newStart, newEnd, blk.ID)
	if !ok {
		return ErrNoFreeColumn
	}

	blk.Start = newStart
	blk.End = newEnd
	blk.Column = col
	b.reclampPrep(blk)
	return nil
}

// MoveBlock shifts a block by pointer deltas: deltaY in pixels along the time
// axis, deltaX in pixels across lanes. The move is refused (block unchanged)
// only when no lane can hold the shifted interval.
func (b *DayBoard) MoveBlock(id string, deltaX, deltaY float64) (*models.TimeBlock, error) {
	blk := b.block(id)
	if blk == nil {
		return nil, ErrBlockNotFound
	}
	newStart := blk.Start + PixelsToMinutes(deltaY)
	desiredCol := blk.Column + int(deltaX/ColumnWidth)
	if err := b.placeBlock(blk, newStart, desiredCol); err != nil {
		return nil, err
	}
	return blk, nil
}

// ResizeBlock adjusts a block's end from a bottom-handle drag. initialHeight
// is the block's pixel height when the drag began and deltaY the vertical
// travel since. The duration is snapped and floored at SnapMinutes; the end
// is clamped at the day bound and at the next block in the same lane.
func (b *DayBoard) ResizeBlock(id string, initialHeight, deltaY float64) (*models.TimeBlock, error) {
	blk := b.block(id)
	if blk == nil {
		return nil, ErrBlockNotFound
	}

	dur := Snap(PixelsToMinutes(initialHeight + deltaY))
	if dur < SnapMinutes {
		dur = SnapMinutes
	}
	end := blk.Start + dur
	if end > MinutesPerDay {
		end = MinutesPerDay
	}
	if next, ok := b.nextInColumn(blk); ok && end > next {
		end = next
	}
	blk.End = end
	return blk, nil
}

// nextInColumn returns the start of the earliest block in blk's lane that
// begins at or after blk's start.
func (b *DayBoard) nextInColumn(blk *models.TimeBlock) (int, bool) {
	next, found := 0, false
	for i := range b.Blocks {
		other := &b.Blocks[i]
		if other.ID == blk.ID || other.Column != blk.Column || other.Start < blk.Start {
			continue
		}
		if !found || other.Start < next {
			next, found = other.Start, true
		}
	}
	return next, found
}

// prevEndInColumn returns the latest end among blocks in blk's lane that
// finish at or before blk's start. Zero (midnight) when the lane is clear.
func (b *DayBoard) prevEndInColumn(blk *models.TimeBlock) int {
	prev := 0
	for i := range b.Blocks {
		other := &b.Blocks[i]
		if other.ID == blk.ID || other.Column != blk.Column || other.End > blk.Start {
			continue
		}
		if other.End > prev {
			prev = other.End
		}
	}
	return prev
}

// AdjustPrep sets the preparation window from a top-handle drag. The duration
// is snapped and clamped to the lead time available before the block, bounded
// by midnight and by the previous block in the same lane. A zero duration
// removes the window entirely.
func (b *DayBoard) AdjustPrep(id string, deltaY float64) (*models.TimeBlock, error) {
	blk := b.block(id)
	if blk == nil {
		return nil, ErrBlockNotFound
	}

	dur := Snap(PixelsToMinutes(deltaY))
	available := blk.Start - b.prevEndInColumn(blk)
	dur = clampInt(dur, 0, available)
	if dur == 0 {
		blk.PrepTime = nil
	} else {
		blk.PrepTime = &models.PrepWindow{Start: blk.Start - dur, Duration: dur}
	}
	return blk, nil
}

// reclampPrep re-anchors a prep window after its block moved, shrinking it
// when the new position leaves less lead time. A window clamped to zero is
// dropped.
func (b *DayBoard) reclampPrep(blk *models.TimeBlock) {
	if blk.PrepTime == nil {
		return
	}
	dur := clampInt(blk.PrepTime.Duration, 0, blk.Start-b.prevEndInColumn(blk))
	if dur == 0 {
		blk.PrepTime = nil
		return
	}
	blk.PrepTime = &models.PrepWindow{Start: blk.Start - dur, Duration: dur}
}

// DeleteBlock removes the block from the board. Deleting the block an active
// gesture is attached to ends the gesture.
func (b *DayBoard) DeleteBlock(id string) error {
	for i := range b.Blocks {
		if b.Blocks[i].ID == id {
			b.Blocks = append(b.Blocks[:i], b.Blocks[i+1:]...)
			if b.Gesture != nil && b.Gesture.BlockID == id {
				b.Gesture = nil
			}
			return nil
		}
	}
	return ErrBlockNotFound
}

// CommitEdit replaces the fields of the block matching the draft's id
// atomically. Boundaries are re-snapped, a collapsed interval is restored to
// the minimum duration, and the block is re-laned when its edited interval no
// longer fits where it was.
func (b *DayBoard) CommitEdit(draft models.BlockDraft) (*models.TimeBlock, error) {
	blk := b.block(draft.ID)
	if blk == nil {
		return nil, ErrBlockNotFound
	}

	start := clampInt(Snap(draft.Start), 0, MinutesPerDay-SnapMinutes)
	end := clampInt(Snap(draft.End), start+SnapMinutes, MinutesPerDay)

	col := blk.Column
	if !b.columnFree(col, start, end, blk.ID) {
		free, ok := b.findColumn(col, start, end, blk.ID)
		if !ok {
			return nil, ErrNoFreeColumn
		}
		col = free
	}

	blk.Title = draft.Title
	blk.Description = draft.Description
	blk.Location = draft.Location
	blk.Start = start
	blk.End = end
	blk.Column = col
	blk.AssignedMovers = dedupe(draft.AssignedMovers)
	b.reclampPrep(blk)
	return blk, nil
}

// dedupe drops repeated ids, preserving first-seen order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
