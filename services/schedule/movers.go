package schedule

import (
	"moveboard/models"

	"github.com/google/uuid"
)

// AddMover puts a new named mover on the roster with the next palette color.
func (b *DayBoard) AddMover(name string) *models.Mover {
	m := models.Mover{
		ID:    uuid.NewString(),
		Name:  name,
		Color: MoverPalette[len(b.Movers)%len(MoverPalette)],
	}
	b.Movers = append(b.Movers, m)
	return &b.Movers[len(b.Movers)-1]
}

// RemoveMover drops the mover from the roster and strips its id from every
// block's assignment list.
func (b *DayBoard) RemoveMover(id string) error {
	idx := -1
	for i := range b.Movers {
		if b.Movers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrMoverNotFound
	}
	b.Movers = append(b.Movers[:idx], b.Movers[idx+1:]...)

	for i := range b.Blocks {
		blk := &b.Blocks[i]
		for j := range blk.AssignedMovers {
			if blk.AssignedMovers[j] == id {
				blk.AssignedMovers = append(blk.AssignedMovers[:j], blk.AssignedMovers[j+1:]...)
				break
			}
		}
	}
	return nil
}

// ToggleMover adds the mover id to the block's assignment list if absent and
// removes it if present.
func (b *DayBoard) ToggleMover(blockID, moverID string) (*models.TimeBlock, error) {
	blk := b.block(blockID)
	if blk == nil {
		return nil, ErrBlockNotFound
	}
	for j := range blk.AssignedMovers {
		if blk.AssignedMovers[j] == moverID {
			blk.AssignedMovers = append(blk.AssignedMovers[:j], blk.AssignedMovers[j+1:]...)
			return blk, nil
		}
	}
	onRoster := false
	for i := range b.Movers {
		if b.Movers[i].ID == moverID {
			onRoster = true
			break
		}
	}
	if !onRoster {
		return nil, ErrMoverNotFound
	}
	blk.AssignedMovers = append(blk.AssignedMovers, moverID)
	return blk, nil
}
