package schedule

import (
	"context"
	"time"

	"moveboard/models"
	"moveboard/utils"

	"go.uber.org/zap"
)

// DefaultBoardService is the production implementation of BoardService.
type DefaultBoardService struct {
	Store *BoardStore
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// mutate loads the board, applies fn, and saves the snapshot only when fn
// succeeded, so a refused operation leaves the stored board untouched.
func (s *DefaultBoardService) mutate(ownerID, date string, fn func(*DayBoard) error) (*DayBoard, error) {
	ctx, cancel := opContext()
	defer cancel()

	board, err := s.Store.Load(ctx, ownerID, date)
	if err != nil {
		return nil, err
	}
	if err := fn(board); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, board); err != nil {
		utils.GetLogger().Error("failed to persist board snapshot",
			zap.String("ownerId", ownerID), zap.String("date", date), zap.Error(err))
		return nil, err
	}
	return board, nil
}

func (s *DefaultBoardService) GetBoard(ownerID, date string) (*DayBoard, error) {
	ctx, cancel := opContext()
	defer cancel()
	return s.Store.Load(ctx, ownerID, date)
}

func (s *DefaultBoardService) ClearBoard(ownerID, date string) error {
	ctx, cancel := opContext()
	defer cancel()
	return s.Store.Delete(ctx, ownerID, date)
}

func (s *DefaultBoardService) CreateBlockAt(ownerID, date string, y float64) (*models.TimeBlock, error) {
	var created models.TimeBlock
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		blk, err := b.CreateBlockAt(y)
		if err != nil {
			return err
		}
		created = *blk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DefaultBoardService) MoveBlock(ownerID, date, blockID string, deltaX, deltaY float64) (*models.TimeBlock, error) {
	var moved models.TimeBlock
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		blk, err := b.MoveBlock(blockID, deltaX, deltaY)
		if err != nil {
			return err
		}
		moved = *blk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &moved, nil
}

func (s *DefaultBoardService) ResizeBlock(ownerID, date, blockID string, initialHeight, deltaY float64) (*models.TimeBlock, error) {
	var resized models.TimeBlock
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		blk, err := b.ResizeBlock(blockID, initialHeight, deltaY)
		if err != nil {
			return err
		}
		resized = *blk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resized, nil
}

func (s *DefaultBoardService) AdjustPrep(ownerID, date, blockID string, deltaY float64) (*models.TimeBlock, error) {
	var adjusted models.TimeBlock
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		blk, err := b.AdjustPrep(blockID, deltaY)
		if err != nil {
			return err
		}
		adjusted = *blk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &adjusted, nil
}

func (s *DefaultBoardService) DeleteBlock(ownerID, date, blockID string) error {
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		return b.DeleteBlock(blockID)
	})
	return err
}

func (s *DefaultBoardService) CommitEdit(ownerID, date string, draft models.BlockDraft) (*models.TimeBlock, error) {
	var committed models.TimeBlock
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		blk, err := b.CommitEdit(draft)
		if err != nil {
			return err
		}
		committed = *blk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &committed, nil
}

func (s *DefaultBoardService) AddMover(ownerID, date, name string) (*models.Mover, error) {
	var added models.Mover
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		added = *b.AddMover(name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *DefaultBoardService) RemoveMover(ownerID, date, moverID string) error {
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		return b.RemoveMover(moverID)
	})
	return err
}

func (s *DefaultBoardService) ToggleMover(ownerID, date, blockID, moverID string) (*models.TimeBlock, error) {
	var toggled models.TimeBlock
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		blk, err := b.ToggleMover(blockID, moverID)
		if err != nil {
			return err
		}
		toggled = *blk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

func (s *DefaultBoardService) BeginGesture(ownerID, date, blockID string, kind GestureKind, ev PointerEvent) (*GestureState, error) {
	var state GestureState
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		g, err := b.BeginGesture(blockID, kind, ev)
		if err != nil {
			return err
		}
		state = *g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *DefaultBoardService) UpdateGesture(ownerID, date string, ev PointerEvent) (*GestureState, error) {
	var state GestureState
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		g, err := b.UpdateGesture(ev)
		if err != nil {
			return err
		}
		state = *g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *DefaultBoardService) EndGesture(ownerID, date string, ev PointerEvent) (GesturePhase, *DayBoard, error) {
	var phase GesturePhase
	board, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		p, err := b.EndGesture(ev)
		if err != nil {
			return err
		}
		phase = p
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return phase, board, nil
}

func (s *DefaultBoardService) CancelGesture(ownerID, date string) error {
	_, err := s.mutate(ownerID, date, func(b *DayBoard) error {
		b.CancelGesture()
		return nil
	})
	return err
}
