package schedule

import (
	"testing"
	"time"
)

var gestureEpoch = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

func mouseEvent(x, y float64, offset time.Duration) PointerEvent {
	return PointerEvent{Source: PointerMouse, X: x, Y: y, At: gestureEpoch.Add(offset)}
}

func touchEvent(touchID int, x, y float64, offset time.Duration) PointerEvent {
	return PointerEvent{Source: PointerTouch, TouchID: touchID, X: x, Y: y, At: gestureEpoch.Add(offset)}
}

func TestGestureResolvesAsTap(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, mouseEvent(100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	// A slight jitter under the travel threshold.
	if _, err := b.UpdateGesture(mouseEvent(101, 546, 40*time.Millisecond)); err != nil {
		t.Fatalf("UpdateGesture() failed: %v", err)
	}

	phase, err := b.EndGesture(mouseEvent(101, 546, 90*time.Millisecond))
	if err != nil {
		t.Fatalf("EndGesture() failed: %v", err)
	}
	if phase != GestureTap {
		t.Errorf("phase = %s, want tap", phase)
	}
	if b.Gesture != nil {
		t.Error("gesture slot not cleared after end")
	}
	got, _ := b.FindBlock(blk.ID)
	if got.Start != 540 {
		t.Errorf("tap moved the block to %d", got.Start)
	}
}

func TestSlowReleaseIsNotATap(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, mouseEvent(100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	phase, err := b.EndGesture(mouseEvent(100, 545, 600*time.Millisecond))
	if err != nil {
		t.Fatalf("EndGesture() failed: %v", err)
	}
	if phase != GestureDrag {
		t.Errorf("phase = %s, want drag for a long hold", phase)
	}
}

func TestGestureResolvesAsDragAndMovesBlock(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, mouseEvent(100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	// Steady pull downward: one hour of travel over four samples.
	for i := 1; i <= 4; i++ {
		ev := mouseEvent(100, 545+float64(i*15), time.Duration(i*30)*time.Millisecond)
		g, err := b.UpdateGesture(ev)
		if err != nil {
			t.Fatalf("UpdateGesture() #%d failed: %v", i, err)
		}
		if i == 4 && g.Phase != GestureDrag {
			t.Errorf("phase after travel = %s, want drag", g.Phase)
		}
	}

	phase, err := b.EndGesture(mouseEvent(100, 605, 150*time.Millisecond))
	if err != nil {
		t.Fatalf("EndGesture() failed: %v", err)
	}
	if phase != GestureDrag {
		t.Errorf("final phase = %s, want drag", phase)
	}
	got, _ := b.FindBlock(blk.ID)
	if got.Start != 600 {
		t.Errorf("block start = %d after one-hour drag, want 600", got.Start)
	}
	if got.Duration() != 60 {
		t.Errorf("duration = %d after drag, want 60", got.Duration())
	}
}

func TestFastFlickResolvesAsDrag(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, mouseEvent(100, 540, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	// A quick flick: big travel in only two samples, released well inside the
	// tap window. Travel alone must resolve it as a drag.
	if _, err := b.UpdateGesture(mouseEvent(100, 590, 60*time.Millisecond)); err != nil {
		t.Fatalf("UpdateGesture() failed: %v", err)
	}
	if _, err := b.UpdateGesture(mouseEvent(100, 645, 120*time.Millisecond)); err != nil {
		t.Fatalf("UpdateGesture() failed: %v", err)
	}

	phase, err := b.EndGesture(mouseEvent(100, 645, 150*time.Millisecond))
	if err != nil {
		t.Fatalf("EndGesture() failed: %v", err)
	}
	if phase != GestureDrag {
		t.Errorf("phase = %s, want drag for a 100px flick", phase)
	}
	got, _ := b.FindBlock(blk.ID)
	if got.Start != 645 {
		t.Errorf("block start = %d after flick, want 645", got.Start)
	}
}

func TestFlickEndedBeforeAnyMoveSampleStillMoves(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, mouseEvent(100, 540, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	// Release lands far from the press with no intermediate samples; the end
	// event itself must apply the move.
	phase, err := b.EndGesture(mouseEvent(100, 600, 100*time.Millisecond))
	if err != nil {
		t.Fatalf("EndGesture() failed: %v", err)
	}
	if phase != GestureDrag {
		t.Errorf("phase = %s, want drag", phase)
	}
	got, _ := b.FindBlock(blk.ID)
	if got.Start != 600 {
		t.Errorf("block start = %d, want 600 from the release position", got.Start)
	}
}

func TestDragSamplesDoNotCompound(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, mouseEvent(100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	// Many samples at the same total offset: position is absolute from the
	// gesture origin, so the block must not drift.
	for i := 1; i <= 10; i++ {
		ev := mouseEvent(100, 605, time.Duration(300+i*20)*time.Millisecond)
		if _, err := b.UpdateGesture(ev); err != nil {
			t.Fatalf("UpdateGesture() #%d failed: %v", i, err)
		}
	}
	got, _ := b.FindBlock(blk.ID)
	if got.Start != 600 {
		t.Errorf("block start = %d, want 600 (no compounding)", got.Start)
	}
}

func TestResizeDrag(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureResize, mouseEvent(100, 600, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	if _, err := b.UpdateGesture(mouseEvent(100, 600+HourHeight, 400*time.Millisecond)); err != nil {
		t.Fatalf("UpdateGesture() failed: %v", err)
	}
	got, _ := b.FindBlock(blk.ID)
	if got.Duration() != 120 {
		t.Errorf("duration = %d after bottom-handle drag, want 120", got.Duration())
	}
	if got.Start != 540 {
		t.Errorf("start = %d changed on resize", got.Start)
	}
}

func TestPrepDrag(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GesturePrep, mouseEvent(100, 540, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	// Drag the top handle upward by 30 pixels.
	if _, err := b.UpdateGesture(mouseEvent(100, 510, 400*time.Millisecond)); err != nil {
		t.Fatalf("UpdateGesture() failed: %v", err)
	}
	got, _ := b.FindBlock(blk.ID)
	if got.PrepTime == nil || got.PrepTime.Duration != 30 {
		t.Errorf("prep = %+v after top-handle drag, want 30 minutes", got.PrepTime)
	}
}

func TestStaleTouchIgnored(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, touchEvent(7, 100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}

	// A second finger must neither update nor end the first finger's gesture.
	if _, err := b.UpdateGesture(touchEvent(8, 100, 700, 50*time.Millisecond)); err != ErrStalePointer {
		t.Errorf("UpdateGesture(stale touch): err = %v, want ErrStalePointer", err)
	}
	if _, err := b.EndGesture(touchEvent(8, 100, 700, 60*time.Millisecond)); err != ErrStalePointer {
		t.Errorf("EndGesture(stale touch): err = %v, want ErrStalePointer", err)
	}
	if b.Gesture == nil {
		t.Fatal("stale touch ended the active gesture")
	}

	got, _ := b.FindBlock(blk.ID)
	if got.Start != 540 {
		t.Errorf("stale touch moved the block to %d", got.Start)
	}
}

func TestMouseEventIgnoredDuringTouchGesture(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, touchEvent(7, 100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	if _, err := b.UpdateGesture(mouseEvent(100, 700, 50*time.Millisecond)); err != ErrStalePointer {
		t.Errorf("UpdateGesture(mouse during touch): err = %v, want ErrStalePointer", err)
	}
}

func TestBeginGestureReplacesActiveOne(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	first, _ := b.CreateBlockAt(540)
	second, _ := b.CreateBlockAt(720)

	if _, err := b.BeginGesture(first.ID, GestureMove, mouseEvent(100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	if _, err := b.BeginGesture(second.ID, GestureResize, mouseEvent(100, 780, 50*time.Millisecond)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	if b.Gesture.BlockID != second.ID || b.Gesture.Kind != GestureResize {
		t.Errorf("active gesture = %+v, want the replacing one", b.Gesture)
	}
}

func TestCancelGestureKeepsOptimisticState(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, touchEvent(7, 100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	if _, err := b.UpdateGesture(touchEvent(7, 100, 605, 400*time.Millisecond)); err != nil {
		t.Fatalf("UpdateGesture() failed: %v", err)
	}
	b.CancelGesture()

	if b.Gesture != nil {
		t.Error("gesture slot not cleared on cancel")
	}
	got, _ := b.FindBlock(blk.ID)
	if got.Start != 600 {
		t.Errorf("block start = %d, want optimistic position 600 kept", got.Start)
	}
}

func TestDeleteBlockEndsItsGesture(t *testing.T) {
	b := NewDayBoard("owner-1", "2026-09-01")
	blk, _ := b.CreateBlockAt(540)

	if _, err := b.BeginGesture(blk.ID, GestureMove, mouseEvent(100, 545, 0)); err != nil {
		t.Fatalf("BeginGesture() failed: %v", err)
	}
	if err := b.DeleteBlock(blk.ID); err != nil {
		t.Fatalf("DeleteBlock() failed: %v", err)
	}
	if b.Gesture != nil {
		t.Error("gesture still active after its block was deleted")
	}
}
