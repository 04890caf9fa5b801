package schedule

import (
	"errors"
	"math"
	"time"
)

// Gesture errors.
var (
	ErrNoActiveGesture = errors.New("no active gesture on board")
	ErrStalePointer    = errors.New("pointer does not own the active gesture")
)

// PointerSource tags which input modality produced an event. Mouse and touch
// are mutually exclusive within one gesture.
type PointerSource string

const (
	PointerMouse PointerSource = "mouse"
	PointerTouch PointerSource = "touch"
)

// PointerEvent is the unified representation of a mouse or touch sample.
type PointerEvent struct {
	Source  PointerSource `json:"source"`
	TouchID int           `json:"touchId,omitempty"`
	X       float64       `json:"x"`
	Y       float64       `json:"y"`
	At      time.Time     `json:"at"`
}

// GestureKind selects which mutation a drag applies.
type GestureKind string

const (
	GestureMove   GestureKind = "move"
	GestureResize GestureKind = "resize"
	GesturePrep   GestureKind = "prep"
)

// GesturePhase is the tap-vs-drag resolution state.
type GesturePhase string

const (
	GesturePending GesturePhase = "pending"
	GestureTap     GesturePhase = "tap"
	GestureDrag    GesturePhase = "drag"
)

// Tap thresholds. A gesture released within TapMaxDuration having travelled
// at most TapMaxTravel pixels over fewer than TapMaxSamples move samples
// resolves as a tap (open editor) instead of a drag.
const (
	TapMaxDuration = 250 * time.Millisecond
	TapMaxTravel   = 6.0
	TapMaxSamples  = 3
)

// GestureState is the board's single active-interaction slot. The origin
// fields freeze the block's position when the gesture began so every drag
// sample repositions from the same reference instead of compounding.
type GestureState struct {
	BlockID string        `json:"blockId"`
	Kind    GestureKind   `json:"kind"`
	Source  PointerSource `json:"source"`
	TouchID int           `json:"touchId,omitempty"`
	Phase   GesturePhase  `json:"phase"`

	StartX    float64   `json:"startX"`
	StartY    float64   `json:"startY"`
	LastX     float64   `json:"lastX"`
	LastY     float64   `json:"lastY"`
	StartedAt time.Time `json:"startedAt"`
	Samples   int       `json:"samples"`
	Travel    float64   `json:"travel"`

	OriginStart  int     `json:"originStart"`
	OriginColumn int     `json:"originColumn"`
	OriginHeight float64 `json:"originHeight"`
}

// owns reports whether ev belongs to this gesture's pointer. A touch event
// with a different identifier is a stale or concurrent finger, never this
// gesture.
func (g *GestureState) owns(ev PointerEvent) bool {
	if ev.Source != g.Source {
		return false
	}
	return g.Source != PointerTouch || ev.TouchID == g.TouchID
}

// BeginGesture starts an interaction on a block, replacing any gesture still
// active (the previous one simply stops receiving updates; its optimistic
// mutations stand).
func (b *DayBoard) BeginGesture(blockID string, kind GestureKind, ev PointerEvent) (*GestureState, error) {
	blk := b.block(blockID)
	if blk == nil {
		return nil, ErrBlockNotFound
	}
	b.Gesture = &GestureState{
		BlockID:      blockID,
		Kind:         kind,
		Source:       ev.Source,
		TouchID:      ev.TouchID,
		Phase:        GesturePending,
		StartX:       ev.X,
		StartY:       ev.Y,
		LastX:        ev.X,
		LastY:        ev.Y,
		StartedAt:    ev.At,
		OriginStart:  blk.Start,
		OriginColumn: blk.Column,
		OriginHeight: MinutesToPixels(blk.Duration()),
	}
	return b.Gesture, nil
}

// UpdateGesture feeds a pointer move sample into the active gesture. Samples
// from a non-owning pointer are rejected without touching the gesture. Once
// the gesture resolves as a drag, each sample applies its mutation
// optimistically against the block set.
func (b *DayBoard) UpdateGesture(ev PointerEvent) (*GestureState, error) {
	g := b.Gesture
	if g == nil {
		return nil, ErrNoActiveGesture
	}
	if !g.owns(ev) {
		return nil, ErrStalePointer
	}

	g.Samples++
	g.Travel += math.Hypot(ev.X-g.LastX, ev.Y-g.LastY)
	g.LastX, g.LastY = ev.X, ev.Y

	if g.Phase == GesturePending && g.resolved(ev.At) {
		g.Phase = GestureDrag
	}
	if g.Phase == GestureDrag {
		b.applyDrag(g, ev)
	}
	return g, nil
}

// resolved reports whether the gesture can no longer end as a tap. Exceeding
// any one threshold resolves it as a drag.
func (g *GestureState) resolved(now time.Time) bool {
	return now.Sub(g.StartedAt) > TapMaxDuration ||
		g.Travel > TapMaxTravel ||
		g.Samples >= TapMaxSamples
}

// applyDrag repositions the gesture's block from the total pointer travel
// since the gesture origin. A move that finds no free lane is dropped; the
// block keeps its last valid position.
func (b *DayBoard) applyDrag(g *GestureState, ev PointerEvent) {
	blk := b.block(g.BlockID)
	if blk == nil {
		return
	}
	totalDX := ev.X - g.StartX
	totalDY := ev.Y - g.StartY

	switch g.Kind {
	case GestureMove:
		newStart := g.OriginStart + PixelsToMinutes(totalDY)
		desired := g.OriginColumn + int(math.Round(totalDX/ColumnWidth))
		_ = b.placeBlock(blk, newStart, desired)
	case GestureResize:
		_, _ = b.ResizeBlock(g.BlockID, g.OriginHeight, totalDY)
	case GesturePrep:
		// Top handle: dragging upward grows the prep window.
		_, _ = b.AdjustPrep(g.BlockID, g.StartY-ev.Y)
	}
}

// EndGesture finishes the active gesture on pointer-up / touch-end and
// returns its final phase. A gesture still pending at release resolves as a
// tap only when it stayed inside every tap threshold; otherwise the release
// position's mutation is applied before the slot clears. No mutation is
// rolled back; the end merely stops further updates.
func (b *DayBoard) EndGesture(ev PointerEvent) (GesturePhase, error) {
	g := b.Gesture
	if g == nil {
		return "", ErrNoActiveGesture
	}
	if !g.owns(ev) {
		return "", ErrStalePointer
	}

	// The release position still counts toward travel; it is not a move sample.
	g.Travel += math.Hypot(ev.X-g.LastX, ev.Y-g.LastY)
	g.LastX, g.LastY = ev.X, ev.Y

	phase := GestureDrag
	if g.Phase == GesturePending {
		if g.resolved(ev.At) {
			g.Phase = GestureDrag
			b.applyDrag(g, ev)
		} else {
			phase = GestureTap
		}
	}
	b.Gesture = nil
	return phase, nil
}

// CancelGesture clears the active gesture on touch-cancel. Optimistic
// mutations already applied stand; the editor is never opened.
func (b *DayBoard) CancelGesture() {
	b.Gesture = nil
}
