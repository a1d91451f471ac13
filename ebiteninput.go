package willowxr

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenButtons = [...]struct {
	ebiten ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// EbitenInput polls ebiten's mouse and keyboard state once per frame and
// turns it into InputEvents for World.HandleInput.
type EbitenInput struct {
	lastX, lastY int
	primed       bool
	keys         []ebiten.Key
}

// Poll appends this frame's events to buf and returns it. Motion is reported
// only when the cursor moved; buttons and keys are reported on their edges.
func (in *EbitenInput) Poll(buf []InputEvent) []InputEvent {
	x, y := ebiten.CursorPosition()
	pos := mgl64.Vec2{float64(x), float64(y)}
	if !in.primed || x != in.lastX || y != in.lastY {
		var rel mgl64.Vec2
		if in.primed {
			rel = mgl64.Vec2{float64(x - in.lastX), float64(y - in.lastY)}
		}
		buf = append(buf, PointerEvent{Kind: PointerMotion, Position: pos, Relative: rel})
		in.lastX, in.lastY = x, y
		in.primed = true
	}

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			buf = append(buf, PointerEvent{Kind: PointerButtonDown, Position: pos, Button: b.button})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			buf = append(buf, PointerEvent{Kind: PointerButtonUp, Position: pos, Button: b.button})
		}
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		buf = append(buf, KeyEvent{Key: k, Pressed: true})
	}
	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		buf = append(buf, KeyEvent{Key: k, Pressed: false})
	}
	return buf
}
