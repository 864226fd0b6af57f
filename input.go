package glassfx

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

type TouchInfo struct {
	TouchID eb.TouchID

	StartedTime time.Duration
	StartedPos  FPoint

	// position seen on the previous update, used for drag scrolling
	LastPos FPoint

	DidEnd bool
}

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	TouchInfos map[eb.TouchID]TouchInfo

	TouchingBuf     []eb.TouchID
	JustTouchedBuf  []eb.TouchID
	JustReleasedBuf []eb.TouchID

	// vertical drag distance of all touches since the last update
	TouchDragY float64
}

func InitInputManager() {
	im := &TheInputManager

	im.TouchInfos = make(map[eb.TouchID]TouchInfo)
}

func TouchFPt(id eb.TouchID) FPoint {
	x, y := eb.TouchPosition(id)
	return FPt(f64(x), f64(y))
}

func UpdateInput() {
	im := &TheInputManager

	// =============================
	// update touch buffers
	// =============================
	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])
	im.JustTouchedBuf = ebi.AppendJustPressedTouchIDs(im.JustTouchedBuf[:0])
	im.JustReleasedBuf = ebi.AppendJustReleasedTouchIDs(im.JustReleasedBuf[:0])

	// =============================
	// update touch infos
	// =============================
	for _, touchId := range im.JustTouchedBuf {
		pos := TouchFPt(touchId)
		im.TouchInfos[touchId] = TouchInfo{
			StartedTime: GlobalTimerNow(),
			StartedPos:  pos,
			LastPos:     pos,
			TouchID:     touchId,
		}
	}

	im.TouchDragY = 0

	for _, touchId := range im.TouchingBuf {
		if info, ok := im.TouchInfos[touchId]; ok {
			curPos := TouchFPt(touchId)
			im.TouchDragY += curPos.Y - info.LastPos.Y
			info.LastPos = curPos
			im.TouchInfos[touchId] = info
		}
	}

	for _, touchId := range im.JustReleasedBuf {
		if info, ok := im.TouchInfos[touchId]; ok {
			info.DidEnd = true
			im.TouchInfos[touchId] = info
		}
	}

	// for safety
	// remove TouchInfo that are released or too old
	for touchId, info := range im.TouchInfos {
		if info.DidEnd || GlobalTimerNow()-info.StartedTime > time.Minute*30 {
			delete(im.TouchInfos, touchId)
		}
	}
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		keyRepeatMap[key] = 0
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}

// WheelY is the vertical wheel movement of this update, positive is down the page.
func WheelY() float64 {
	_, y := eb.Wheel()
	return -y
}
