package carousel

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is the frame cadence of a running track animation.
const frameInterval = time.Second / 60

// FrameMsg advances the track animation of carousel ID.
type FrameMsg struct {
	ID   int
	Anim int
	Time time.Time
}

// animator moves the rendered track position toward a target. Only one
// animation runs at a time; starting a new one invalidates the frames of
// the previous one.
type animator struct {
	id      int
	running bool

	from, to float64
	pos      float64
	start    time.Time
	duration time.Duration
	easing   EasingFunc

	// hook is the completion hook the animation reports to, zero when the
	// animation is a tilt bounce.
	hook int
}

// animate starts a new animation from the current position and returns
// the id its frames must carry.
func (a *animator) animate(to int, d time.Duration, easing EasingFunc, hook int, now time.Time) int {
	a.id++
	a.running = true
	a.from = a.pos
	a.to = float64(to)
	a.start = now
	a.duration = d
	a.easing = easing
	a.hook = hook
	return a.id
}

// retarget keeps a running animation alive but sends it somewhere else.
// An idle track snaps.
func (a *animator) retarget(to int, now time.Time) {
	if !a.running {
		a.snap(to)
		return
	}
	a.from = a.pos
	a.to = float64(to)
	a.start = now
}

func (a *animator) snap(to int) {
	a.pos = float64(to)
	a.from = a.pos
	a.to = a.pos
}

// stop abandons the running animation at its target.
func (a *animator) stop() {
	if a.running {
		a.pos = a.to
	}
	a.running = false
	a.hook = 0
	a.id++
}

// step advances to now. It reports false for stale frames and true with
// done set once the target is reached.
func (a *animator) step(id int, now time.Time) (ok, done bool) {
	if !a.running || id != a.id {
		return false, false
	}

	t := 1.0
	if a.duration > 0 {
		t = float64(now.Sub(a.start)) / float64(a.duration)
	}
	if t >= 1 {
		a.pos = a.to
		a.running = false
		return true, true
	}
	a.pos = a.from + (a.to-a.from)*a.easing(math.Max(t, 0))
	return true, false
}

// position is the rendered offset of the track in whole cells.
func (a *animator) position() int {
	return int(math.Round(a.pos))
}

func frameCmd(carousel, anim int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return FrameMsg{ID: carousel, Anim: anim, Time: t}
	})
}
