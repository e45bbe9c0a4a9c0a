package game

import (
	"math"
	"time"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

// MediaState reports what the backing track is doing at frame time.
type MediaState string

const (
	MediaPending MediaState = "PENDING"
	MediaPlaying MediaState = "PLAYING"
	MediaEnded   MediaState = "ENDED"
	MediaFailed  MediaState = "FAILED"
)

const (
	// DefaultHitWindow is the timing tolerance around a note, in seconds,
	// inclusive on both edges.
	DefaultHitWindow = 0.4
	// DefaultScrollSpeed is the note scroll rate in display units per
	// second, exposed for clients that render the chart.
	DefaultScrollSpeed = 600.0
	// endGrace keeps the session alive past the last second of the chart
	// so a final note at duration can still be judged.
	endGrace = 2.0

	baseHitScore  = 100
	comboHitBonus = 10
)

// FrameInput is one processed camera frame plus the media clock reading
// taken at the same instant.
type FrameInput struct {
	Landmarks   []models.Landmark
	TimestampMs float64
	MediaTime   float64
	Media       MediaState
	At          time.Time
}

// FrameResult is the judgement of one frame.
type FrameResult struct {
	Waiting  bool    // media not started yet, nothing judged
	Time     float64 // resolved song time used for judgement
	Action   models.Action
	Hits     []models.Note
	Misses   []models.Note
	Score    int
	Combo    int
	MaxCombo int
	Finished bool
}

// Engine advances one play-through of a level. It is not safe for
// concurrent use; callers serialize frames per session.
type Engine struct {
	level     models.Level
	notes     []models.Note
	hitWindow float64

	score    int
	combo    int
	maxCombo int
	finished bool

	lastAction    models.Action
	lastTimestamp float64

	// Fallback clock state for when the media source dies mid-play: the
	// song time freezes at the last good reading and resumes against the
	// local monotonic clock.
	fallbackBase float64
	fallbackAt   time.Time
	inFallback   bool
}

// NewEngine starts a run of the given level. The level's chart is copied so
// judgement never mutates the catalog.
func NewEngine(level models.Level) *Engine {
	notes := make([]models.Note, len(level.Notes))
	copy(notes, level.Notes)
	return &Engine{
		level:         level,
		notes:         notes,
		hitWindow:     DefaultHitWindow,
		lastAction:    models.ActionIdle,
		lastTimestamp: -1,
	}
}

// Step judges one frame. Frames with a timestamp at or before the previous
// one reuse the last classified action instead of re-classifying, which
// keeps judgement stable when the capture pipeline repeats a frame.
func (e *Engine) Step(in FrameInput) FrameResult {
	if e.finished {
		return e.snapshot(FrameResult{Finished: true})
	}
	if in.Media == MediaPending {
		return e.snapshot(FrameResult{Waiting: true})
	}

	now := e.resolveClock(in)

	action := e.lastAction
	if in.TimestampMs > e.lastTimestamp {
		action = ClassifyAction(in.Landmarks)
		e.lastAction = action
		e.lastTimestamp = in.TimestampMs
	}

	result := FrameResult{Time: now, Action: action}
	for i := range e.notes {
		note := &e.notes[i]
		if note.Terminal() {
			continue
		}
		diff := note.Time - now
		switch {
		case math.Abs(diff) <= e.hitWindow && action == note.Type:
			note.Hit = true
			e.score += baseHitScore + e.combo*comboHitBonus
			e.combo++
			if e.combo > e.maxCombo {
				e.maxCombo = e.combo
			}
			result.Hits = append(result.Hits, *note)
		case diff < -e.hitWindow:
			note.Missed = true
			e.combo = 0
			result.Misses = append(result.Misses, *note)
		}
	}

	if e.allTerminal() && now >= e.level.Duration+endGrace {
		e.finished = true
	}
	if in.Media == MediaEnded {
		e.finished = true
	}
	result.Finished = e.finished
	return e.snapshot(result)
}

// resolveClock picks the song time for this frame. A live media clock is
// authoritative; once the media reports failure the engine free-runs from
// the last good reading.
func (e *Engine) resolveClock(in FrameInput) float64 {
	if in.Media == MediaFailed {
		if !e.inFallback {
			e.inFallback = true
			e.fallbackAt = in.At
		}
		return e.fallbackBase + in.At.Sub(e.fallbackAt).Seconds()
	}
	e.inFallback = false
	e.fallbackBase = in.MediaTime
	return in.MediaTime
}

func (e *Engine) allTerminal() bool {
	for i := range e.notes {
		if !e.notes[i].Terminal() {
			return false
		}
	}
	return true
}

func (e *Engine) snapshot(r FrameResult) FrameResult {
	r.Score = e.score
	r.Combo = e.combo
	r.MaxCombo = e.maxCombo
	return r
}

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Combo returns the current combo streak.
func (e *Engine) Combo() int { return e.combo }

// MaxCombo returns the longest streak of the run.
func (e *Engine) MaxCombo() int { return e.maxCombo }

// Finished reports whether the run has ended.
func (e *Engine) Finished() bool { return e.finished }

// LastTimestamp returns the newest frame timestamp judged so far.
func (e *Engine) LastTimestamp() float64 { return e.lastTimestamp }

// Notes returns a copy of the chart with its current hit/miss state.
func (e *Engine) Notes() []models.Note {
	notes := make([]models.Note, len(e.notes))
	copy(notes, e.notes)
	return notes
}

// Level returns the level being played.
func (e *Engine) Level() models.Level { return e.level }
