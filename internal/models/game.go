package models

// Action is a discrete body action recognized from a single frame's
// landmarks. Note charts use the non-idle subset as their vocabulary.
type Action string

const (
	ActionIdle     Action = "IDLE"
	ActionSquat    Action = "SQUAT"
	ActionHandsUp  Action = "HANDS_UP"
	ActionJumpJack Action = "JUMP_JACK"
)

// Note is one timed rhythm-game event. Hit and Missed are mutually
// exclusive; once either is set the note is immutable.
type Note struct {
	Time   float64 `json:"time"` // seconds from chart start
	Type   Action  `json:"type"`
	Hit    bool    `json:"hit,omitempty"`
	Missed bool    `json:"missed,omitempty"`
}

// Terminal reports whether the note has been resolved as hit or missed.
func (n Note) Terminal() bool {
	return n.Hit || n.Missed
}

// Level is one playable chart: identity, tempo, duration, the external
// media track and a time-ordered note sequence within [0, Duration).
type Level struct {
	ID       string  `json:"id"`
	Stage    int     `json:"stage"`
	Level    int     `json:"level"`
	Name     string  `json:"name"`
	BPM      float64 `json:"bpm"`
	Duration float64 `json:"duration"` // seconds
	MediaID  string  `json:"mediaId"`
	Notes    []Note  `json:"notes"`
}

// FrameRequest is the per-frame payload submitted while a session is
// playing. ImageData is the captured camera frame; TimestampMs must increase
// strictly between detector invocations, duplicates reuse the last action.
type FrameRequest struct {
	ImageData   string  `json:"imageData,omitempty"`
	TimestampMs float64 `json:"timestampMs"`
	MediaTime   float64 `json:"mediaTime"`
	MediaState  string  `json:"mediaState"` // PENDING | PLAYING | ENDED | FAILED
}

// GameSummary is the terminal score of one play-through. BestScore is the
// level's stored record including this run.
type GameSummary struct {
	LevelID   string `json:"levelId"`
	Score     int    `json:"score"`
	MaxCombo  int    `json:"maxCombo"`
	BestScore int    `json:"bestScore"`
}
