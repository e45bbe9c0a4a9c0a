package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/shapist-backend-go/internal/game"
	"github.com/jengzang/shapist-backend-go/internal/models"
	"github.com/jengzang/shapist-backend-go/internal/pose"
	"github.com/jengzang/shapist-backend-go/internal/repository"
)

// SessionState is the lifecycle phase of one game session.
type SessionState string

const (
	StateLoading SessionState = "LOADING"
	StateMenu    SessionState = "MENU"
	StatePlaying SessionState = "PLAYING"
	StateResult  SessionState = "RESULT"
)

type gameSession struct {
	mu sync.Mutex

	id       string
	state    SessionState
	engine   *game.Engine
	detector *pose.Session
	// epoch increments on every play start and exit; a frame judged
	// against a stale epoch is discarded rather than applied to whatever
	// run came after.
	epoch uint64

	summary *models.GameSummary
}

// GameService owns all live game sessions and their state machines.
type GameService struct {
	mu       sync.RWMutex
	sessions map[string]*gameSession

	newDetector DetectorFactory
	repo        *repository.GameRepository
	levels      []models.Level
}

// NewGameService creates the service. The level catalog is built once.
func NewGameService(factory DetectorFactory, repo *repository.GameRepository) *GameService {
	return &GameService{
		sessions:    make(map[string]*gameSession),
		newDetector: factory,
		repo:        repo,
		levels:      game.Levels(),
	}
}

// Levels returns the full level catalog.
func (s *GameService) Levels() []models.Level {
	return s.levels
}

// SessionInfo is the externally visible session snapshot.
type SessionInfo struct {
	ID      string              `json:"id"`
	State   SessionState        `json:"state"`
	Summary *models.GameSummary `json:"summary,omitempty"`
}

// CreateSession opens a session in LOADING: assets and the detector warm up
// before the menu unlocks via Ack.
func (s *GameService) CreateSession() (*SessionInfo, error) {
	detector, err := s.newDetector()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectorInit, err)
	}

	sess := &gameSession{
		id:       uuid.NewString(),
		state:    StateLoading,
		detector: pose.NewSession(detector),
	}
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Printf("[Game] session created: %s", sess.id)
	return &SessionInfo{ID: sess.id, State: sess.state}, nil
}

// Ack confirms client-side loading finished, moving LOADING to MENU. It is
// also how a RESULT screen returns to the menu.
func (s *GameService) Ack(sessionID string) (*SessionInfo, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.state {
	case StateLoading, StateResult:
		sess.state = StateMenu
		sess.summary = nil
		sess.engine = nil
	default:
		return nil, fmt.Errorf("%w: ack from %s", ErrInvalidState, sess.state)
	}
	return snapshotLocked(sess), nil
}

// StartLevel begins a run of the given level from the menu.
func (s *GameService) StartLevel(sessionID, levelID string) (*SessionInfo, error) {
	level, ok := s.levelByID(levelID)
	if !ok {
		return nil, ErrLevelNotFound
	}

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StateMenu {
		return nil, fmt.Errorf("%w: start from %s", ErrInvalidState, sess.state)
	}
	sess.state = StatePlaying
	sess.engine = game.NewEngine(level)
	sess.epoch++

	log.Printf("[Game] session %s playing level %s (%s)", sess.id, level.ID, level.Name)
	return snapshotLocked(sess), nil
}

// Frame judges one camera frame against the running chart. Detection runs
// outside the session lock so a slow detector call never blocks Exit; the
// epoch check afterwards discards results that arrive after the run ended.
func (s *GameService) Frame(ctx context.Context, sessionID string, req models.FrameRequest) (*game.FrameResult, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.state != StatePlaying {
		sess.mu.Unlock()
		return nil, fmt.Errorf("%w: frame in %s", ErrInvalidState, sess.state)
	}
	epoch := sess.epoch
	detector := sess.detector
	sess.mu.Unlock()

	var landmarks []models.Landmark
	poses, ok, err := detector.DetectForVideo(ctx, req.ImageData, req.TimestampMs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}
	if ok && len(poses) > 0 {
		landmarks = poses[0]
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.state != StatePlaying || sess.epoch != epoch {
		// The run this frame belonged to is gone.
		return nil, fmt.Errorf("%w: frame for finished run", ErrInvalidState)
	}

	result := sess.engine.Step(game.FrameInput{
		Landmarks:   landmarks,
		TimestampMs: req.TimestampMs,
		MediaTime:   req.MediaTime,
		Media:       game.MediaState(req.MediaState),
		At:          time.Now(),
	})

	if result.Finished {
		s.finishLocked(sess)
	}
	return &result, nil
}

// Exit abandons the current run and returns to the menu. Nothing is saved.
func (s *GameService) Exit(sessionID string) (*SessionInfo, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state != StatePlaying && sess.state != StateResult {
		return nil, fmt.Errorf("%w: exit from %s", ErrInvalidState, sess.state)
	}
	sess.state = StateMenu
	sess.engine = nil
	sess.summary = nil
	sess.epoch++
	return snapshotLocked(sess), nil
}

// Session returns the current snapshot of a session.
func (s *GameService) Session(sessionID string) (*SessionInfo, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshotLocked(sess), nil
}

// CloseSession tears a session down entirely, releasing its detector.
func (s *GameService) CloseSession(sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.epoch++
	if err := sess.detector.Close(); err != nil {
		return fmt.Errorf("failed to close detector session: %w", err)
	}
	log.Printf("[Game] session closed: %s", sessionID)
	return nil
}

// finishLocked moves a completed run to RESULT, persists the run and looks
// up the level record for the result screen. Callers hold sess.mu.
func (s *GameService) finishLocked(sess *gameSession) {
	summary := &models.GameSummary{
		LevelID:  sess.engine.Level().ID,
		Score:    sess.engine.Score(),
		MaxCombo: sess.engine.MaxCombo(),
	}
	summary.BestScore = summary.Score
	sess.state = StateResult
	sess.summary = summary

	if s.repo != nil {
		if err := s.repo.SaveRun(uuid.NewString(), *summary, time.Now()); err != nil {
			log.Printf("[Game] failed to save run for session %s: %v", sess.id, err)
		}
		best, err := s.repo.BestForLevel(summary.LevelID)
		if err != nil {
			log.Printf("[Game] failed to load best run for level %s: %v", summary.LevelID, err)
		} else if best.Score > summary.BestScore {
			summary.BestScore = best.Score
		}
	}
	log.Printf("[Game] session %s finished: level=%s score=%d maxCombo=%d",
		sess.id, summary.LevelID, summary.Score, summary.MaxCombo)
}

func (s *GameService) session(id string) (*gameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *GameService) levelByID(id string) (models.Level, bool) {
	for _, l := range s.levels {
		if l.ID == id {
			return l, true
		}
	}
	return models.Level{}, false
}

func snapshotLocked(sess *gameSession) *SessionInfo {
	return &SessionInfo{ID: sess.id, State: sess.state, Summary: sess.summary}
}
