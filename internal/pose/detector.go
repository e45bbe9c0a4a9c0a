package pose

import (
	"context"
	"errors"
	"sync"

	"github.com/jengzang/shapist-backend-go/internal/models"
)

// ErrSessionClosed is returned when a detector session is used after Close.
var ErrSessionClosed = errors.New("pose: detector session closed")

// Detector is the landmark detection capability the service consumes.
// Detect handles single still images; DetectForVideo handles a stream frame
// together with a monotonically increasing timestamp in milliseconds. Both
// return zero or more 33-point landmark sets, one per detected person.
type Detector interface {
	Detect(ctx context.Context, image string) ([][]models.Landmark, error)
	DetectForVideo(ctx context.Context, frame string, timestampMs float64) ([][]models.Landmark, error)
	Close() error
}

// Session wraps a single detector instance for the lifetime of one analysis
// or game session. A detector handles one call at a time, so every call holds
// the session lock; Close is idempotent and, because it takes the same lock,
// deterministically waits out any in-flight call before disposal.
type Session struct {
	mu          sync.Mutex
	detector    Detector
	closed      bool
	lastVideoTS float64
}

// NewSession takes ownership of the detector. The caller must not use the
// detector directly afterwards.
func NewSession(d Detector) *Session {
	return &Session{detector: d, lastVideoTS: -1}
}

// Detect runs single-image detection.
func (s *Session) Detect(ctx context.Context, image string) ([][]models.Landmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	return s.detector.Detect(ctx, image)
}

// DetectForVideo runs streaming detection. Calls with a timestamp not
// strictly greater than the previous call's are invalid per the detector
// contract and are skipped; ok reports whether detection actually ran.
func (s *Session) DetectForVideo(ctx context.Context, frame string, timestampMs float64) (poses [][]models.Landmark, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false, ErrSessionClosed
	}
	if timestampMs <= s.lastVideoTS {
		return nil, false, nil
	}
	poses, err = s.detector.DetectForVideo(ctx, frame, timestampMs)
	if err != nil {
		return nil, false, err
	}
	s.lastVideoTS = timestampMs
	return poses, true, nil
}

// Close disposes the underlying detector. Safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.detector.Close()
}
