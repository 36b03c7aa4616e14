package remote

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/sample"
	"github.com/toazbenj/sembas-go/sembaserr"
)

var _ classifier.Classifier = (*Session)(nil)

// Phase is the lifecycle state of a Session's request cycle.
type Phase int

const (
	// Messaging is the idle state: no request in flight, a phase label may
	// be announced before the next Classify.
	Messaging Phase = iota
	// Requesting means a classify request is outstanding.
	Requesting
	// Incomplete means the last request ended without a valid class byte
	// (e.g. the client sent a control message instead); only
	// ContinueRequest is permitted until it resolves.
	Incomplete
)

func (p Phase) String() string {
	switch p {
	case Messaging:
		return "Messaging"
	case Requesting:
		return "Requesting"
	case Incomplete:
		return "Incomplete"
	default:
		return "Unknown"
	}
}

// Session wraps a Classifier with phase labeling and control-message
// support, so a driver can announce what stage of exploration is about to
// query the remote SUT (e.g. "GLOBAL_SEARCH", "SURFACE_SEARCH",
// "BOUNDARY_EXPL") and recover from a client sending "CONT" instead of an
// immediate class byte.
type Session struct {
	c     *Classifier
	phase Phase
	log   *slog.Logger
}

// NewSession wraps c in a phase-aware Session. A nil log falls back to
// slog.Default().
func NewSession(c *Classifier, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{c: c, phase: Messaging, log: log}
}

// Phase returns the session's current state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Announce writes an ASCII phase label line ahead of the next Classify
// call. Valid only while Messaging.
func (s *Session) Announce(label string) error {
	if s.phase != Messaging {
		return fmt.Errorf("remote: Announce called in phase %s, must be Messaging", s.phase)
	}
	s.log.Info("remote: announcing phase", "label", label)
	_, err := fmt.Fprintf(s.c.conn, "%s\n", label)
	return err
}

// Classify performs one classify exchange. When the response byte cannot
// be interpreted it returns the error and transitions to Incomplete, so the
// caller can recover via ContinueRequest.
func (s *Session) Classify(p geometry.Vector) (sample.Sample, error) {
	if s.phase == Incomplete {
		return nil, fmt.Errorf("remote: Classify called in Incomplete phase; call ContinueRequest")
	}

	s.phase = Requesting
	result, err := s.c.Classify(p)
	if err != nil {
		if sembaserr.IsInvalidClassifierResponse(err) {
			s.phase = Incomplete
			s.log.Warn("remote: classify response was not a valid class byte", "error", err)
		}
		return nil, err
	}

	s.phase = Messaging
	return result, nil
}

// ContinueRequest retries a classify exchange for p after an Incomplete
// phase, without re-announcing any phase label. Valid only while
// Incomplete.
func (s *Session) ContinueRequest(p geometry.Vector) (sample.Sample, error) {
	if s.phase != Incomplete {
		return nil, fmt.Errorf("remote: ContinueRequest called outside Incomplete phase")
	}

	result, err := s.c.Classify(p)
	if err != nil {
		if sembaserr.IsInvalidClassifierResponse(err) {
			return nil, err
		}
		return nil, err
	}

	s.phase = Messaging
	return result, nil
}

// ReceiveControl reads one newline-terminated ASCII control message from
// the client (e.g. "CONT"), independent of the classify exchange.
func (s *Session) ReceiveControl() (string, error) {
	line, err := s.c.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}

// Close tears down the underlying Classifier connection.
func (s *Session) Close() error {
	return s.c.Close()
}
