package notification

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Event kinds pushed to /ws listeners.
const (
	EventAttendanceLogged = "attendance.logged"
	EventUserRegistered   = "user.registered"
)

type Event struct {
	Type     string    `json:"type"`
	Username string    `json:"username"`
	Date     string    `json:"date,omitempty"`
	Time     string    `json:"time,omitempty"`
	At       time.Time `json:"at"`
}

type Service interface {
	Publish(event Event) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) Publish(event Event) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return s.m.Broadcast(payload)
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(Event) error { return nil }
