// Package store keeps medication review sessions in memory. A session
// holds one medication list and one patient profile so a clinician can
// build up a review across requests, export it, and re-import it later.
package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ntufar/meps/entities"
	"github.com/ntufar/meps/metrics"
)

// Session is one medication review in progress.
type Session struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Medications []entities.Medication `json:"medications"`
	Patient     entities.PatientInfo  `json:"patient"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// SessionStore is a thread-safe in-memory session registry.
type SessionStore struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	maxSessions int
	maxMeds     int
}

// NewSessionStore creates a session store with the given capacity limits.
func NewSessionStore(maxSessions, maxMedicationsPerList int) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
		maxMeds:     maxMedicationsPerList,
	}
}

// Create starts a new session and returns a copy of it.
func (s *SessionStore) Create(name string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxSessions {
		return Session{}, fmt.Errorf("session limit reached: %d", s.maxSessions)
	}

	now := time.Now()
	session := &Session{
		ID:          uuid.NewString(),
		Name:        name,
		Medications: []entities.Medication{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.sessions[session.ID] = session
	metrics.ActiveSessions.Set(float64(len(s.sessions)))

	return *session, nil
}

// Get returns a copy of the session with the given ID.
func (s *SessionStore) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return copySession(session), true
}

// List returns copies of every session.
func (s *SessionStore) List() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, copySession(session))
	}
	return sessions
}

// Delete removes a session. Returns false when the ID is unknown.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return true
}

// AddMedication appends a medication to the session's list. Duplicate
// names (case-insensitive) are rejected.
func (s *SessionStore) AddMedication(id string, medication entities.Medication) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("session not found: %s", id)
	}

	if len(session.Medications) >= s.maxMeds {
		return Session{}, fmt.Errorf("medication limit reached: %d", s.maxMeds)
	}

	for _, existing := range session.Medications {
		if strings.EqualFold(existing.Name, medication.Name) {
			return Session{}, fmt.Errorf("medication already in session: %s", medication.Name)
		}
	}

	if medication.ID == "" {
		medication.ID = uuid.NewString()
	}
	session.Medications = append(session.Medications, medication)
	session.UpdatedAt = time.Now()

	return copySession(session), nil
}

// RemoveMedication removes a medication by its entry ID.
func (s *SessionStore) RemoveMedication(id, medicationID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("session not found: %s", id)
	}

	for i, medication := range session.Medications {
		if medication.ID == medicationID {
			session.Medications = append(session.Medications[:i], session.Medications[i+1:]...)
			session.UpdatedAt = time.Now()
			return copySession(session), nil
		}
	}

	return Session{}, fmt.Errorf("medication not found in session: %s", medicationID)
}

// SetPatient replaces the session's patient profile.
func (s *SessionStore) SetPatient(id string, patient entities.PatientInfo) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, fmt.Errorf("session not found: %s", id)
	}

	session.Patient = patient
	session.UpdatedAt = time.Now()
	return copySession(session), nil
}

// Export serializes a session to JSON.
func (s *SessionStore) Export(id string) ([]byte, error) {
	session, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	return json.MarshalIndent(session, "", "  ")
}

// Import creates a session from exported JSON. The session gets a fresh
// ID so imports never collide with live sessions.
func (s *SessionStore) Import(data []byte) (Session, error) {
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("invalid session data: %w", err)
	}

	if len(session.Medications) > s.maxMeds {
		return Session{}, fmt.Errorf("medication limit reached: %d", s.maxMeds)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxSessions {
		return Session{}, fmt.Errorf("session limit reached: %d", s.maxSessions)
	}

	session.ID = uuid.NewString()
	if session.Medications == nil {
		session.Medications = []entities.Medication{}
	}
	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	stored := session
	s.sessions[stored.ID] = &stored
	metrics.ActiveSessions.Set(float64(len(s.sessions)))

	return copySession(&stored), nil
}

// Count returns the number of live sessions.
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// copySession deep-copies the medication list so callers cannot mutate
// stored state through the returned value.
func copySession(session *Session) Session {
	out := *session
	out.Medications = make([]entities.Medication, len(session.Medications))
	copy(out.Medications, session.Medications)
	out.Patient.Allergies = append([]string(nil), session.Patient.Allergies...)
	out.Patient.MedicalConditions = append([]string(nil), session.Patient.MedicalConditions...)
	return out
}
