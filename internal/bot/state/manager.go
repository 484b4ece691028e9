package state

import (
	"context"
	"sync"
)

// Conversation states
const (
	None             = "none"
	WaitingForWater  = "waiting_for_water"
	WaitingForWeight = "waiting_for_weight"
)

// StateManager remembers which prompt a chat is answering.
type StateManager interface {
	SetUserState(ctx context.Context, chatID int64, state string)
	GetUserState(ctx context.Context, chatID int64) string
	ClearUserState(ctx context.Context, chatID int64)
}

// Manager keeps conversation states in memory
type Manager struct {
	userStates map[int64]string
	mu         sync.RWMutex
}

// NewManager creates a new state manager
func NewManager() *Manager {
	return &Manager{
		userStates: make(map[int64]string),
	}
}

// SetUserState sets the state for a chat
func (m *Manager) SetUserState(_ context.Context, chatID int64, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if state == None {
		delete(m.userStates, chatID)
		return
	}
	m.userStates[chatID] = state
}

// GetUserState gets the state for a chat
func (m *Manager) GetUserState(_ context.Context, chatID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, exists := m.userStates[chatID]
	if !exists {
		return None
	}
	return state
}

// ClearUserState clears the state for a chat
func (m *Manager) ClearUserState(_ context.Context, chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.userStates, chatID)
}
