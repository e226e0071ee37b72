package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
	appErrors "github.com/noah-isme/campus-portal-api/pkg/errors"
)

func seedStore() *repository.AcademicRepository {
	return repository.NewAcademicRepository(repository.SeedDataset())
}

func studentAccount(t *testing.T, id string) models.StudentAccount {
	t.Helper()
	u, ok := seedStore().UserByID(id)
	require.True(t, ok)
	return models.StudentAccount{Student: u}
}

func teacherAccount(t *testing.T, id string) models.TeacherAccount {
	t.Helper()
	u, ok := seedStore().UserByID(id)
	require.True(t, ok)
	return models.TeacherAccount{Teacher: u}
}

func requireAppError(t *testing.T, err error, want *appErrors.Error) {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	require.Equal(t, want.Code, appErr.Code)
	require.Equal(t, want.Status, appErr.Status)
}

type fakeAcks struct {
	mu       sync.Mutex
	requests []models.AckRequest
	err      error
}

func (f *fakeAcks) Submit(_ context.Context, req models.AckRequest) (*models.Ack, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	return &models.Ack{
		ID:          uuid.NewString(),
		Kind:        req.Kind,
		ActorID:     req.ActorID,
		SubjectID:   req.SubjectID,
		Status:      models.AckStatusPending,
		Title:       req.Title,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
	}, nil
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}
