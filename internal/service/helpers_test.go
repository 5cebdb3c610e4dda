package service

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"keepnote/internal/dto"
	"keepnote/internal/entity"
)

func testLogger() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []dto.ResourceEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	var event dto.ResourceEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Resource+":"+e.Action+":"+e.ResourceId)
	}
	return out
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) GetById(ctx context.Context, id int) (*entity.Note, error) {
	args := m.Called(ctx, id)
	note, _ := args.Get(0).(*entity.Note)
	return note, args.Error(1)
}

func (m *mockNoteRepository) GetAll(ctx context.Context) ([]*entity.Note, error) {
	args := m.Called(ctx)
	notes, _ := args.Get(0).([]*entity.Note)
	return notes, args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return m.Called(ctx, note).Error(0)
}

func (m *mockNoteRepository) DeleteById(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNoteRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
