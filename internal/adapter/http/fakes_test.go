package http

import (
	"context"
	"sync"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/resume"
	"portfolio-cms/internal/usecase"

	"github.com/google/uuid"
)

// memTable is an in-memory CRUD[T] keyed by the id accessor.
type memTable[T any] struct {
	mu    sync.Mutex
	rows  []T
	idOf  func(*T) *uuid.UUID
	lists int
}

func newMemTable[T any](idOf func(*T) *uuid.UUID, rows ...T) *memTable[T] {
	return &memTable[T]{rows: rows, idOf: idOf}
}

func (m *memTable[T]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	out := make([]T, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memTable[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if *m.idOf(&m.rows[i]) == id {
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memTable[T]) Create(ctx context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	*m.idOf(item) = uuid.New()
	m.rows = append(m.rows, *item)
	return nil
}

func (m *memTable[T]) Update(ctx context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if *m.idOf(&m.rows[i]) == *m.idOf(item) {
			m.rows[i] = *item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memTable[T]) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if *m.idOf(&m.rows[i]) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memPersonal struct {
	p *domain.PersonalInfo
}

func (m *memPersonal) Get(ctx context.Context) (*domain.PersonalInfo, error) {
	if m.p == nil {
		return nil, domain.ErrNotFound
	}
	return m.p, nil
}

func (m *memPersonal) Save(ctx context.Context, p *domain.PersonalInfo) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.p = p
	return nil
}

type memAbout struct {
	a *domain.AboutContent
}

func (m *memAbout) Get(ctx context.Context) (*domain.AboutContent, error) {
	if m.a == nil {
		return nil, domain.ErrNotFound
	}
	return m.a, nil
}

func (m *memAbout) Save(ctx context.Context, a *domain.AboutContent) error {
	m.a = a
	return nil
}

type memSkills struct {
	skills []domain.Skill
}

func (m *memSkills) List(ctx context.Context) ([]domain.Skill, error) { return m.skills, nil }

func (m *memSkills) Upsert(ctx context.Context, s *domain.Skill) error {
	for i := range m.skills {
		if m.skills[i].Name == s.Name {
			s.ID = m.skills[i].ID
			m.skills[i] = *s
			return nil
		}
	}
	s.ID = uuid.New()
	m.skills = append(m.skills, *s)
	return nil
}

func (m *memSkills) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range m.skills {
		if m.skills[i].ID == id {
			m.skills = append(m.skills[:i], m.skills[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memRuns struct {
	runs      []domain.SyncRun
	lastLimit int
}

func (m *memRuns) ListRecent(ctx context.Context, limit int) ([]domain.SyncRun, error) {
	m.lastLimit = limit
	return m.runs, nil
}

type fakeSyncer struct {
	got usecase.SyncRequest
}

func (f *fakeSyncer) Sync(ctx context.Context, req usecase.SyncRequest) usecase.SyncResult {
	f.got = req
	return usecase.SyncResult{Success: true, Synced: 2, Created: 1, Updated: 1, Errors: []string{}}
}

type fakeExporter struct {
	err error
	pdf []byte
	got usecase.ExportRequest
}

func (f *fakeExporter) Variants() []resume.RoleVariant { return resume.DefaultVariants() }

func (f *fakeExporter) HTML(ctx context.Context, req usecase.ExportRequest) (*usecase.ExportResult, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &usecase.ExportResult{
		HTML:      "<!DOCTYPE html><html><body>resume</body></html>",
		Readiness: usecase.Readiness{Missing: []string{"personal_info.summary"}},
	}, nil
}

func (f *fakeExporter) PDF(ctx context.Context, req usecase.ExportRequest) ([]byte, *usecase.ExportResult, error) {
	res, err := f.HTML(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	return f.pdf, res, nil
}

type fakeReadme struct {
	text string
	err  error
}

func (f *fakeReadme) Get(ctx context.Context, owner, repo string) (string, error) {
	return f.text, f.err
}

type fakeImporter struct {
	got domain.ResumeProfile
}

func (f *fakeImporter) Import(ctx context.Context, p domain.ResumeProfile) (usecase.ImportResult, error) {
	f.got = p
	return usecase.ImportResult{Personal: true, Skills: len(p.Skills)}, nil
}
