package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"portfolio-cms/internal/domain"
	"portfolio-cms/pkg/github"

	"github.com/google/uuid"
)

type fakeProjects struct {
	mu        sync.Mutex
	items     []domain.Project
	listErr   error
	failTitle map[string]bool
	creates   int
	updates   int
}

func (f *fakeProjects) List(ctx context.Context) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Project, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeProjects) Create(ctx context.Context, p *domain.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTitle[p.Title] {
		return errors.New("insert failed")
	}
	p.ID = uuid.New()
	f.items = append(f.items, *p)
	f.creates++
	return nil
}

func (f *fakeProjects) UpdateSourceFields(ctx context.Context, id uuid.UUID, sf domain.SourceFields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		if f.failTitle[f.items[i].Title] {
			return errors.New("update failed")
		}
		f.items[i].Description = sf.Description
		f.items[i].SourceURL = sf.SourceURL
		f.items[i].LiveURL = sf.LiveURL
		f.updates++
		return nil
	}
	return domain.ErrNotFound
}

func (f *fakeProjects) byTitle(title string) domain.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.items {
		if p.Title == title {
			return p
		}
	}
	return domain.Project{}
}

type fakeLister struct {
	repos    []github.Repository
	err      error
	gotOpts  github.ListOptions
	gotToken string
}

func (f *fakeLister) ListRepositories(ctx context.Context, username, token string, opts github.ListOptions) ([]github.Repository, error) {
	f.gotOpts = opts
	f.gotToken = token
	return f.repos, f.err
}

type fakeRuns struct {
	runs []domain.SyncRun
	err  error
}

func (f *fakeRuns) Save(ctx context.Context, run *domain.SyncRun) error {
	f.runs = append(f.runs, *run)
	return f.err
}

type fakeProfiles struct {
	profile     domain.ResumeProfile
	err         error
	gotProjects bool
}

func (f *fakeProfiles) Load(ctx context.Context, includeProjects bool) (domain.ResumeProfile, error) {
	f.gotProjects = includeProjects
	return f.profile, f.err
}

type fakeRenderer struct {
	outputs [][]byte
	errs    []error
	calls   int
}

func (f *fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	i := f.calls
	f.calls++
	var out []byte
	var err error
	if i < len(f.outputs) {
		out = f.outputs[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return out, err
}

type fakeReadmeSource struct {
	text  string
	err   error
	calls int
}

func (f *fakeReadmeSource) GetReadme(ctx context.Context, owner, repo, token string) (string, error) {
	f.calls++
	return f.text, f.err
}

type memCache struct {
	data   map[string]string
	getErr error
}

func (m *memCache) Get(ctx context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = value
	return nil
}

func strp(s string) *string { return &s }

func repo(name, url string) github.Repository {
	return github.Repository{Name: name, FullName: "octo/" + name, HTMLURL: url, Owner: github.Owner{Login: "octo"}}
}
