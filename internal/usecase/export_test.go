package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/resume"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportProfile() domain.ResumeProfile {
	return domain.ResumeProfile{
		Personal: domain.PersonalInfo{Name: "Jane Doe", Title: "Developer", Email: "jane@example.com", Summary: "Builds things."},
		Experience: []domain.Experience{
			{Title: "Support Agent", Company: "Helpdesk", StartDate: domain.MustParseDate("2020-01-01")},
			{Title: "Backend Developer", Company: "Acme", StartDate: domain.MustParseDate("2020-01-01"), IsCurrent: true},
		},
		Skills: []domain.Skill{{Name: "Go", Category: "Languages"}},
	}
}

func newExport(profiles ProfileLoader, renderer Renderer) *ExportService {
	svc := NewExportService(profiles, renderer, resume.Variants([]resume.RoleVariant{
		{ID: "backend", Title: "Backend Engineer"},
	}), nil)
	svc.backoff = time.Millisecond
	return svc
}

func TestExportService_HTML(t *testing.T) {
	profiles := &fakeProfiles{profile: exportProfile()}
	svc := newExport(profiles, nil)

	res, err := svc.HTML(context.Background(), ExportRequest{IncludeProjects: true})
	require.NoError(t, err)
	assert.True(t, profiles.gotProjects)
	assert.Nil(t, res.Variant)
	assert.True(t, res.Readiness.Ready)
	assert.Contains(t, res.HTML, "Jane Doe")
	assert.Contains(t, res.HTML, "Developer")
}

func TestExportService_HTMLVariant(t *testing.T) {
	svc := newExport(&fakeProfiles{profile: exportProfile()}, nil)

	res, err := svc.HTML(context.Background(), ExportRequest{VariantID: "backend"})
	require.NoError(t, err)
	require.NotNil(t, res.Variant)
	assert.Equal(t, "backend", res.Variant.ID)
	assert.Contains(t, res.HTML, "Backend Engineer")
}

func TestExportService_UnknownVariant(t *testing.T) {
	profiles := &fakeProfiles{profile: exportProfile()}
	_, err := newExport(profiles, nil).HTML(context.Background(), ExportRequest{VariantID: "astronaut"})
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestExportService_LoadFailure(t *testing.T) {
	_, err := newExport(&fakeProfiles{err: errors.New("db down")}, nil).HTML(context.Background(), ExportRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestExportService_RenderProfileReportsReadiness(t *testing.T) {
	res, err := newExport(nil, nil).RenderProfile(domain.ResumeProfile{}, "")
	require.NoError(t, err)
	assert.False(t, res.Readiness.Ready)
	assert.Contains(t, res.Readiness.Missing, "personal_info.name")
	assert.Contains(t, res.HTML, "<!DOCTYPE html>")
}

func TestExportService_PDFRetriesUntilValid(t *testing.T) {
	renderer := &fakeRenderer{
		outputs: [][]byte{nil, []byte("not a pdf"), []byte("%PDF-1.7 ...")},
		errs:    []error{errors.New("chrome crashed"), nil, nil},
	}
	pdf, res, err := newExport(&fakeProfiles{profile: exportProfile()}, renderer).PDF(context.Background(), ExportRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, renderer.calls)
	assert.Equal(t, "%PDF-1.7 ...", string(pdf))
	assert.NotEmpty(t, res.HTML)
}

func TestExportService_PDFGivesUp(t *testing.T) {
	renderer := &fakeRenderer{errs: []error{errors.New("a"), errors.New("b"), errors.New("c")}}
	_, res, err := newExport(&fakeProfiles{profile: exportProfile()}, renderer).PDF(context.Background(), ExportRequest{})
	require.Error(t, err)
	assert.Equal(t, 3, renderer.calls)
	assert.NotNil(t, res, "html result is still returned")
}

func TestExportService_PDFWithoutRenderer(t *testing.T) {
	_, _, err := newExport(&fakeProfiles{profile: exportProfile()}, nil).PDF(context.Background(), ExportRequest{})
	assert.True(t, errors.Is(err, ErrNoRenderer))
}

func TestExportService_PDFHonoursContext(t *testing.T) {
	svc := newExport(&fakeProfiles{profile: exportProfile()}, &fakeRenderer{errs: []error{errors.New("a"), errors.New("b"), errors.New("c")}})
	svc.backoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.ToPDF(ctx, "<html></html>")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCheckProfile(t *testing.T) {
	r := CheckProfile(domain.ResumeProfile{Personal: domain.PersonalInfo{Name: "Jane", Phone: "123"}})
	assert.False(t, r.Ready)
	assert.Equal(t, []string{"personal_info.title", "personal_info.summary", "experience", "skills"}, r.Missing)

	assert.True(t, CheckProfile(exportProfile()).Ready)
}
