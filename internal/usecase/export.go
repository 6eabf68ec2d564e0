package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/metrics"
	"portfolio-cms/internal/resume"
)

var (
	ErrUnknownVariant = errors.New("unknown role variant")
	ErrNoRenderer     = errors.New("pdf renderer not configured")
)

const pdfAttempts = 3

// ExportRequest selects what to generate. An empty VariantID means the
// default ATS layout.
type ExportRequest struct {
	VariantID       string
	IncludeProjects bool
}

type ExportResult struct {
	HTML      string
	Variant   *resume.RoleVariant
	Readiness Readiness
}

// ExportService produces resume documents from the stored profile.
type ExportService struct {
	profiles ProfileLoader
	renderer Renderer
	variants []resume.RoleVariant
	logger   *slog.Logger
	backoff  time.Duration
}

func NewExportService(profiles ProfileLoader, renderer Renderer, variants []resume.RoleVariant, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	if variants == nil {
		variants = resume.DefaultVariants()
	}
	return &ExportService{
		profiles: profiles,
		renderer: renderer,
		variants: variants,
		logger:   logger.With("component", "export"),
		backoff:  time.Second,
	}
}

func (s *ExportService) Variants() []resume.RoleVariant {
	return s.variants
}

// HTML loads the profile and renders it.
func (s *ExportService) HTML(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	variant, err := s.lookup(req.VariantID)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Load(ctx, req.IncludeProjects)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return s.render(p, variant), nil
}

// RenderProfile renders an already assembled profile, e.g. one read from a file.
func (s *ExportService) RenderProfile(p domain.ResumeProfile, variantID string) (*ExportResult, error) {
	variant, err := s.lookup(variantID)
	if err != nil {
		return nil, err
	}
	return s.render(p, variant), nil
}

// PDF renders the HTML document to PDF, retrying with exponential backoff
// and rejecting output without a PDF signature.
func (s *ExportService) PDF(ctx context.Context, req ExportRequest) ([]byte, *ExportResult, error) {
	res, err := s.HTML(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	pdf, err := s.ToPDF(ctx, res.HTML)
	if err != nil {
		return nil, res, err
	}
	return pdf, res, nil
}

func (s *ExportService) ToPDF(ctx context.Context, html string) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrNoRenderer
	}
	var renderErr error
	for i := 0; i < pdfAttempts; i++ {
		pdf, err := s.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			if len(pdf) > 0 && strings.HasPrefix(string(pdf), "%PDF") {
				metrics.PDFRenders.WithLabelValues("success").Inc()
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		renderErr = err
		metrics.PDFRenders.WithLabelValues("failure").Inc()
		s.logger.Warn("pdf render attempt failed", "attempt", i+1, "error", err)
		if i < pdfAttempts-1 {
			select {
			case <-time.After(s.backoff * time.Duration(1<<i)):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("pdf rendering failed after %d attempts: %w", pdfAttempts, renderErr)
}

func (s *ExportService) lookup(id string) (*resume.RoleVariant, error) {
	if strings.TrimSpace(id) == "" {
		return nil, nil
	}
	v, ok := resume.FindVariant(s.variants, id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}
	return &v, nil
}

func (s *ExportService) render(p domain.ResumeProfile, variant *resume.RoleVariant) *ExportResult {
	res := &ExportResult{Variant: variant, Readiness: CheckProfile(p)}
	if variant != nil {
		res.HTML = resume.GenerateVariant(p, *variant)
		metrics.ResumesGenerated.WithLabelValues("variant").Inc()
	} else {
		res.HTML = resume.Generate(p)
		metrics.ResumesGenerated.WithLabelValues("ats").Inc()
	}
	if !res.Readiness.Ready {
		s.logger.Info("resume generated from incomplete profile", "missing", res.Readiness.Missing)
	}
	return res
}
