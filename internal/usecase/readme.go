package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// ReadmeService serves repository READMEs, cache-aside when a cache is set.
type ReadmeService struct {
	source ReadmeSource
	cache  ReadmeCache
	token  string
	ttl    time.Duration
	logger *slog.Logger
}

func NewReadmeService(source ReadmeSource, cache ReadmeCache, token string, ttl time.Duration, logger *slog.Logger) *ReadmeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReadmeService{source: source, cache: cache, token: token, ttl: ttl, logger: logger.With("component", "readme")}
}

func (s *ReadmeService) Get(ctx context.Context, owner, repo string) (string, error) {
	key := "readme:" + strings.ToLower(owner) + "/" + strings.ToLower(repo)
	if s.cache != nil {
		text, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("readme cache read failed", "key", key, "error", err)
		} else if ok {
			return text, nil
		}
	}

	text, err := s.source.GetReadme(ctx, owner, repo, s.token)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
			s.logger.Warn("readme cache write failed", "key", key, "error", err)
		}
	}
	return text, nil
}
