package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/citysphere/citysphere-api/internal/api/metrics"
	"github.com/citysphere/citysphere-api/internal/core/ports"
)

// AnswerCache abstracts the Redis-backed cache for chat answers.
type AnswerCache interface {
	Get(ctx context.Context, prompt string) (string, bool, error)
	Set(ctx context.Context, prompt, answer string) error
}

// LabelDeduper abstracts the Redis-backed suppression of repeat labeling of
// the same image URL.
type LabelDeduper interface {
	IsDuplicate(ctx context.Context, imageURL string) (bool, error)
	Mark(ctx context.Context, imageURL string) error
}

// AIService fronts the generative-AI provider with caching, metrics, and the
// async labeling pipeline.
type AIService struct {
	provider  ports.AIProvider
	imageRepo ports.ImageMetaRepository
	cache     AnswerCache
	dedup     LabelDeduper
	log       zerolog.Logger
}

func NewAIService(
	provider ports.AIProvider,
	imageRepo ports.ImageMetaRepository,
	cache AnswerCache,
	dedup LabelDeduper,
	log zerolog.Logger,
) *AIService {
	return &AIService{
		provider:  provider,
		imageRepo: imageRepo,
		cache:     cache,
		dedup:     dedup,
		log:       log,
	}
}

// Generate answers a chat prompt, serving repeated prompts from the cache.
func (s *AIService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.cache != nil {
		answer, hit, err := s.cache.Get(ctx, prompt)
		if err != nil {
			s.log.Warn().Err(err).Msg("answer cache lookup failed, calling provider")
		} else if hit {
			metrics.AIRequestsTotal.WithLabelValues("generate", "cache_hit").Inc()
			return answer, nil
		}
	}

	start := time.Now()
	answer, err := s.provider.Generate(ctx, prompt)
	metrics.AIRequestDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("generate", "error").Inc()
		return "", fmt.Errorf("generate: %w", err)
	}
	metrics.AIRequestsTotal.WithLabelValues("generate", "ok").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, prompt, answer); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache answer")
		}
	}
	return answer, nil
}

// Transcribe converts an uploaded audio file to text. No caching: voice
// reviews are one-shot.
func (s *AIService) Transcribe(ctx context.Context, audioURL, mimeType string) (string, error) {
	start := time.Now()
	text, err := s.provider.Transcribe(ctx, audioURL, mimeType)
	metrics.AIRequestDuration.WithLabelValues("transcribe").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("transcribe", "error").Inc()
		return "", fmt.Errorf("transcribe: %w", err)
	}
	metrics.AIRequestsTotal.WithLabelValues("transcribe", "ok").Inc()
	return text, nil
}

// ProcessLabelJob labels one image and patches its stored metadata. Invoked
// by the dispatcher workers.
func (s *AIService) ProcessLabelJob(ctx context.Context, job ports.LabelJob) error {
	// Skip images that were labeled recently.
	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, job.ImageURL)
		if err != nil {
			s.log.Warn().Err(err).Str("image_id", job.ImageID).Msg("dedup check failed, labeling anyway")
		} else if isDup {
			metrics.LabelJobsTotal.WithLabelValues("dedup_skip").Inc()
			s.log.Debug().Str("image_id", job.ImageID).Msg("duplicate labeling job skipped")
			return nil
		}
	}

	start := time.Now()
	labels, err := s.provider.LabelImage(ctx, job.ImageURL)
	metrics.AIRequestDuration.WithLabelValues("label").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AIRequestsTotal.WithLabelValues("label", "error").Inc()
		metrics.LabelJobsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("label image %s: %w", job.ImageID, err)
	}
	metrics.AIRequestsTotal.WithLabelValues("label", "ok").Inc()

	if err := s.imageRepo.SetLabels(ctx, job.ImageID, labels); err != nil {
		metrics.LabelJobsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("store labels for %s: %w", job.ImageID, err)
	}

	// Mark after the write so a failed job can be retried by a later upload.
	if s.dedup != nil {
		if err := s.dedup.Mark(ctx, job.ImageURL); err != nil {
			s.log.Warn().Err(err).Str("image_id", job.ImageID).Msg("failed to set dedup key")
		}
	}

	metrics.LabelJobsTotal.WithLabelValues("ok").Inc()
	s.log.Info().Str("image_id", job.ImageID).Int("labels", len(labels)).Msg("image labeled")
	return nil
}
