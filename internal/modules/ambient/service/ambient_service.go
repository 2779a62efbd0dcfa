package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"focusly/internal/modules/ambient/domain"
	ambientout "focusly/internal/modules/ambient/port/out"
	apperrors "focusly/internal/platform/errors"
)

type AmbientService struct {
	catalog ambientout.Catalog
	player  ambientout.Player
	logger  *slog.Logger

	mu       sync.Mutex
	playback domain.Playback
}

func NewAmbientService(catalog ambientout.Catalog, player ambientout.Player, volume float64, logger *slog.Logger) *AmbientService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AmbientService{catalog: catalog, player: player, logger: logger, playback: domain.NewPlayback(volume)}
}

func (s *AmbientService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan sound catalog: %w", err)
	}
	return categories, nil
}

func (s *AmbientService) Play(ctx context.Context, categoryName, trackRef string) (domain.Playback, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return domain.Playback{}, err
	}
	var category domain.Category
	found := false
	for _, c := range categories {
		if c.Name == categoryName {
			category, found = c, true
			break
		}
	}
	if !found {
		return domain.Playback{}, fmt.Errorf("%w: category %q", apperrors.ErrTrackNotFound, categoryName)
	}
	track, ok := category.ResolveTrack(trackRef)
	if !ok {
		return domain.Playback{}, fmt.Errorf("%w: %q in %s", apperrors.ErrTrackNotFound, trackRef, categoryName)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.playback
	action := s.playback.Play(category.Name, track)
	if err := s.applyLocked(ctx, action, s.catalog.TrackPath(category, track)); err != nil {
		s.playback = prev
		return s.playback, err
	}
	if action == domain.ActionStart {
		s.logger.Info("ambient track started", slog.String("event", "ambient_play"), slog.String("category", category.Name), slog.String("track", track))
	}
	return s.playback, nil
}

func (s *AmbientService) Pause(ctx context.Context) (domain.Playback, error) {
	return s.transition(ctx, (*domain.Playback).Pause)
}

func (s *AmbientService) Resume(ctx context.Context) (domain.Playback, error) {
	return s.transition(ctx, (*domain.Playback).Resume)
}

func (s *AmbientService) Stop(ctx context.Context) (domain.Playback, error) {
	return s.transition(ctx, (*domain.Playback).Stop)
}

// SetVolume takes effect on the next started track.
func (s *AmbientService) SetVolume(_ context.Context, volume float64) domain.Playback {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playback.SetVolume(volume)
	return s.playback
}

func (s *AmbientService) State() domain.Playback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback
}

func (s *AmbientService) transition(ctx context.Context, step func(*domain.Playback) domain.Action) (domain.Playback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.playback
	if err := s.applyLocked(ctx, step(&s.playback), ""); err != nil {
		s.playback = prev
		return s.playback, err
	}
	return s.playback, nil
}

func (s *AmbientService) applyLocked(ctx context.Context, action domain.Action, path string) error {
	var err error
	switch action {
	case domain.ActionStart:
		err = s.player.Start(ctx, path, s.playback.Volume)
	case domain.ActionPause:
		err = s.player.Pause()
	case domain.ActionResume:
		err = s.player.Resume()
	case domain.ActionStop:
		err = s.player.Stop()
	}
	if err != nil {
		s.logger.Warn("ambient player failed", slog.String("event", "ambient_error"), slog.String("error", err.Error()))
		return fmt.Errorf("ambient player: %w", err)
	}
	return nil
}
