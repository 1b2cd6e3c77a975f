package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moto-rentals-backend/internal/domain"
	"moto-rentals-backend/internal/filter"
	"moto-rentals-backend/internal/logger"
	"moto-rentals-backend/internal/repository"
	"moto-rentals-backend/internal/utils"
)

var ErrInvalidURL = errors.New("invalid url")

type sessionService struct {
	sessionRepo repository.SessionRepository
	catalog     CatalogService
}

func NewSessionService(sessionRepo repository.SessionRepository, catalog CatalogService) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		catalog:     catalog,
	}
}

// Start opens a session for a visitor landing on rawURL. A show-filters flag
// in the URL opens the mobile filter drawer and is consumed: the returned view
// carries the cleaned URL to replace in the address bar.
func (s *sessionService) Start(ctx context.Context, rawURL string) (*SessionView, error) {
	logger.EnterMethod("sessionService.Start", "url", rawURL)

	open, cleaned, err := utils.ConsumeShowFilters(rawURL)
	if err != nil {
		logger.ExitMethodWithError("sessionService.Start", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	panel := domain.DefaultPanelState()
	panel.MobileFiltersOpen = open
	session := &domain.Session{
		Filters: s.catalog.DefaultState(ctx),
		Panel:   panel,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		logger.ExitMethodWithError("sessionService.Start", err)
		return nil, err
	}

	view, err := s.view(ctx, session)
	if err != nil {
		logger.ExitMethodWithError("sessionService.Start", err)
		return nil, err
	}
	if open {
		view.ReplaceURL = cleaned
	}

	logger.ExitMethod("sessionService.Start", "sessionID", session.ID, "mobileFiltersOpen", open)
	return view, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*SessionView, error) {
	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *sessionService) End(ctx context.Context, id string) error {
	logger.EnterMethod("sessionService.End", "sessionID", id)
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		logger.ExitMethodWithError("sessionService.End", err, "sessionID", id)
		return err
	}
	logger.WithSession(id).Info("Session ended")
	logger.ExitMethod("sessionService.End", "sessionID", id)
	return nil
}

func (s *sessionService) SetField(ctx context.Context, id string, key domain.FilterKey, value any) (*SessionView, error) {
	logger.EnterMethod("sessionService.SetField", "sessionID", id, "key", key, "value", value)

	opts, err := s.catalog.Options(ctx)
	if err != nil {
		logger.ExitMethodWithError("sessionService.SetField", err)
		return nil, err
	}
	view, err := s.update(ctx, id, func(session *domain.Session) error {
		next, err := filter.SetField(session.Filters, opts.PriceBounds, key, value)
		if err != nil {
			return err
		}
		session.Filters = next
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("sessionService.SetField", err, "sessionID", id)
		return nil, err
	}

	logger.ExitMethod("sessionService.SetField", "sessionID", id, "visible", len(view.VisibleVehicles))
	return view, nil
}

func (s *sessionService) ToggleArrayMember(ctx context.Context, id string, key domain.FilterKey, value string) (*SessionView, error) {
	logger.EnterMethod("sessionService.ToggleArrayMember", "sessionID", id, "key", key, "value", value)

	view, err := s.update(ctx, id, func(session *domain.Session) error {
		next, err := filter.ToggleArrayMember(session.Filters, key, value)
		if err != nil {
			return err
		}
		session.Filters = next
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("sessionService.ToggleArrayMember", err, "sessionID", id)
		return nil, err
	}

	logger.ExitMethod("sessionService.ToggleArrayMember", "sessionID", id, "visible", len(view.VisibleVehicles))
	return view, nil
}

func (s *sessionService) Reset(ctx context.Context, id string) (*SessionView, error) {
	logger.EnterMethod("sessionService.Reset", "sessionID", id)

	defaults := s.catalog.DefaultState(ctx)
	view, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Filters = defaults.Clone()
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("sessionService.Reset", err, "sessionID", id)
		return nil, err
	}

	logger.ExitMethod("sessionService.Reset", "sessionID", id)
	return view, nil
}

// SelectVehicle sets the vehicle shown in the detail overlay. A nil vehicleID
// closes the overlay.
func (s *sessionService) SelectVehicle(ctx context.Context, id string, vehicleID *int32) (*SessionView, error) {
	logger.EnterMethod("sessionService.SelectVehicle", "sessionID", id)

	if vehicleID != nil {
		if _, err := s.catalog.GetVehicle(ctx, *vehicleID); err != nil {
			logger.ExitMethodWithError("sessionService.SelectVehicle", err, "vehicleID", *vehicleID)
			return nil, err
		}
	}
	view, err := s.update(ctx, id, func(session *domain.Session) error {
		session.SelectedVehicleID = vehicleID
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("sessionService.SelectVehicle", err, "sessionID", id)
		return nil, err
	}

	logger.ExitMethod("sessionService.SelectVehicle", "sessionID", id)
	return view, nil
}

func (s *sessionService) ToggleFiltersCollapsed(ctx context.Context, id string) (*SessionView, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		session.Panel.FiltersCollapsed = !session.Panel.FiltersCollapsed
		return nil
	})
}

func (s *sessionService) ToggleNavCollapsed(ctx context.Context, id string) (*SessionView, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		session.Panel.NavCollapsed = !session.Panel.NavCollapsed
		return nil
	})
}

func (s *sessionService) ToggleSection(ctx context.Context, id string, section domain.SectionID) (*SessionView, error) {
	if !section.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSection, section)
	}
	return s.update(ctx, id, func(session *domain.Session) error {
		session.Panel = session.Panel.ToggleSection(section)
		return nil
	})
}

// SetMobileFiltersOpen opens or closes the filter drawer. Closing strips the
// show-filters flag from currentURL so a reload does not reopen it.
func (s *sessionService) SetMobileFiltersOpen(ctx context.Context, id string, open bool, currentURL string) (*SessionView, error) {
	logger.EnterMethod("sessionService.SetMobileFiltersOpen", "sessionID", id, "open", open)

	var cleaned string
	if !open && currentURL != "" {
		var err error
		cleaned, err = utils.StripShowFilters(currentURL)
		if err != nil {
			logger.ExitMethodWithError("sessionService.SetMobileFiltersOpen", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}
	}

	view, err := s.update(ctx, id, func(session *domain.Session) error {
		session.Panel.MobileFiltersOpen = open
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("sessionService.SetMobileFiltersOpen", err, "sessionID", id)
		return nil, err
	}
	view.ReplaceURL = cleaned

	logger.ExitMethod("sessionService.SetMobileFiltersOpen", "sessionID", id)
	return view, nil
}

// EvictIdle drops sessions that have not been touched for idleFor.
func (s *sessionService) EvictIdle(ctx context.Context, idleFor time.Duration) (int, error) {
	cutoff := time.Now().Add(-idleFor)
	n, err := s.sessionRepo.DeleteIdleSince(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to evict idle sessions: %w", err)
	}
	return n, nil
}

func (s *sessionService) update(ctx context.Context, id string, fn func(*domain.Session) error) (*SessionView, error) {
	session, err := s.sessionRepo.Update(ctx, id, fn)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, session)
}

func (s *sessionService) view(ctx context.Context, session *domain.Session) (*SessionView, error) {
	opts, err := s.catalog.Options(ctx)
	if err != nil {
		return nil, err
	}
	visible, err := s.catalog.Search(ctx, session.Filters)
	if err != nil {
		return nil, err
	}

	view := &SessionView{
		ID:              session.ID,
		Filters:         session.Filters,
		Options:         opts,
		Panel:           session.Panel,
		VisibleVehicles: visible,
	}
	if session.SelectedVehicleID != nil {
		// A selection that no longer resolves renders as nothing.
		if v, err := s.catalog.GetVehicle(ctx, *session.SelectedVehicleID); err == nil {
			view.SelectedVehicle = v
		}
	}
	return view, nil
}
