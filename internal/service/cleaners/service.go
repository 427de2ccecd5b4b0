package cleaners

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CleanClick-BookingService/internal/domain"
	cleanerRepo "github.com/m04kA/CleanClick-BookingService/internal/infra/storage/cleaner"
	"github.com/m04kA/CleanClick-BookingService/internal/integrations/identity"
	"github.com/m04kA/CleanClick-BookingService/internal/schedule"
	"github.com/m04kA/CleanClick-BookingService/internal/service/cleaners/models"
	"github.com/m04kA/CleanClick-BookingService/pkg/ptr"
)

// Service профили клинеров
type Service struct {
	cleanerRepo    CleanerRepository
	identityClient IdentityClient
	timeProvider   TimeProvider
	logger         Logger
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// NewService identityClient может быть nil, тогда неизвестные клинеры не создаются
func NewService(
	cleanerRepo CleanerRepository,
	identityClient IdentityClient,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if timeProvider == nil {
		timeProvider = wallClock{}
	}
	return &Service{
		cleanerRepo:    cleanerRepo,
		identityClient: identityClient,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// Get возвращает профиль, создавая его со значениями по умолчанию при первом обращении
// если id принадлежит известному аккаунту
func (s *Service) Get(ctx context.Context, id string) (*models.CleanerResponse, error) {
	s.logger.Info("Get: fetching cleaner id=%s", id)

	cleaner, err := s.getOrProvision(ctx, id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainCleaner(cleaner), nil
}

// List возвращает всех клинеров
func (s *Service) List(ctx context.Context) ([]models.CleanerResponse, error) {
	s.logger.Info("List: fetching cleaners")

	list, err := s.cleanerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d cleaners", len(list))
	return models.FromDomainCleanerList(list), nil
}

// Update применяет переданные поля к собственному профилю вызывающего
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateCleanerRequest) (*models.CleanerResponse, error) {
	s.logger.Info("Update: updating cleaner id=%s by caller=%s", id, req.CallerID)

	// 1. Профиль редактирует только владелец
	if req.CallerID == "" || req.CallerID != id {
		s.logger.Warn("Update: caller=%s may not edit cleaner id=%s", req.CallerID, id)
		return nil, ErrAccessDenied
	}

	// 2. Валидируем изменения до обращения к хранилищу
	var blocked []domain.CalendarDate
	if req.BlockedDates != nil {
		blocked = make([]domain.CalendarDate, 0, len(*req.BlockedDates))
		for _, raw := range *req.BlockedDates {
			date, err := domain.ParseDate(raw)
			if err != nil {
				s.logger.Warn("Update: invalid blocked date %q", raw)
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			blocked = append(blocked, date)
		}
	}
	if req.Pricing != nil {
		if err := req.Pricing.Validate(); err != nil {
			s.logger.Warn("Update: invalid pricing: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if req.FrequencyDiscounts != nil && !req.FrequencyDiscounts.Valid() {
		s.logger.Warn("Update: discounts out of range %+v", *req.FrequencyDiscounts)
		return nil, fmt.Errorf("%w: frequency discounts must be between 0 and 100", ErrInvalidInput)
	}

	// 3. Текущий профиль (клинер может сохранить до первого открытия страницы)
	cleaner, err := s.getOrProvision(ctx, id)
	if err != nil {
		return nil, err
	}

	// 4. Применяем изменения
	if req.Phone != nil {
		cleaner.Phone = *req.Phone
	}
	if req.MessengerUsername != nil {
		cleaner.MessengerUsername = *req.MessengerUsername
	}
	if req.Availability != nil {
		cleaner.Availability = req.Availability
	}
	if req.BlockedDates != nil {
		cleaner.BlockedDates = blocked
	}
	if req.Pricing != nil {
		cleaner.Pricing = *req.Pricing
	}
	if req.FrequencyDiscounts != nil {
		cleaner.FrequencyDiscounts = ptr.Ptr(*req.FrequencyDiscounts)
	}
	cleaner.Normalize()
	cleaner.UpdatedAt = s.timeProvider.Now().UTC()

	// 5. Сохраняем
	if err := s.cleanerRepo.Update(ctx, cleaner); err != nil {
		if errors.Is(err, cleanerRepo.ErrCleanerNotFound) {
			s.logger.Warn("Update: cleaner id=%s disappeared during update", id)
			return nil, ErrCleanerNotFound
		}
		s.logger.Error("Update: repository error for cleaner id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated cleaner id=%s", id)
	return models.FromDomainCleaner(cleaner), nil
}

// ListOpenDays дни для выбора, начиная с req.From (сегодня, если пусто)
func (s *Service) ListOpenDays(ctx context.Context, req *models.ListOpenDaysRequest) ([]models.OpenDayResponse, error) {
	s.logger.Info("ListOpenDays: cleaner=%s, from=%s, count=%d", req.CleanerID, req.From, req.Count)

	count := req.Count
	if count == 0 {
		count = domain.DefaultOpenDaysCount
	}
	if count < 0 || count > domain.MaxOpenDaysCount {
		s.logger.Warn("ListOpenDays: count %d out of range", req.Count)
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, domain.MaxOpenDaysCount)
	}

	from := domain.DateOf(s.timeProvider.Now())
	if req.From != "" {
		parsed, err := domain.ParseDate(req.From)
		if err != nil {
			s.logger.Warn("ListOpenDays: invalid from %q", req.From)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		from = parsed
	}

	cleaner, err := s.getOrProvision(ctx, req.CleanerID)
	if err != nil {
		return nil, err
	}

	days := make([]models.OpenDayResponse, 0, count)
	for day := range schedule.NextOpenDays(cleaner, from, count) {
		days = append(days, models.FromScheduleDay(day))
	}

	return days, nil
}

func (s *Service) getOrProvision(ctx context.Context, id string) (*domain.Cleaner, error) {
	if id == "" {
		return nil, ErrCleanerNotFound
	}

	cleaner, err := s.cleanerRepo.GetByID(ctx, id)
	if err == nil {
		return cleaner, nil
	}
	if !errors.Is(err, cleanerRepo.ErrCleanerNotFound) {
		s.logger.Error("getOrProvision: repository error for cleaner id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if s.identityClient == nil {
		s.logger.Warn("getOrProvision: cleaner id=%s not found", id)
		return nil, ErrCleanerNotFound
	}

	user, err := s.identityClient.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) || errors.Is(err, identity.ErrNotConfigured) {
			s.logger.Warn("getOrProvision: no identity for cleaner id=%s", id)
			return nil, ErrCleanerNotFound
		}
		s.logger.Error("getOrProvision: identity lookup failed for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: identity lookup: %v", ErrInternal, err)
	}

	created, err := s.cleanerRepo.Create(ctx, domain.NewCleaner(id, user.DisplayName(), user.Email, s.timeProvider.Now().UTC()))
	if err != nil {
		s.logger.Error("getOrProvision: failed to create cleaner id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("getOrProvision: provisioned cleaner id=%s", id)
	return created, nil
}
