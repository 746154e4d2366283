package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/common/logger"
	"himaya-assistant/internal/common/metrics"
	"himaya-assistant/internal/common/validation"
	"himaya-assistant/internal/eligibility"
	"himaya-assistant/internal/i18n"
	"himaya-assistant/internal/models"

	"github.com/google/uuid"
)

// EligibleSchemes is a user's eligibility check result.
type EligibleSchemes struct {
	User     models.UserSummary   `json:"user"`
	Language string               `json:"language"`
	Count    int                  `json:"eligibleCount"`
	Results  []eligibility.Result `json:"data"`
}

type Service struct {
	repo      Repository
	evaluator *eligibility.Evaluator
	logger    logger.Logger

	// serializes read-modify-write sequences on the repository
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, evaluator *eligibility.Evaluator, log logger.Logger) *Service {
	return &Service{
		repo:      repo,
		evaluator: evaluator,
		logger:    log.WithFields(map[string]interface{}{"component": "users"}),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Register creates a profile. Land and BPL status default to false and land
// area to zero when the registration leaves them out.
func (s *Service) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	phone := strings.TrimSpace(reg.Phone)
	if phone == "" {
		return nil, errors.NewInvalidInputError("Phone number required", "phone")
	}
	if !validation.ValidatePhone(phone) {
		return nil, errors.NewInvalidInputError("Invalid phone number", phone)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, found, err := s.repo.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, errors.NewUserAlreadyExistsError(phone).WithMetadata("user", existing)
	}

	profile := reg.Profile
	if profile.BPL == nil {
		profile.BPL = boolPtr(false)
	}
	if profile.HasLand == nil {
		profile.HasLand = boolPtr(false)
	}
	if profile.LandAcres == nil {
		zero := 0.0
		profile.LandAcres = &zero
	}

	user := &models.User{
		ID:        s.newID(),
		Phone:     phone,
		Name:      reg.Name,
		Language:  i18n.LanguageOr(reg.Language, i18n.DefaultLanguage),
		State:     reg.State,
		District:  reg.District,
		Profile:   profile,
		CreatedAt: s.now(),
	}

	if err := s.repo.Put(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersRegistered.Inc()
	s.logger.Info("user registered", map[string]interface{}{
		"userId":   user.ID,
		"language": user.Language,
	})
	return user, nil
}

// Get returns the profile for phone or a USER_NOT_FOUND error.
func (s *Service) Get(ctx context.Context, phone string) (*models.User, error) {
	user, found, err := s.repo.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewUserNotFoundError(phone)
	}
	return user, nil
}

// Update merges update into the stored profile.
func (s *Service) Update(ctx context.Context, phone string, update models.UserUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.Get(ctx, phone)
	if err != nil {
		return nil, err
	}

	if update.Language != nil {
		lang := i18n.LanguageOr(*update.Language, user.Language)
		update.Language = &lang
	}
	user.Apply(update, s.now())

	if err := s.repo.Put(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", map[string]interface{}{
		"userId": user.ID,
	})
	return user, nil
}

// EligibleSchemes evaluates the stored profile. lang wins over the user's
// language, which wins over the default.
func (s *Service) EligibleSchemes(ctx context.Context, phone, lang string) (*EligibleSchemes, error) {
	user, err := s.Get(ctx, phone)
	if err != nil {
		return nil, err
	}

	language := i18n.LanguageOr(lang, i18n.LanguageOr(user.Language, i18n.DefaultLanguage))
	results := s.evaluator.Evaluate(user.Profile, language)

	metrics.EligibilityChecks.WithLabelValues("user").Inc()
	metrics.EligibleSchemes.Observe(float64(len(results)))

	return &EligibleSchemes{
		User:     user.Summary(),
		Language: language,
		Count:    len(results),
		Results:  results,
	}, nil
}

func boolPtr(v bool) *bool { return &v }
