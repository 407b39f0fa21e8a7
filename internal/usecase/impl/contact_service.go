package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"atelier/config"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/infra/metrics"
	"atelier/internal/usecase"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contacts      repository.ContactRepository
	notifier      service.LeadNotifier
	locales       usecase.LocaleResolver
	metrics       *metrics.Metrics
	notifyTimeout time.Duration
	logger        *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	Contacts repository.ContactRepository
	Notifier service.LeadNotifier
	Locales  usecase.LocaleResolver
	Metrics  *metrics.Metrics
	Config   *config.Config
	Logger   *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contacts:      params.Contacts,
		notifier:      params.Notifier,
		locales:       params.Locales,
		metrics:       params.Metrics,
		notifyTimeout: params.Config.Notification.Timeout,
		logger:        params.Logger,
	}
}

func (s *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Submit stores the lead first; delivery to the sales inbox is best-effort and
// never fails the submission.
func (s *contactService) Submit(ctx context.Context, input *usecase.ContactInput) (*entity.ContactSubmission, error) {
	locale, ok := s.locales.Lookup(strings.ToLower(strings.TrimSpace(input.Locale)))
	if !ok {
		locale = s.locales.Default()
	}

	submission := &entity.ContactSubmission{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:    strings.TrimSpace(input.Phone),
		Company:  strings.TrimSpace(input.Company),
		Subject:  strings.TrimSpace(input.Subject),
		Message:  strings.TrimSpace(input.Message),
		Locale:   locale.Tag,
		Language: detectLanguage(input.Message),
		RemoteIP: input.RemoteIP,
	}

	if submission.Name == "" || submission.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and message must not be blank")
	}

	if err := s.contacts.Create(ctx, submission); err != nil {
		return nil, err
	}

	s.log(ctx).Info("Contact submission stored",
		slog.String("lead_id", submission.ID.String()),
		slog.String("locale", submission.Locale),
		slog.String("language", submission.Language),
	)

	s.notify(ctx, submission)

	return submission, nil
}

func (s *contactService) notify(ctx context.Context, submission *entity.ContactSubmission) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	err := s.notifier.NotifyLead(notifyCtx, &service.LeadEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		LeadID:    submission.ID.String(),
		Name:      submission.Name,
		Email:     submission.Email,
		Phone:     submission.Phone,
		Company:   submission.Company,
		Subject:   submission.Subject,
		Message:   submission.Message,
		Locale:    submission.Locale,
		Language:  submission.Language,
		CreatedAt: submission.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		s.metrics.LeadNotifications.WithLabelValues("failed").Inc()
		s.log(ctx).Warn("Lead notification failed, submission kept",
			slog.String("lead_id", submission.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.metrics.LeadNotifications.WithLabelValues("sent").Inc()
}

func (s *contactService) List(ctx context.Context, unreadOnly bool) ([]*entity.ContactSubmission, error) {
	return s.contacts.List(ctx, unreadOnly)
}

func (s *contactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return translateContactError(s.contacts.MarkRead(ctx, id))
}

func (s *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	return translateContactError(s.contacts.Delete(ctx, id))
}

func translateContactError(err error) error {
	if errors.Is(err, repository.ErrContactNotFound) {
		return domainerrors.ErrLeadNotFound
	}

	return err
}

// detectLanguage returns the ISO 639-1 code of text, or "" when the guess is unreliable.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}

	return info.Lang.Iso6391()
}
