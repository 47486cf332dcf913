package credit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-application/internal/domain/customer"
	"credit-application/internal/event"
	"credit-application/internal/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	DefaultFirstInstallmentWindowMonths = 3

	msgContactAdmin = "Contact the admin"
)

type CreditService interface {
	Save(ctx context.Context, credit *Credit) (*Credit, error)
	FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error)
	FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*Credit, error)
}

// Policy holds the tunables of the first installment window rule.
type Policy struct {
	FirstInstallmentWindowMonths int
	Now                          func() time.Time
}

var _ CreditService = (*creditService)(nil)

type creditService struct {
	repo      CreditRepository
	customers customer.CustomerService
	pub       event.EventPublisher
	policy    Policy
	logger    *slog.Logger
}

func NewCreditService(repo CreditRepository, customers customer.CustomerService, publisher event.EventPublisher, policy Policy, logger *slog.Logger) CreditService {
	if repo == nil {
		panic("credit repository cannot be nil")
	}
	if customers == nil {
		panic("customer service cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if publisher == nil {
		publisher = event.NoopPublisher{}
	}
	if policy.FirstInstallmentWindowMonths <= 0 {
		policy.FirstInstallmentWindowMonths = DefaultFirstInstallmentWindowMonths
	}
	if policy.Now == nil {
		policy.Now = time.Now
	}

	return &creditService{
		repo:      repo,
		customers: customers,
		pub:       publisher,
		policy:    policy,
		logger:    logger.With(slog.String("component", "creditService")),
	}
}

// validateFirstInstallment accepts dates strictly before today plus the
// configured number of months.
func (s *creditService) validateFirstInstallment(day time.Time) error {
	limit := AddMonths(CivilDate(s.policy.Now()), s.policy.FirstInstallmentWindowMonths)
	if CivilDate(day).Before(limit) {
		return nil
	}
	return apperrors.NewBusinessRule(fmt.Sprintf(
		"The day of the first installment must be within the next %d months.", s.policy.FirstInstallmentWindowMonths))
}

func (s *creditService) Save(ctx context.Context, credit *Credit) (*Credit, error) {
	if credit == nil {
		return nil, fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}
	log := s.logger.With(slog.String("creditCode", credit.CreditCode.String()), slog.Int64("customerID", credit.OwnerID()))
	log.InfoContext(ctx, "Attempting to save credit")

	if err := s.validateFirstInstallment(credit.DayFirstInstallment); err != nil {
		log.WarnContext(ctx, "Business rule failed: first installment outside window",
			slog.Time("dayFirstInstallment", credit.DayFirstInstallment))
		return nil, err
	}

	owner, err := s.customers.FindByID(ctx, credit.OwnerID())
	if err != nil {
		log.WarnContext(ctx, "Failed to resolve credit owner", slog.Any("error", err))
		return nil, err
	}
	credit.Customer = owner

	if err := s.repo.Save(ctx, credit); err != nil {
		if apperrors.KindOf(err) == apperrors.KindStorageConflict {
			log.WarnContext(ctx, "Storage rejected credit", slog.Any("error", err))
			return nil, err
		}
		log.ErrorContext(ctx, "Repository failed to save credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save credit: %w", err)
	}

	submitted := event.CreditSubmittedEvent{
		Timestamp:            time.Now(),
		CreditCode:           credit.CreditCode,
		CustomerID:           owner.ID,
		CreditValue:          credit.CreditValue,
		NumberOfInstallments: credit.NumberOfInstallments,
		DayFirstInstallment:  credit.DayFirstInstallment.Format(time.DateOnly),
		Status:               string(credit.Status),
	}
	if pubErr := s.pub.PublishCreditSubmitted(ctx, submitted); pubErr != nil {
		log.ErrorContext(ctx, "Credit saved, but FAILED to publish submission event", slog.Any("error", pubErr))
	}

	log.InfoContext(ctx, "Successfully saved credit", slog.Int64("creditID", credit.ID))
	return credit, nil
}

func (s *creditService) FindAllByCustomer(ctx context.Context, customerID int64) ([]*Credit, error) {
	log := s.logger.With(slog.Int64("customerID", customerID))
	log.DebugContext(ctx, "Calling repository FindAllByCustomerID")

	credits, err := s.repo.FindAllByCustomerID(ctx, customerID)
	if err != nil {
		log.ErrorContext(ctx, "Repository error listing credits", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list credits for customer %d: %w", customerID, err)
	}
	if credits == nil {
		credits = []*Credit{}
	}

	log.InfoContext(ctx, "Successfully listed credits", slog.Int("count", len(credits)))
	return credits, nil
}

func (s *creditService) FindByCreditCode(ctx context.Context, customerID int64, code uuid.UUID) (*Credit, error) {
	log := s.logger.With(slog.Int64("customerID", customerID), slog.String("creditCode", code.String()))

	credit, err := s.repo.FindByCreditCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WarnContext(ctx, "Credit code not found by repository")
			return nil, apperrors.NewBusinessRule(fmt.Sprintf("Credit code %s not found", code))
		}
		log.ErrorContext(ctx, "Repository error finding credit", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find credit %s: %w", code, err)
	}

	if !credit.OwnedBy(customerID) {
		log.WarnContext(ctx, "Ownership check failed", slog.Int64("ownerID", credit.OwnerID()))
		return nil, apperrors.NewInvalidArgument(msgContactAdmin)
	}

	return credit, nil
}
