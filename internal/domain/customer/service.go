package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-application/internal/event"
	"credit-application/internal/pkg/apperrors"
)

type CustomerService interface {
	Save(ctx context.Context, customer *Customer) (*Customer, error)
	Register(ctx context.Context, customer *Customer, password string) (*Customer, error)
	FindByID(ctx context.Context, customerID int64) (*Customer, error)
	Update(ctx context.Context, customerID int64, patch Patch) (*Customer, error)
	Delete(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	hasher PasswordHasher
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, hasher PasswordHasher, publisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if hasher == nil {
		panic("password hasher cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if publisher == nil {
		logger.Warn("No event publisher provided to NewCustomerService, events will be dropped")
		publisher = event.NoopPublisher{}
	}

	return &customerService{
		repo:   repo,
		hasher: hasher,
		pub:    publisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

var errNilCustomer = fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)

func notFound(customerID int64) error {
	return apperrors.NewNotFound(fmt.Sprintf("Id %d not found", customerID))
}

func (s *customerService) Save(ctx context.Context, customer *Customer) (*Customer, error) {
	if customer == nil {
		return nil, errNilCustomer
	}
	log := s.logger.With(slog.Int64("customerID", customer.ID), slog.Bool("update", customer.IsPersisted()))
	log.InfoContext(ctx, "Calling repository Save")

	if err := s.repo.Save(ctx, customer); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WarnContext(ctx, "Customer disappeared before save completed")
			return nil, notFound(customer.ID)
		}
		if apperrors.KindOf(err) == apperrors.KindStorageConflict {
			log.WarnContext(ctx, "Storage rejected customer", slog.Any("error", err))
			return nil, err
		}
		log.ErrorContext(ctx, "Repository failed to save customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	log.InfoContext(ctx, "Successfully saved customer", slog.Int64("savedID", customer.ID))
	return customer, nil
}

func (s *customerService) Register(ctx context.Context, customer *Customer, password string) (*Customer, error) {
	if customer == nil {
		return nil, errNilCustomer
	}
	s.logger.InfoContext(ctx, "Attempting to register new customer")

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to hash customer password", slog.Any("error", err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	customer.PasswordHash = hash

	saved, err := s.Save(ctx, customer)
	if err != nil {
		return nil, err
	}

	registered := event.CustomerRegisteredEvent{
		Timestamp:  time.Now(),
		CustomerID: saved.ID,
		FirstName:  saved.FirstName,
		LastName:   saved.LastName,
		Email:      saved.Email,
	}
	if pubErr := s.pub.PublishCustomerRegistered(ctx, registered); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer registered, but FAILED to publish registration event",
			slog.Int64("customerID", saved.ID), slog.Any("error", pubErr))
	}

	s.logger.InfoContext(ctx, "Successfully registered new customer", slog.Int64("customerID", saved.ID))
	return saved, nil
}

func (s *customerService) FindByID(ctx context.Context, customerID int64) (*Customer, error) {
	log := s.logger.With(slog.Int64("customerID", customerID))
	log.DebugContext(ctx, "Calling repository FindByID")

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.WarnContext(ctx, "Customer not found by repository")
			return nil, notFound(customerID)
		}
		log.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	return customer, nil
}

func (s *customerService) Update(ctx context.Context, customerID int64, patch Patch) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", customerID))

	customer, err := s.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	patch.Apply(customer)

	return s.Save(ctx, customer)
}

func (s *customerService) Delete(ctx context.Context, customerID int64) error {
	log := s.logger.With(slog.Int64("customerID", customerID))
	log.InfoContext(ctx, "Attempting to delete customer")

	if _, err := s.FindByID(ctx, customerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, customerID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.WarnContext(ctx, "Customer disappeared before delete completed")
			return notFound(customerID)
		case apperrors.KindOf(err) == apperrors.KindStorageConflict:
			log.WarnContext(ctx, "Storage refused customer delete", slog.Any("error", err))
			return err
		default:
			log.ErrorContext(ctx, "Repository error deleting customer", slog.Any("error", err))
			return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
		}
	}

	log.InfoContext(ctx, "Successfully deleted customer")
	return nil
}
