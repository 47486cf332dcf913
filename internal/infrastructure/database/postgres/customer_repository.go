package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"credit-application/internal/domain/customer"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"
)

const (
	insertCustomerQuery = `
        INSERT INTO customers (first_name, last_name, cpf, income, email, password_hash, zip_code, street, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	updateCustomerQuery = `
        UPDATE customers
        SET first_name = $1,
            last_name = $2,
            cpf = $3,
            income = $4,
            email = $5,
            password_hash = $6,
            zip_code = $7,
            street = $8,
            updated_at = NOW()
        WHERE id = $9
        RETURNING updated_at`

	findCustomerByIDQuery = `
        SELECT id, first_name, last_name, cpf, income::text, email, password_hash, zip_code, street, created_at, updated_at
        FROM customers
        WHERE id = $1`

	deleteCustomerQuery = `DELETE FROM customers WHERE id = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if !cust.IsPersisted() {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) (err error) {
	defer monitoring.ObserveDBQuery("insert_customer", time.Now(), &err)
	r.logger.DebugContext(ctx, "Attempting to insert new customer")

	err = r.db.QueryRow(ctx, insertCustomerQuery,
		cust.FirstName,
		cust.LastName,
		cust.CPF,
		cust.Income,
		cust.Email,
		cust.PasswordHash,
		cust.Address.ZipCode,
		cust.Address.Street,
	).Scan(
		&cust.ID,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) (err error) {
	defer monitoring.ObserveDBQuery("update_customer", time.Now(), &err)
	logCtx := r.logger.With(slog.Int64("customerID", cust.ID))
	logCtx.DebugContext(ctx, "Attempting to update customer")

	err = r.db.QueryRow(ctx, updateCustomerQuery,
		cust.FirstName,
		cust.LastName,
		cust.CPF,
		cust.Income,
		cust.Email,
		cust.PasswordHash,
		cust.Address.ZipCode,
		cust.Address.Street,
		cust.ID,
	).Scan(&cust.UpdatedAt)
	if err != nil {
		translated := translateDBError(err, logCtx)
		if errors.Is(translated, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Update affected zero rows, customer likely not found")
			return customer.ErrNotFound
		}
		return translated
	}

	logCtx.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (_ *customer.Customer, err error) {
	defer monitoring.ObserveDBQuery("find_customer_by_id", time.Now(), &err)

	var (
		cust   customer.Customer
		income string
	)
	err = r.db.QueryRow(ctx, findCustomerByIDQuery, customerID).Scan(
		&cust.ID,
		&cust.FirstName,
		&cust.LastName,
		&cust.CPF,
		&income,
		&cust.Email,
		&cust.PasswordHash,
		&cust.Address.ZipCode,
		&cust.Address.Street,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		translated := translateDBError(err, r.logger)
		if errors.Is(translated, apperrors.ErrNotFound) {
			r.logger.DebugContext(ctx, "Customer not found", slog.Int64("customerID", customerID))
			return nil, customer.ErrNotFound
		}
		return nil, translated
	}

	if cust.Income, err = parseMoney(income); err != nil {
		return nil, err
	}
	return &cust, nil
}

// Delete fails with a storage conflict while credits still reference the
// customer.
func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) (err error) {
	defer monitoring.ObserveDBQuery("delete_customer", time.Now(), &err)
	logCtx := r.logger.With(slog.Int64("customerID", customerID))

	cmdTag, err := r.db.Exec(ctx, deleteCustomerQuery, customerID)
	if err != nil {
		return translateDBError(err, logCtx)
	}
	if cmdTag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return customer.ErrNotFound
	}

	logCtx.InfoContext(ctx, "Customer deleted successfully")
	return nil
}
