package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"credit-application/internal/domain/credit"
	"credit-application/internal/domain/customer"
	"credit-application/internal/infrastructure/monitoring"
	"credit-application/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	insertCreditQuery = `
        INSERT INTO credits (credit_code, credit_value, day_first_installment, number_of_installments, status, customer_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW())
        RETURNING id, created_at`

	findCreditByCodeQuery = `
        SELECT cr.id, cr.credit_code::text, cr.credit_value::text, cr.day_first_installment, cr.number_of_installments, cr.status, cr.created_at,
               c.id, c.first_name, c.last_name, c.cpf, c.income::text, c.email, c.zip_code, c.street, c.created_at, c.updated_at
        FROM credits cr
        JOIN customers c ON c.id = cr.customer_id
        WHERE cr.credit_code = $1`

	findCreditsByCustomerQuery = `
        SELECT id, credit_code::text, credit_value::text, day_first_installment, number_of_installments, status, created_at
        FROM credits
        WHERE customer_id = $1
        ORDER BY id ASC`

	countCreditsByStatusQuery = `SELECT status, COUNT(*) FROM credits GROUP BY status`
)

type CreditRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ credit.CreditRepository = (*CreditRepository)(nil)

func NewCreditRepository(db DBPool, logger *slog.Logger) *CreditRepository {
	if db == nil {
		panic("DBPool cannot be nil for CreditRepository")
	}
	return &CreditRepository{db: db, logger: logger.With("component", "CreditRepository")}
}

func (r *CreditRepository) Save(ctx context.Context, c *credit.Credit) (err error) {
	defer monitoring.ObserveDBQuery("insert_credit", time.Now(), &err)
	if c == nil {
		return fmt.Errorf("%w: credit cannot be nil", apperrors.ErrInvalidArgument)
	}
	logCtx := r.logger.With(slog.String("creditCode", c.CreditCode.String()), slog.Int64("customerID", c.OwnerID()))

	err = r.db.QueryRow(ctx, insertCreditQuery,
		c.CreditCode,
		c.CreditValue,
		c.DayFirstInstallment,
		c.NumberOfInstallments,
		string(c.Status),
		c.OwnerID(),
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		logCtx.WarnContext(ctx, "Failed to insert credit", slog.Any("error", err))
		return translateDBError(err, logCtx)
	}

	logCtx.InfoContext(ctx, "Credit inserted successfully", slog.Int64("creditID", c.ID))
	return nil
}

func (r *CreditRepository) FindByCreditCode(ctx context.Context, code uuid.UUID) (_ *credit.Credit, err error) {
	defer monitoring.ObserveDBQuery("find_credit_by_code", time.Now(), &err)

	var (
		c                              credit.Credit
		owner                          customer.Customer
		rawCode, value, income, status string
	)
	err = r.db.QueryRow(ctx, findCreditByCodeQuery, code).Scan(
		&c.ID,
		&rawCode,
		&value,
		&c.DayFirstInstallment,
		&c.NumberOfInstallments,
		&status,
		&c.CreatedAt,
		&owner.ID,
		&owner.FirstName,
		&owner.LastName,
		&owner.CPF,
		&income,
		&owner.Email,
		&owner.Address.ZipCode,
		&owner.Address.Street,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if err != nil {
		translated := translateDBError(err, r.logger)
		if errors.Is(translated, apperrors.ErrNotFound) {
			return nil, credit.ErrNotFound
		}
		return nil, translated
	}

	if c.CreditCode, err = parseCode(rawCode); err != nil {
		return nil, err
	}
	if c.CreditValue, err = parseMoney(value); err != nil {
		return nil, err
	}
	if owner.Income, err = parseMoney(income); err != nil {
		return nil, err
	}
	c.Status = credit.Status(status)
	c.Customer = &owner
	return &c, nil
}

func (r *CreditRepository) FindAllByCustomerID(ctx context.Context, customerID int64) (_ []*credit.Credit, err error) {
	defer monitoring.ObserveDBQuery("find_credits_by_customer", time.Now(), &err)
	logCtx := r.logger.With(slog.Int64("customerID", customerID))

	rows, err := r.db.Query(ctx, findCreditsByCustomerQuery, customerID)
	if err != nil {
		return nil, translateDBError(err, logCtx)
	}
	defer rows.Close()

	credits := make([]*credit.Credit, 0)
	for rows.Next() {
		var (
			c                   credit.Credit
			code, value, status string
		)
		if err = rows.Scan(&c.ID, &code, &value, &c.DayFirstInstallment, &c.NumberOfInstallments, &status, &c.CreatedAt); err != nil {
			logCtx.ErrorContext(ctx, "Failed to scan credit row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan credit: %w", apperrors.ErrDatabase, err)
		}
		if c.CreditCode, err = parseCode(code); err != nil {
			return nil, err
		}
		if c.CreditValue, err = parseMoney(value); err != nil {
			return nil, err
		}
		c.Status = credit.Status(status)
		c.Customer = &customer.Customer{ID: customerID}
		credits = append(credits, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, translateDBError(err, logCtx)
	}

	logCtx.DebugContext(ctx, "Found credits for customer", slog.Int("count", len(credits)))
	return credits, nil
}

func (r *CreditRepository) CountByStatus(ctx context.Context) (_ map[credit.Status]int, err error) {
	defer monitoring.ObserveDBQuery("count_credits_by_status", time.Now(), &err)

	rows, err := r.db.Query(ctx, countCreditsByStatusQuery)
	if err != nil {
		return nil, translateDBError(err, r.logger)
	}
	defer rows.Close()

	counts := make(map[credit.Status]int)
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("%w: failed to scan status count: %w", apperrors.ErrDatabase, err)
		}
		counts[credit.Status(status)] = int(n)
	}
	if err = rows.Err(); err != nil {
		return nil, translateDBError(err, r.logger)
	}
	return counts, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid numeric value %q: %w", apperrors.ErrDatabase, s, err)
	}
	return d, nil
}

func parseCode(s string) (uuid.UUID, error) {
	code, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid credit code %q: %w", apperrors.ErrDatabase, s, err)
	}
	return code, nil
}
