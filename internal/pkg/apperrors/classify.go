package apperrors

import (
	"errors"
	"net/http"
	"time"
)

const (
	TitleValidation      = "Validation Error"
	TitleDataAccess      = "Data Access Error"
	TitleBusiness        = "Business Error"
	TitleInvalidArgument = "Invalid Argument Error"
	TitleInternal        = "Internal Error"

	internalMessage = "An unexpected error occurred."
)

// Problem is the structured shape every failure is rendered into.
type Problem struct {
	Title     string
	Timestamp time.Time
	Status    int
	Kind      Kind
	Details   map[string]string
}

type Classifier struct {
	// InvalidArgumentStatus is 400 unless configured to 409.
	InvalidArgumentStatus int
	Now                   func() time.Time
}

func NewClassifier(invalidArgumentStatus int) *Classifier {
	if invalidArgumentStatus == 0 {
		invalidArgumentStatus = http.StatusBadRequest
	}
	return &Classifier{InvalidArgumentStatus: invalidArgumentStatus, Now: time.Now}
}

func (c *Classifier) Classify(err error) Problem {
	kind := KindOf(err)
	p := Problem{Kind: kind, Timestamp: c.now()}

	switch kind {
	case KindValidation:
		p.Title, p.Status = TitleValidation, http.StatusBadRequest
		p.Details = validationDetails(err)
	case KindStorageConflict:
		p.Title, p.Status = TitleDataAccess, http.StatusConflict
		p.Details = causeDetails(err)
	case KindNotFound, KindBusinessRule:
		p.Title, p.Status = TitleBusiness, http.StatusBadRequest
		p.Details = causeDetails(err)
	case KindInvalidArgument:
		p.Title, p.Status = TitleInvalidArgument, c.InvalidArgumentStatus
		p.Details = causeDetails(err)
	case KindInternal:
		p.Title, p.Status = TitleInternal, http.StatusInternalServerError
		p.Details = map[string]string{"error": internalMessage}
	}
	return p
}

func (c *Classifier) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func validationDetails(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) && len(appErr.Details) > 0 {
		return appErr.Details
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return map[string]string{validationErr.Field: validationErr.Message}
	}
	return map[string]string{"request": err.Error()}
}

// causeDetails keys the message by the description of the underlying cause.
func causeDetails(err error) map[string]string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		cause := KindOf(err).String()
		if appErr.Cause != nil {
			cause = appErr.Cause.Error()
		}
		return map[string]string{cause: appErr.Message}
	}
	return map[string]string{KindOf(err).String(): err.Error()}
}
