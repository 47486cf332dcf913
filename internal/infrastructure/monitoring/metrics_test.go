package monitoring

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTP.RequestsTotal.WithLabelValues("POST", "/api/credits", "201"))

	RecordHTTPRequest("POST", "/api/credits", "201", 20*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTP.RequestsTotal.WithLabelValues("POST", "/api/credits", "201")))
}

func TestObserveDBQuery(t *testing.T) {
	func() (err error) {
		defer ObserveDBQuery("test_success", time.Now(), &err)
		return nil
	}()
	func() (err error) {
		defer ObserveDBQuery("test_failure", time.Now(), &err)
		return errors.New("boom")
	}()

	assert.GreaterOrEqual(t, testutil.CollectAndCount(DB.QueryDuration, "credit_application_db_query_duration_seconds"), 2)
}

func TestSetCreditsByStatus(t *testing.T) {
	SetCreditsByStatus(map[string]int{"IN_PROGRESS": 4})
	assert.Equal(t, float64(4), testutil.ToFloat64(Business.CreditsByStatus.WithLabelValues("IN_PROGRESS")))

	SetCreditsByStatus(map[string]int{})
	assert.Equal(t, 0, testutil.CollectAndCount(Business.CreditsByStatus))
}

func TestBusinessCounters(t *testing.T) {
	registered := testutil.ToFloat64(Business.CustomersRegisteredTotal)
	submitted := testutil.ToFloat64(Business.CreditsSubmittedTotal)

	RecordCustomerRegistered()
	RecordCreditSubmitted()
	RecordProblem("BusinessRule")

	assert.Equal(t, registered+1, testutil.ToFloat64(Business.CustomersRegisteredTotal))
	assert.Equal(t, submitted+1, testutil.ToFloat64(Business.CreditsSubmittedTotal))
	assert.GreaterOrEqual(t, testutil.ToFloat64(Business.ProblemsTotal.WithLabelValues("BusinessRule")), float64(1))
}
