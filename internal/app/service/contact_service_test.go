package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/domain/validation"
)

func validContactRequest() *dto.ContactRequest {
	return &dto.ContactRequest{
		Name:              "Alex Chen",
		Email:             "alex@example.com",
		Phone:             "9123 4567",
		Age:               "34",
		ContactPreference: "email",
		Country:           "Australia",
		Message:           "I'd like to know more about the featured headphones.",
	}
}

func newContactService(t *testing.T) *ContactService {
	t.Helper()
	tracer, meter, logger := testTelemetry()
	return NewContactService(testNow, tracer, meter, logger)
}

func TestContactSubmitValid(t *testing.T) {
	svc := newContactService(t)

	ack, err := svc.Submit(context.Background(), validContactRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, ack.Message)
	assert.Equal(t, testNow(), ack.SubmittedAt)
}

func TestContactSubmitReportsEveryInvalidField(t *testing.T) {
	svc := newContactService(t)

	req := validContactRequest()
	req.Email = "nope"
	req.Age = "200"
	req.Message = "short"

	_, err := svc.Submit(context.Background(), req)

	var verr *validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "age")
	assert.Contains(t, verr.Fields, "message")
}

func TestContactResubmissionAfterFailureSucceeds(t *testing.T) {
	// Each submission is validated fresh; a prior failure leaves no state
	// behind.
	svc := newContactService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, &dto.ContactRequest{})
	require.Error(t, err)

	ack, err := svc.Submit(ctx, validContactRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, ack.Message)
}
