package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/techoutlet/storefront-api/internal/app/dto"
	"github.com/techoutlet/storefront-api/internal/domain/validation"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ContactService validates contact form submissions. Each submission is
// evaluated fresh, so prior failures never linger into the next attempt.
type ContactService struct {
	rules       validation.RuleSet
	now         func() time.Time
	tracer      trace.Tracer
	logger      *slog.Logger
	submissions metric.Int64Counter
}

// NewContactService creates a new contact service
func NewContactService(
	now func() time.Time,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ContactService {
	if now == nil {
		now = time.Now
	}

	submissions, _ := meter.Int64Counter(
		"contact.submissions",
		metric.WithDescription("Total number of contact form submissions"),
	)

	return &ContactService{
		rules:       validation.ContactRules(),
		now:         now,
		tracer:      tracer,
		logger:      logger,
		submissions: submissions,
	}
}

// Submit validates all fields and, when everything passes, returns the
// acknowledgment the client keeps on screen until the form is reset.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactAcknowledgment, error) {
	ctx, span := s.tracer.Start(ctx, "ContactService.Submit")
	defer span.End()

	if err := validation.Check(s.rules, req.Fields()); err != nil {
		span.SetStatus(codes.Error, "Validation failed")
		s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "invalid")))
		return nil, err
	}

	s.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "success")))
	s.logger.InfoContext(ctx, "Contact form submitted",
		slog.String("preference", req.ContactPreference),
	)

	span.SetStatus(codes.Ok, "Contact form accepted")
	return &dto.ContactAcknowledgment{
		Message:     "Thanks for getting in touch. We'll respond within two business days.",
		SubmittedAt: s.now(),
	}, nil
}
