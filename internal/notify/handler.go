// Package notify sends a user's eligible schemes to their phone by SMS.
package notify

import (
	"context"
	"strings"
	"time"

	"himaya-assistant/internal/common/errors"
	"himaya-assistant/internal/common/logger"
	"himaya-assistant/internal/common/metrics"
	"himaya-assistant/internal/dialogue"
	"himaya-assistant/internal/models"
	"himaya-assistant/internal/users"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/google/uuid"
)

// SNSService is the subset of the SNS client used here.
type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// EligibilitySource resolves a user's eligible schemes.
type EligibilitySource interface {
	EligibleSchemes(ctx context.Context, phone, lang string) (*users.EligibleSchemes, error)
}

type Handler struct {
	config    *Config
	source    EligibilitySource
	snsClient SNSService
	logger    logger.Logger
}

// NewHandler wires the notifier. snsClient may be nil when SMS is disabled.
func NewHandler(config *Config, source EligibilitySource, snsClient SNSService, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		source:    source,
		snsClient: snsClient,
		logger:    log.WithFields(map[string]interface{}{"component": "notify"}),
	}
}

// Enabled reports whether SMS delivery is configured.
func (h *Handler) Enabled() bool {
	return h.config.Enabled && h.snsClient != nil
}

// NotifyEligible texts the eligibility summary for phone in lang (or the
// user's language when lang is empty).
func (h *Handler) NotifyEligible(ctx context.Context, phone, lang string) (*models.Notification, error) {
	if !h.Enabled() {
		metrics.SMSSent.WithLabelValues(models.NotificationDisabled).Inc()
		return nil, errors.NewNotificationsDisabledError()
	}

	res, err := h.source.EligibleSchemes(ctx, phone, lang)
	if err != nil {
		return nil, err
	}

	n := &models.Notification{
		ID:        uuid.New().String(),
		Phone:     res.User.Phone,
		Channel:   models.ChannelSMS,
		Language:  res.Language,
		Body:      dialogue.SummarizeEligibility(res.Results, res.Language, h.config.MaxItems),
		SchemeIDs: make([]string, 0, len(res.Results)),
	}
	for _, r := range res.Results {
		n.SchemeIDs = append(n.SchemeIDs, r.ID)
	}

	if h.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.config.Timeout)
		defer cancel()
	}

	out, err := h.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(E164(n.Phone)),
		Message:     aws.String(n.Body),
	})
	n.SentAt = time.Now().UTC()
	if err != nil {
		n.Status = models.NotificationFailed
		metrics.SMSSent.WithLabelValues(n.Status).Inc()
		h.logger.Error("SMS send failed", map[string]interface{}{
			"notificationId": n.ID,
			"error":          err,
		})
		return nil, errors.NewNotificationSendFailedError(err)
	}

	n.Status = models.NotificationSent
	if out != nil && out.MessageId != nil {
		n.MessageID = *out.MessageId
	}
	metrics.SMSSent.WithLabelValues(n.Status).Inc()
	h.logger.Info("eligibility SMS sent", map[string]interface{}{
		"notificationId": n.ID,
		"schemes":        len(n.SchemeIDs),
		"language":       n.Language,
	})
	return n, nil
}

// E164 strips formatting from an Indian phone number and adds the +91
// country code to bare ten digit numbers.
func E164(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, "+"):
		return digits
	case len(digits) == 10:
		return "+91" + digits
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return "+" + digits
	default:
		return digits
	}
}
