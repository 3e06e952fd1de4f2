package service

import (
	"context"

	"pavilion/internal/domain/entity"
)

// Provider error codes reported per token, following the FCM v1 error taxonomy.
const (
	PushErrorUnregistered     = "UNREGISTERED"
	PushErrorInvalidArgument  = "INVALID_ARGUMENT"
	PushErrorSenderIDMismatch = "SENDER_ID_MISMATCH"
	PushErrorQuotaExceeded    = "QUOTA_EXCEEDED"
	PushErrorThirdPartyAuth   = "THIRD_PARTY_AUTH_ERROR"
	PushErrorUnavailable      = "UNAVAILABLE"
	PushErrorInternal         = "INTERNAL"
	PushErrorUnknown          = "UNKNOWN"
)

// SendResponse is the provider outcome for a single token.
type SendResponse struct {
	Success   bool
	MessageID string
	ErrorCode string
	Error     error
}

// MulticastResult is the aggregate outcome of one multicast send.
// Responses has one element per input token, in input order.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResponse
}

// PushService defines the interface for the push-messaging provider
type PushService interface {
	// SendMulticast sends one notification to every token.
	// A returned error means the provider call itself failed (network, auth, quota);
	// per-token rejections are reported in the result instead.
	SendMulticast(ctx context.Context, tokens []string, notification entity.NotificationPayload) (*MulticastResult, error)
}
