package notification

import (
	"context"
	"fmt"
	"log/slog"

	"pavilion/config"
	"pavilion/internal/domain/entity"
	"pavilion/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for a single multicast request
const maxMulticastTokens = 500

// multicastSender is the subset of messaging.Client used here
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client    multicastSender
	batchSize int
	logger    *slog.Logger
}

// FirebaseParams holds dependencies for the Firebase push service, injected by Fx
type FirebaseParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(params FirebaseParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	params.Logger.Info("Firebase messaging initialized", slog.String("project_id", cfg.ProjectID))

	return newFirebaseService(client, cfg.BatchSize, params.Logger), nil
}

func newFirebaseService(client multicastSender, batchSize int, logger *slog.Logger) *firebaseService {
	if batchSize <= 0 || batchSize > maxMulticastTokens {
		batchSize = maxMulticastTokens
	}

	return &firebaseService{
		client:    client,
		batchSize: batchSize,
		logger:    logger,
	}
}

// SendMulticast sends one notification to every token.
// Tokens beyond the FCM request limit are sent in consecutive batches and the
// per-token responses are concatenated in input order.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, notification entity.NotificationPayload) (*service.MulticastResult, error) {
	result := &service.MulticastResult{
		Responses: make([]service.SendResponse, 0, len(tokens)),
	}
	if len(tokens) == 0 {
		return result, nil
	}

	for start := 0; start < len(tokens); start += s.batchSize {
		end := min(start+s.batchSize, len(tokens))
		batch := tokens[start:end]

		response, err := s.client.SendEachForMulticast(ctx, buildMulticastMessage(batch, notification))
		if err != nil {
			return nil, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		if len(response.Responses) != len(batch) {
			return nil, fmt.Errorf("multicast response count mismatch: got %d, want %d", len(response.Responses), len(batch))
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		for _, sendResponse := range response.Responses {
			result.Responses = append(result.Responses, toSendResponse(sendResponse))
		}

		s.logger.Debug("Multicast batch sent",
			slog.Int("batch_start", start),
			slog.Int("batch_size", len(batch)),
			slog.Int("success_count", response.SuccessCount),
			slog.Int("failure_count", response.FailureCount),
		)
	}

	return result, nil
}

func buildMulticastMessage(tokens []string, notification entity.NotificationPayload) *messaging.MulticastMessage {
	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: notification.Title,
			Body:  notification.Body,
		},
		Data: notification.Data,
	}

	if notification.Icon != "" {
		message.Android = &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{Icon: notification.Icon},
		}
		message.Webpush = &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{Icon: notification.Icon},
		}
	}

	return message
}

func toSendResponse(response *messaging.SendResponse) service.SendResponse {
	if response == nil {
		return service.SendResponse{ErrorCode: service.PushErrorUnknown}
	}

	if response.Success {
		return service.SendResponse{Success: true, MessageID: response.MessageID}
	}

	return service.SendResponse{
		ErrorCode: errorCode(response.Error),
		Error:     response.Error,
	}
}

// errorCode maps an FCM per-token error onto its v1 API error code
func errorCode(err error) string {
	switch {
	case err == nil:
		return service.PushErrorUnknown
	case messaging.IsUnregistered(err):
		return service.PushErrorUnregistered
	case messaging.IsInvalidArgument(err):
		return service.PushErrorInvalidArgument
	case messaging.IsSenderIDMismatch(err):
		return service.PushErrorSenderIDMismatch
	case messaging.IsQuotaExceeded(err):
		return service.PushErrorQuotaExceeded
	case messaging.IsThirdPartyAuthError(err):
		return service.PushErrorThirdPartyAuth
	case messaging.IsUnavailable(err):
		return service.PushErrorUnavailable
	case messaging.IsInternal(err):
		return service.PushErrorInternal
	default:
		return service.PushErrorUnknown
	}
}
