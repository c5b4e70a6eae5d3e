// Package worker consumes request lifecycle events and fans them out as
// email notifications. Mail delivery runs off the request path: the API
// persists first and publishes, this worker delivers.
package worker

import (
	"context"

	"go.uber.org/zap"

	"inventory-request-service/internal/broker"
	"inventory-request-service/internal/mailer"
	"inventory-request-service/internal/models"
	"inventory-request-service/internal/util"
)

// NotificationWorker handles background email delivery for request events
type NotificationWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	mail         *mailer.Mailer
	logger       *zap.Logger
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(consumer *broker.Consumer, mail *mailer.Mailer) *NotificationWorker {
	w := &NotificationWorker{
		consumer: consumer,
		mail:     mail,
		logger:   util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnRequestSubmitted(w.handleRequestSubmitted)
	eventHandler.OnStatusChanged(w.handleStatusChanged)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *NotificationWorker) Start(ctx context.Context) error {
	w.logger.Info("starting notification worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *NotificationWorker) Stop() error {
	w.logger.Info("stopping notification worker")
	return w.consumer.Close()
}

// handleRequestSubmitted notifies the admin and confirms to the buyer. Mail
// failures are recorded but never returned: a bounced notification must not
// wedge the consumer on one message.
func (w *NotificationWorker) handleRequestSubmitted(ctx context.Context, ev *models.RequestSubmittedEvent) error {
	if _, err := w.mail.SendAdminNewRequest(ctx, ev); err != nil {
		util.NotificationEmailFailures.WithLabelValues("admin_new_request").Inc()
		w.logger.Error("failed to send admin notification",
			zap.String("request_id", ev.RequestID),
			zap.Error(err))
	} else {
		util.NotificationEmailsTotal.WithLabelValues("admin_new_request").Inc()
	}

	if _, err := w.mail.SendUserConfirmation(ctx, ev); err != nil {
		util.NotificationEmailFailures.WithLabelValues("user_confirmation").Inc()
		w.logger.Error("failed to send user confirmation",
			zap.String("request_id", ev.RequestID),
			zap.Error(err))
	} else {
		util.NotificationEmailsTotal.WithLabelValues("user_confirmation").Inc()
	}

	return nil
}

// handleStatusChanged tells the buyer about an approve/reject decision.
func (w *NotificationWorker) handleStatusChanged(ctx context.Context, ev *models.StatusChangedEvent) error {
	if _, err := w.mail.SendStatusUpdate(ctx, ev); err != nil {
		util.NotificationEmailFailures.WithLabelValues("status_update").Inc()
		w.logger.Error("failed to send status update",
			zap.String("request_id", ev.RequestID),
			zap.String("status", ev.Status),
			zap.Error(err))
		return nil
	}
	util.NotificationEmailsTotal.WithLabelValues("status_update").Inc()
	return nil
}
