// internal/service/notification/service.go
package notification

import (
	"context"
	"fmt"

	"farepass-service/internal/domain/booking"
	"farepass-service/internal/domain/document"
	"farepass-service/internal/domain/notification"
	"farepass-service/internal/repository/postgres"
	ws "farepass-service/internal/websocket"

	"go.uber.org/zap"
)

type NotificationService struct {
	notificationRepo *postgres.NotificationRepository
	hub              *ws.Hub
	logger           *zap.Logger
}

func NewNotificationService(notificationRepo *postgres.NotificationRepository, hub *ws.Hub, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		hub:              hub,
		logger:           logger,
	}
}

// BookingCreated records a feed entry for a new order and pushes it to every
// connected admin. Failures are logged, never propagated: the booking already
// succeeded.
func (s *NotificationService) BookingCreated(ctx context.Context, b *booking.Booking) {
	n := &notification.Notification{
		Title:   "New booking",
		Message: fmt.Sprintf("Booking %s placed for %.2f %s", b.Reference, b.Amount, b.Currency),
		Type:    notification.TypeNewBooking,
		Metadata: map[string]interface{}{
			"booking_id": b.ID,
			"reference":  b.Reference,
		},
	}
	s.publish(ctx, n)
}

// DocumentUploaded records a feed entry for a new document submission.
func (s *NotificationService) DocumentUploaded(ctx context.Context, d *document.Document) {
	n := &notification.Notification{
		Title:   "Document uploaded",
		Message: fmt.Sprintf("%s document %q awaiting review", d.Kind, d.FileName),
		Type:    notification.TypeDocumentUploaded,
		Metadata: map[string]interface{}{
			"document_id": d.ID,
			"user_id":     d.UserID,
		},
	}
	s.publish(ctx, n)
}

func (s *NotificationService) publish(ctx context.Context, n *notification.Notification) {
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		s.logger.Error("failed to create notification", zap.Error(err))
		return
	}
	if s.hub != nil {
		s.hub.PushNotification(nil, n)
	}
}

// List retrieves an admin's feed, newest first.
func (s *NotificationService) List(ctx context.Context, adminID int64, limit int) ([]notification.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return s.notificationRepo.ListForAdmin(ctx, adminID, limit)
}

func (s *NotificationService) UnreadCount(ctx context.Context, adminID int64) (int64, error) {
	return s.notificationRepo.UnreadCount(ctx, adminID)
}

// MarkRead marks one entry read and refreshes the admin's unread badge.
func (s *NotificationService) MarkRead(ctx context.Context, adminID, id int64) error {
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return err
	}
	s.pushUnread(ctx, adminID)
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, adminID int64) error {
	if err := s.notificationRepo.MarkAllRead(ctx, adminID); err != nil {
		return err
	}
	s.pushUnread(ctx, adminID)
	return nil
}

func (s *NotificationService) pushUnread(ctx context.Context, adminID int64) {
	if s.hub == nil {
		return
	}
	count, err := s.notificationRepo.UnreadCount(ctx, adminID)
	if err != nil {
		s.logger.Warn("failed to refresh unread count", zap.Error(err))
		return
	}
	s.hub.PushUnreadCount(adminID, count)
}
