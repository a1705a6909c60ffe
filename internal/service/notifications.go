package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"urlpro/internal/database"
	"urlpro/internal/types"
)

const notificationPageSize = 50

type Notifications struct {
	repo database.NotificationRepository
}

func NewNotifications(repo database.NotificationRepository) *Notifications {
	return &Notifications{repo: repo}
}

// Notify is best effort; failures are logged.
func (n *Notifications) Notify(ctx context.Context, userID int64, title, message string, kind types.NotificationType) {
	err := n.repo.CreateNotification(ctx, &types.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	})
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("failed to create notification")
	}
}

func (n *Notifications) List(ctx context.Context, userID int64, unreadOnly bool) ([]types.Notification, error) {
	return n.repo.ListNotifications(ctx, userID, unreadOnly, notificationPageSize)
}

func (n *Notifications) MarkRead(ctx context.Context, userID, id int64) error {
	return n.repo.MarkNotificationRead(ctx, userID, id)
}
