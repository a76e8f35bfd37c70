package db

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

//counterfeiter:generate . NotificationOutbox

// NotificationOutbox stages failure notifications for delivery. Rows are
// written in the same database as the build they describe, so a notification
// is never enqueued for a build that was rolled back. A separate delivery
// process drains the table and stamps sent_at.
type NotificationOutbox interface {
	EnqueueNotification(buildID int, recipient, subject, body string) error
	PendingNotifications(limit int) ([]Notification, error)
	MarkNotificationSent(id int) error
}

// Notification is one staged message, addressed and ready to send.
type Notification struct {
	ID        int
	BuildID   int
	Recipient string
	Subject   string
	Body      string
	CreatedAt time.Time
}

type notificationOutbox struct {
	conn DbConn
}

func NewNotificationOutbox(conn DbConn) NotificationOutbox {
	return &notificationOutbox{conn: conn}
}

func (o *notificationOutbox) EnqueueNotification(buildID int, recipient, subject, body string) error {
	_, err := psql.Insert("notification_outbox").
		Columns("build_id", "recipient", "subject", "body").
		Values(buildID, recipient, subject, body).
		RunWith(o.conn).
		Exec()
	return err
}

func (o *notificationOutbox) PendingNotifications(limit int) ([]Notification, error) {
	rows, err := psql.Select("id", "build_id", "recipient", "subject", "body", "created_at").
		From("notification_outbox").
		Where(sq.Eq{"sent_at": nil}).
		OrderBy("id ASC").
		Limit(uint64(limit)).
		RunWith(o.conn).
		Query()
	if err != nil {
		return nil, err
	}

	defer Close(rows)

	var pending []Notification
	for rows.Next() {
		var n Notification
		err = rows.Scan(&n.ID, &n.BuildID, &n.Recipient, &n.Subject, &n.Body, &n.CreatedAt)
		if err != nil {
			return nil, err
		}

		pending = append(pending, n)
	}

	return pending, rows.Err()
}

func (o *notificationOutbox) MarkNotificationSent(id int) error {
	_, err := psql.Update("notification_outbox").
		Set("sent_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		RunWith(o.conn).
		Exec()
	return err
}
