package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUserEmailExists = errors.New("user already exists")

const batchSize = 200

// Table is one collection's full replacement: every row of Model and of
// each of Children is deleted before Rows is inserted.
type Table struct {
	Model    any
	Children []any
	Rows     any
	Len      int
}

type SnapshotDAO struct {
	db *gorm.DB
}

func NewSnapshotDAO(db *gorm.DB) *SnapshotDAO {
	return &SnapshotDAO{
		db: db,
	}
}

func (d *SnapshotDAO) FindUsers(ctx context.Context) ([]User, error) {
	var users []User
	result := d.db.WithContext(ctx).Order("id").Find(&users)
	return users, result.Error
}

func (d *SnapshotDAO) FindEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	result := d.db.WithContext(ctx).
		Preload("TicketTypes", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&events)
	return events, result.Error
}

func (d *SnapshotDAO) FindServices(ctx context.Context) ([]Service, error) {
	var services []Service
	result := d.db.WithContext(ctx).Order("id").Find(&services)
	return services, result.Error
}

func (d *SnapshotDAO) FindTickets(ctx context.Context) ([]Ticket, error) {
	var tickets []Ticket
	result := d.db.WithContext(ctx).Order("id").Find(&tickets)
	return tickets, result.Error
}

func (d *SnapshotDAO) FindCollaborationRequests(ctx context.Context) ([]CollaborationRequest, error) {
	var requests []CollaborationRequest
	result := d.db.WithContext(ctx).Order("id").Find(&requests)
	return requests, result.Error
}

func (d *SnapshotDAO) FindTransferRequests(ctx context.Context) ([]TransferRequest, error) {
	var requests []TransferRequest
	result := d.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&requests)
	return requests, result.Error
}

func (d *SnapshotDAO) FindReviews(ctx context.Context) ([]Review, error) {
	var reviews []Review
	result := d.db.WithContext(ctx).Order("id").Find(&reviews)
	return reviews, result.Error
}

func (d *SnapshotDAO) FindNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	result := d.db.WithContext(ctx).Order("id").Find(&notifications)
	return notifications, result.Error
}

// Replace swaps the content of every given table in one transaction.
func (d *SnapshotDAO) Replace(ctx context.Context, tables []Table) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, t := range tables {
			for _, child := range t.Children {
				if err := all.Delete(child).Error; err != nil {
					return err
				}
			}
			if err := all.Delete(t.Model).Error; err != nil {
				return err
			}
			if t.Len == 0 {
				continue
			}
			if err := tx.CreateInBatches(t.Rows, batchSize).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.Message, `unique constraint "uni_users_email"`) {
			return ErrUserEmailExists
		}

		return err
	}

	return nil
}
