package repositories

import (
	"context"
	"time"

	"ticketing-service/internal/module/payout/models/entity"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const (
	sweepLockName   = "lock:payout-sweep"
	sweepLockExpiry = 15 * time.Minute
)

type repositories struct {
	db      *sqlx.DB
	log     log.Logger
	redsync *redsync.Redsync
}

type Repositories interface {
	// redis
	AcquireSweepLock(ctx context.Context) (func(context.Context) error, error)
	// db
	FindApprovedPaymentRequests(ctx context.Context, createdBefore time.Time) ([]entity.PaymentRequest, error)
	MarkPaymentRequestPaid(ctx context.Context, id, transferCode string, paidAt time.Time) error
	MarkPaymentRequestFailed(ctx context.Context, id, reason string) error
	// rpc
	CreateNotification(ctx context.Context, notification entity.Notification) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client) Repositories {
	r := &repositories{
		db:  db,
		log: log,
	}
	if redisClient != nil {
		r.redsync = redsync.New(goredis.NewPool(redisClient))
	}
	return r
}

// AcquireSweepLock keeps the cron endpoint and the periodic task from paying
// the same request twice. It does not retry.
func (r *repositories) AcquireSweepLock(ctx context.Context) (func(context.Context) error, error) {
	if r.redsync == nil {
		return func(context.Context) error { return nil }, nil
	}

	mutex := r.redsync.NewMutex(sweepLockName, redsync.WithExpiry(sweepLockExpiry), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.Conflict("payout sweep already running")
	}

	return func(ctx context.Context) error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}

// FindApprovedPaymentRequests implements Repositories.
func (r *repositories) FindApprovedPaymentRequests(ctx context.Context, createdBefore time.Time) ([]entity.PaymentRequest, error) {
	query := `SELECT pr.id, pr.user_id, COALESCE(u.email, '') AS organizer_email, pr.amount, pr.recipient_code, pr.status, pr.created_at
		FROM payment_requests pr
		LEFT JOIN users u ON u.id = pr.user_id
		WHERE pr.status = $1 AND pr.created_at < $2
		ORDER BY pr.created_at ASC`
	var requests []entity.PaymentRequest
	if err := r.db.SelectContext(ctx, &requests, query, entity.PaymentRequestApproved, createdBefore); err != nil {
		r.log.Error(ctx, "error find approved payment requests", err)
		return nil, errors.PersistenceError("error find approved payment requests")
	}
	return requests, nil
}

// MarkPaymentRequestPaid implements Repositories.
func (r *repositories) MarkPaymentRequestPaid(ctx context.Context, id, transferCode string, paidAt time.Time) error {
	query := `UPDATE payment_requests SET status = $1, transfer_code = $2, processed_at = $3 WHERE id = $4`
	if _, err := r.db.ExecContext(ctx, query, entity.PaymentRequestPaid, transferCode, paidAt, id); err != nil {
		r.log.Error(ctx, "error mark payment request paid", err)
		return errors.PersistenceError("error mark payment request paid")
	}
	return nil
}

// MarkPaymentRequestFailed implements Repositories.
func (r *repositories) MarkPaymentRequestFailed(ctx context.Context, id, reason string) error {
	query := `UPDATE payment_requests SET status = $1, failure_reason = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, entity.PaymentRequestFailed, reason, id); err != nil {
		r.log.Error(ctx, "error mark payment request failed", err)
		return errors.PersistenceError("error mark payment request failed")
	}
	return nil
}

// CreateNotification calls the create_notification stored procedure.
func (r *repositories) CreateNotification(ctx context.Context, n entity.Notification) error {
	_, err := r.db.ExecContext(ctx, `SELECT create_notification($1, $2, $3, $4)`, n.UserEmail, n.Title, n.Message, n.Kind)
	if err != nil {
		r.log.Error(ctx, "error create notification", err)
		return errors.PersistenceError("error create notification")
	}
	return nil
}
