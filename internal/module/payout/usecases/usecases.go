package usecases

import (
	"context"
	"fmt"
	"time"

	"ticketing-service/internal/module/payout/models/entity"
	"ticketing-service/internal/module/payout/models/response"
	"ticketing-service/internal/module/payout/repositories"
	"ticketing-service/internal/pkg/log"
	"ticketing-service/internal/pkg/paystack"
	"ticketing-service/internal/pkg/pricing"

	"github.com/hashicorp/go-multierror"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const (
	DefaultMinAge = 72 * time.Hour

	transferReason = "Event ticket sales payout"
	kindPayout     = "payout"
)

type usecase struct {
	repo     repositories.Repositories
	paystack paystack.PaystackRepository
	log      log.Logger
	minAge   time.Duration
	now      func() time.Time
}

type Usecase interface {
	RunPayoutSweep(ctx context.Context) (response.PayoutSweep, error)
}

type Options struct {
	MinAge time.Duration
	Now    func() time.Time
}

func New(repo repositories.Repositories, gateway paystack.PaystackRepository, log log.Logger, opts Options) Usecase {
	if opts.MinAge <= 0 {
		opts.MinAge = DefaultMinAge
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &usecase{
		repo:     repo,
		paystack: gateway,
		log:      log,
		minAge:   opts.MinAge,
		now:      opts.Now,
	}
}

// RunPayoutSweep transfers every approved request older than the minimum age,
// oldest first. One failed request never stops the others.
func (u *usecase) RunPayoutSweep(ctx context.Context) (response.PayoutSweep, error) {
	span, ctx := apm.StartSpan(ctx, "RunPayoutSweep", "usecase")
	defer span.End()

	unlock, err := u.repo.AcquireSweepLock(ctx)
	if err != nil {
		return response.PayoutSweep{}, err
	}
	defer func() {
		if err := unlock(context.Background()); err != nil {
			u.log.Warn(ctx, "error release payout sweep lock", err)
		}
	}()

	requests, err := u.repo.FindApprovedPaymentRequests(ctx, u.now().Add(-u.minAge))
	if err != nil {
		return response.PayoutSweep{}, err
	}

	var failures *multierror.Error
	results := make([]response.PayoutResult, 0, len(requests))
	for _, pr := range requests {
		result, err := u.process(ctx, pr)
		if err != nil {
			failures = multierror.Append(failures, fmt.Errorf("payment request %s: %w", pr.ID, err))
		}
		results = append(results, result)
	}

	failed := 0
	if failures != nil {
		failed = len(failures.Errors)
		u.log.Error(ctx, "payout sweep finished with failures", zap.Error(failures.ErrorOrNil()))
	}

	return response.PayoutSweep{
		Success: true,
		Message: fmt.Sprintf("processed %d payout requests, %d failed", len(results), failed),
		Results: results,
	}, nil
}

func (u *usecase) process(ctx context.Context, pr entity.PaymentRequest) (response.PayoutResult, error) {
	span, ctx := apm.StartSpan(ctx, "ProcessPayout", "usecase")
	defer span.End()

	amount := pricing.ToSubunit(pr.Amount)
	switch {
	case !pr.RecipientCode.Valid || pr.RecipientCode.String == "":
		return u.fail(ctx, pr, "payment request has no transfer recipient")
	case amount <= 0:
		return u.fail(ctx, pr, "payment request amount must be greater than zero")
	}

	reference := "payout-" + pr.ID
	transfer, err := u.paystack.Transfer(ctx, paystack.TransferRequest{
		Source:    paystack.TransferSourceBalance,
		Amount:    amount,
		Recipient: pr.RecipientCode.String,
		Reason:    transferReason,
		Reference: reference,
	})
	if err != nil {
		// a previous sweep may have sent it and then failed to record it
		existing, lookupErr := u.paystack.VerifyTransfer(ctx, reference)
		if lookupErr != nil || !existing.Sent() {
			return u.fail(ctx, pr, err.Error())
		}
		u.log.Warn(ctx, "transfer already sent for payment request",
			zap.String("payment_request_id", pr.ID),
			zap.String("transfer_code", existing.TransferCode),
		)
		transfer = existing
	}

	result := response.PayoutResult{ID: pr.ID, TransferCode: transfer.TransferCode}
	if err := u.repo.MarkPaymentRequestPaid(ctx, pr.ID, transfer.TransferCode, u.now()); err != nil {
		u.log.Error(ctx, "transfer sent but payment request not updated",
			zap.String("payment_request_id", pr.ID),
			zap.String("transfer_code", transfer.TransferCode),
			zap.Error(err),
		)
		result.Error = "transfer sent but status update failed"
		return result, err
	}

	u.notify(ctx, pr, "Payout sent",
		fmt.Sprintf("Your payout of %s has been sent. Transfer code: %s.", pr.Amount.StringFixed(2), transfer.TransferCode))

	result.Success = true
	return result, nil
}

func (u *usecase) fail(ctx context.Context, pr entity.PaymentRequest, reason string) (response.PayoutResult, error) {
	var result *multierror.Error
	result = multierror.Append(result, fmt.Errorf("%s", reason))

	if err := u.repo.MarkPaymentRequestFailed(ctx, pr.ID, reason); err != nil {
		result = multierror.Append(result, err)
	}

	u.notify(ctx, pr, "Payout failed",
		fmt.Sprintf("Your payout of %s could not be processed: %s", pr.Amount.StringFixed(2), reason))

	return response.PayoutResult{ID: pr.ID, Error: reason}, result.ErrorOrNil()
}

func (u *usecase) notify(ctx context.Context, pr entity.PaymentRequest, title, message string) {
	if pr.OrganizerEmail == "" {
		return
	}

	err := u.repo.CreateNotification(ctx, entity.Notification{
		UserEmail: pr.OrganizerEmail,
		Title:     title,
		Message:   message,
		Kind:      kindPayout,
	})
	if err != nil {
		u.log.Warn(ctx, "error notify organizer", err, zap.String("payment_request_id", pr.ID))
	}
}
