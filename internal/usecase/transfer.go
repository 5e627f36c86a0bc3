package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mobile-transfer/internal/domain"
)

// TransferUseCase orchestrates one transfer: form review, submission and the
// session updates that follow a successful submission.
type TransferUseCase struct {
	session       *Session
	validator     *TransferValidator
	processor     TransferProcessor
	notifications *NotificationCenter
	opts          options
}

// NewTransferUseCase wires the transfer flow. notifications may be nil.
func NewTransferUseCase(session *Session, validator *TransferValidator, processor TransferProcessor, notifications *NotificationCenter, opts ...Option) *TransferUseCase {
	return &TransferUseCase{
		session:       session,
		validator:     validator,
		processor:     processor,
		notifications: notifications,
		opts:          buildOptions(opts),
	}
}

// Start is called when the transfer screen opens: leftovers of an abandoned
// attempt are discarded.
func (uc *TransferUseCase) Start() {
	uc.session.ClearTransfer()
}

// Review validates the form against the owner's current balance. A valid form
// becomes the session's current transfer; an invalid one discards any draft
// accepted earlier, so nothing can be submitted until the form is fixed.
func (uc *TransferUseCase) Review(form TransferForm) domain.ValidationResult {
	result := uc.validator.Validate(form, uc.session.Owner())
	if !result.Valid() {
		uc.session.ClearTransfer()
		return result
	}
	patch, err := form.Patch()
	if err != nil {
		// Validate already parsed the amount.
		uc.session.ClearTransfer()
		result.Amount = domain.AmountInvalid
		return result
	}
	uc.session.SetTransferData(patch)
	return result
}

// Submit sends the current transfer. While a submission is in flight further
// calls return domain.ErrSubmissionInProgress without doing anything. Failures
// leave balance and history untouched and are never retried here.
func (uc *TransferUseCase) Submit(ctx context.Context) (domain.Transaction, error) {
	if uc.session.IsProcessing() {
		return domain.Transaction{}, domain.ErrSubmissionInProgress
	}
	if !uc.session.Auth().Any() {
		return domain.Transaction{}, domain.ErrNotAuthenticated
	}
	draft, ok := uc.session.CurrentTransfer()
	if !ok {
		return domain.Transaction{}, domain.ErrNoCurrentTransfer
	}
	req, err := draft.Request()
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("could not build transfer request: %w", err)
	}
	if result := uc.validator.ValidateRequest(req, uc.session.Owner()); !result.Valid() {
		return domain.Transaction{}, fmt.Errorf("%w: %+v", domain.ErrInvalidTransfer, result.Messages())
	}

	if !uc.session.TryBeginProcessing() {
		return domain.Transaction{}, domain.ErrSubmissionInProgress
	}
	defer uc.session.SetProcessing(false)

	logger := uc.opts.logger.With(
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("transfer_type", string(req.TransferType)),
		zap.String("bank", req.Bank),
	)
	logger.Info("submitting transfer")

	tx, err := uc.processor.ProcessTransfer(ctx, req)
	if err != nil {
		logger.Warn("transfer failed", zap.Error(err))
		uc.session.SetError(domain.UserMessage(err))
		return domain.Transaction{}, fmt.Errorf("could not process transfer: %w", err)
	}
	if tx.TransferType == "" {
		tx.TransferType = req.TransferType
	}

	owner := uc.session.CompleteTransfer(tx, req.Amount)
	logger.Info("transfer completed", zap.String("transaction_id", tx.ID), zap.String("balance", owner.Balance.StringFixed(2)))

	if uc.notifications != nil {
		uc.notifications.Add(domain.Notification{
			Kind:        domain.NotificationTransaction,
			Title:       "Transfer Completed",
			Message:     fmt.Sprintf("Your transfer of %s to %s has been completed successfully.", domain.FormatCurrency(tx.Amount), tx.RecipientName),
			Priority:    domain.PriorityMedium,
			ActionLabel: "View Receipt",
		})
	}
	return tx, nil
}
