package usecase

// RemovePayment soft-deletes the ledger entry with the caller as actor. The
// order status is left untouched: removing a settlement record is an
// administrative action, not a refund.
func (uc *DefaultPaymentUsecase) RemovePayment(paymentID, username string) error {
	user, err := uc.UserRepo.GetActiveByUsername(username)
	if err != nil {
		return err
	}

	if err := uc.PaymentRepo.MarkPaymentRemoved(paymentID, user.ID, username); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordPaymentRemoved()
	}
	return nil
}
