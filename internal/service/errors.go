package service

import "errors"

var (
	ErrClientAlreadyExists = errors.New("client already exists")
	ErrClientNotFound      = errors.New("client was not found")
	ErrClientHasAccounts   = errors.New("client still owns accounts")

	ErrAccountNotFound = errors.New("account was not found")
	ErrNonZeroBalance  = errors.New("account balance is not zero")

	ErrWithdrawalLimitReached  = errors.New("withdrawal limit reached")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrAmountOverWithdrawalCap = errors.New("amount exceeds withdrawal cap")
	ErrInvalidAmount           = errors.New("invalid amount")

	ErrOperationCancelled = errors.New("operation cancelled")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
