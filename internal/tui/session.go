package tui

import "sync/atomic"

// lastAccountNumber remembers the account the user operated on last, so
// the deposit, withdrawal and statement forms can pre-fill it.
var lastAccountNumber int64

func setLastAccountNumber(number int64) {
	atomic.StoreInt64(&lastAccountNumber, number)
}

func getLastAccountNumber() int64 {
	return atomic.LoadInt64(&lastAccountNumber)
}

func clearLastAccountNumber() {
	atomic.StoreInt64(&lastAccountNumber, 0)
}
