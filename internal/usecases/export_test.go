package usecases

import "time"

// SetNowForTest replaces the clock and returns a restore func.
func SetNowForTest(f func() time.Time) func() {
	prev := timeNow
	timeNow = f
	return func() { timeNow = prev }
}

// SetReferralCodeGeneratorForTest replaces the code generator and returns a restore func.
func SetReferralCodeGeneratorForTest(f func() (string, error)) func() {
	prev := newReferralCode
	newReferralCode = f
	return func() { newReferralCode = prev }
}
