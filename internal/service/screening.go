package service

// ScreenResult is the verdict of the spam screen.
type ScreenResult int

const (
	Accept ScreenResult = iota
	Suppress
)

func (r ScreenResult) String() string {
	if r == Suppress {
		return "suppress"
	}
	return "accept"
}

// IntakeValidator rejects automated submissions. Browsers leave the hidden
// honeypot field empty; anything in it marks the sender as a bot.
type IntakeValidator struct{}

func (IntakeValidator) Screen(honeypot string) ScreenResult {
	if honeypot != "" {
		return Suppress
	}
	return Accept
}
