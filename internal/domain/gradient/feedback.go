package gradient

import "time"

// DefaultFeedbackDuration is how long the "copied" status stays visible.
const DefaultFeedbackDuration = 2000 * time.Millisecond

const (
	StatusIdle   = "click above to copy css 👆"
	StatusCopied = "css copied to clipboard 🎉"
)

// FeedbackPolicy decides how overlapping copy actions interact.
type FeedbackPolicy string

const (
	// FeedbackIndependent lets every copy's timer reset the flag, so the
	// first expiry after a burst of copies hides the message.
	FeedbackIndependent FeedbackPolicy = "independent"
	// FeedbackRestart only honours the timer of the most recent copy.
	FeedbackRestart FeedbackPolicy = "restart"
)

// ParseFeedbackPolicy converts a configuration value to a policy. The empty
// string selects FeedbackIndependent.
func ParseFeedbackPolicy(s string) (FeedbackPolicy, error) {
	switch FeedbackPolicy(s) {
	case "", FeedbackIndependent:
		return FeedbackIndependent, nil
	case FeedbackRestart:
		return FeedbackRestart, nil
	default:
		return "", newDomainError(ErrInvalidPolicy, s)
	}
}

// FeedbackState is the visible state of the copy status line.
type FeedbackState int

const (
	FeedbackIdle FeedbackState = iota
	FeedbackShowingCopied
)

func (s FeedbackState) String() string {
	if s == FeedbackShowingCopied {
		return "showing_copied"
	}
	return "idle"
}

// CopyFeedback tracks the transient "copied" flag. Each Copy hands out a
// token for the reset the caller must schedule.
type CopyFeedback struct {
	policy     FeedbackPolicy
	generation uint64
	copied     bool
}

// NewCopyFeedback returns an idle flag using policy.
func NewCopyFeedback(policy FeedbackPolicy) CopyFeedback {
	if policy == "" {
		policy = FeedbackIndependent
	}
	return CopyFeedback{policy: policy}
}

// Copy marks the flag as showing and returns the expiry token.
func (f CopyFeedback) Copy() (CopyFeedback, uint64) {
	f.generation++
	f.copied = true
	return f, f.generation
}

// Expire handles the timer identified by token firing.
func (f CopyFeedback) Expire(token uint64) CopyFeedback {
	if f.policy == FeedbackRestart && token != f.generation {
		return f
	}
	f.copied = false
	return f
}

// WithPolicy switches the overlap policy without touching the flag.
func (f CopyFeedback) WithPolicy(policy FeedbackPolicy) CopyFeedback {
	if policy == "" {
		policy = FeedbackIndependent
	}
	f.policy = policy
	return f
}

// Policy returns the active overlap policy.
func (f CopyFeedback) Policy() FeedbackPolicy {
	if f.policy == "" {
		return FeedbackIndependent
	}
	return f.policy
}

// Copied reports whether the status line shows the copied message.
func (f CopyFeedback) Copied() bool {
	return f.copied
}

// State returns the state machine position.
func (f CopyFeedback) State() FeedbackState {
	if f.copied {
		return FeedbackShowingCopied
	}
	return FeedbackIdle
}

// Status returns the status line text.
func (f CopyFeedback) Status() string {
	if f.copied {
		return StatusCopied
	}
	return StatusIdle
}
