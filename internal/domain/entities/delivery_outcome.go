package entities

// DeliveryStatus is the three-valued summary of a delivery run.
type DeliveryStatus string

const (
	DeliveryStatusSuccess        DeliveryStatus = "success"
	DeliveryStatusPartialSuccess DeliveryStatus = "partial_success"
	DeliveryStatusFailed         DeliveryStatus = "failed"
)

type OutcomeKind int

const (
	OutcomeNotAttempted OutcomeKind = iota
	OutcomeSent
	OutcomeFailed
	OutcomeSkipped
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "not_attempted"
	}
}

// ChannelOutcome records what happened on one channel (email or SMS).
// Reason is set for Failed and Skipped only.
type ChannelOutcome struct {
	Kind   OutcomeKind
	Reason string
}

func NotAttempted() ChannelOutcome { return ChannelOutcome{Kind: OutcomeNotAttempted} }

func Sent() ChannelOutcome { return ChannelOutcome{Kind: OutcomeSent} }

func Failed(reason string) ChannelOutcome {
	return ChannelOutcome{Kind: OutcomeFailed, Reason: reason}
}

func Skipped(reason string) ChannelOutcome {
	return ChannelOutcome{Kind: OutcomeSkipped, Reason: reason}
}

// Attempted is true when a send was actually tried. Skips do not count.
func (o ChannelOutcome) Attempted() bool {
	return o.Kind == OutcomeSent || o.Kind == OutcomeFailed
}

func (o ChannelOutcome) Succeeded() bool {
	return o.Kind == OutcomeSent
}

// DeliveryResult pairs the outcomes of both channels for one appointment.
type DeliveryResult struct {
	Email ChannelOutcome
	SMS   ChannelOutcome
}

func (r DeliveryResult) Status() DeliveryStatus {
	return Classify(r.Email, r.SMS)
}

// Classify maps channel outcomes to a delivery status. Only attempted
// channels are judged; a run where nothing was attempted is a failure.
func Classify(outcomes ...ChannelOutcome) DeliveryStatus {
	attempted, sent := 0, 0
	for _, o := range outcomes {
		if !o.Attempted() {
			continue
		}
		attempted++
		if o.Succeeded() {
			sent++
		}
	}

	switch {
	case sent == 0:
		return DeliveryStatusFailed
	case sent == attempted:
		return DeliveryStatusSuccess
	default:
		return DeliveryStatusPartialSuccess
	}
}
