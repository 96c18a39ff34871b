package interfaces

// IDeliveryMetrics receives delivery counters. Implementations must be safe
// for concurrent use.
type IDeliveryMetrics interface {
	ObserveChannel(channel, outcome string)
	ObserveRun(workflow, status string)
}
