package webdemo

// Demo signal names accepted by Session.LoadDemo.
const (
	SignalBurst = "burst"
	SignalSine  = "sine"
	SignalNoise = "noise"
)

// DemoSignals lists the accepted demo signal names in display order.
var DemoSignals = []string{SignalBurst, SignalSine, SignalNoise}
