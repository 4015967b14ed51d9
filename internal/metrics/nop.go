package metrics

type nop struct{}

// Nop returns a Metrics that discards everything.
func Nop() Metrics { return nop{} }

func (nop) IncCommandApplied(string)         {}
func (nop) IncCommandRejected(string)        {}
func (nop) IncPersistFailures()              {}
func (nop) IncNotifSent(string)              {}
func (nop) IncNotifFailed(string)            {}
func (nop) SetHistoryDepth(string, int, int) {}
func (nop) SetStartupTime(float64)           {}
