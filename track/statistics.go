package track

// Statistics summarizes the allocations a Tracker has observed over its lifetime
type Statistics struct {
	// AllocationCount is the number of allocations ever registered
	AllocationCount int
	// LiveCount is the number of allocations whose payload has not yet been dropped or moved out
	LiveCount int
	// DropCount is the number of allocations whose payload was dropped by releasing the last strong reference
	DropCount int
	// UnwrapCount is the number of allocations whose payload was moved out by a uniqueness-checked extraction
	UnwrapCount int
	// PeakLiveCount is the highest LiveCount observed
	PeakLiveCount int
}

func (s *Statistics) Clear() {
	s.AllocationCount = 0
	s.LiveCount = 0
	s.DropCount = 0
	s.UnwrapCount = 0
	s.PeakLiveCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.AllocationCount += other.AllocationCount
	s.LiveCount += other.LiveCount
	s.DropCount += other.DropCount
	s.UnwrapCount += other.UnwrapCount
	s.PeakLiveCount += other.PeakLiveCount
}

// DetailedStatistics extends Statistics with a snapshot of the reference counts of every
// live allocation. Reference counts of Atomic allocations may change while the snapshot is
// being collected, so these values are only approximate when other goroutines are active.
type DetailedStatistics struct {
	Statistics
	// SharedCount is the number of live allocations with more than one strong reference
	SharedCount int
	// ObservedCount is the number of live allocations with at least one weak reference
	ObservedCount  int
	StrongCountMax int
	WeakCountMax   int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.SharedCount = 0
	s.ObservedCount = 0
	s.StrongCountMax = 0
	s.WeakCountMax = 0
}

func (s *DetailedStatistics) AddAllocation(strongCount, weakCount int) {
	if strongCount > 1 {
		s.SharedCount++
	}

	if weakCount > 0 {
		s.ObservedCount++
	}

	if strongCount > s.StrongCountMax {
		s.StrongCountMax = strongCount
	}

	if weakCount > s.WeakCountMax {
		s.WeakCountMax = weakCount
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.SharedCount += other.SharedCount
	s.ObservedCount += other.ObservedCount

	if other.StrongCountMax > s.StrongCountMax {
		s.StrongCountMax = other.StrongCountMax
	}

	if other.WeakCountMax > s.WeakCountMax {
		s.WeakCountMax = other.WeakCountMax
	}
}
