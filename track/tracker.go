package track

import (
	"context"
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/arsenal/sharedptr/internal/utils"
	"golang.org/x/exp/slog"
)

// ReleaseReason indicates why an allocation stopped being live
type ReleaseReason byte

const (
	// ReleaseDropped indicates that the last strong reference was released and the payload dropped
	ReleaseDropped ReleaseReason = iota
	// ReleaseUnwrapped indicates that the payload was moved out of the allocation by its sole owner
	ReleaseUnwrapped
)

var releaseReasonMapping = make(map[ReleaseReason]string)

func (r ReleaseReason) String() string {
	return releaseReasonMapping[r]
}

func init() {
	releaseReasonMapping[ReleaseDropped] = "ReleaseDropped"
	releaseReasonMapping[ReleaseUnwrapped] = "ReleaseUnwrapped"
}

// Counts is implemented by tracked allocations so that the tracker can report their
// reference counts without owning a reference
type Counts interface {
	StrongCount() int
	WeakCount() int
}

type allocationRecord struct {
	id         uint64
	typeName   string
	discipline string
	counts     Counts
}

// Tracker records every allocation registered with it until its payload is dropped or moved
// out. It is used to find leaked strong references: an allocation that is still live when
// Destroy is called was never released. A Tracker is entirely optional and has no effect
// on the semantics of the allocations it observes.
type Tracker struct {
	mutex  utils.OptionalRWMutex
	logger *slog.Logger
	flags  CreateFlags
	name   string

	nextID    uint64
	destroyed bool
	live      *swiss.Map[uint64, *allocationRecord]
	stats     Statistics
}

// New creates a new Tracker
//
// logger - The logger that debug traces and unreleased allocations are reported to. If nil,
// slog.Default() is used
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, options CreateOptions) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}

	capacity := options.InitialCapacity
	if capacity <= 0 {
		capacity = defaultInitialCapacity
	}

	return &Tracker{
		mutex: utils.OptionalRWMutex{
			UseMutex: options.Flags&CreateExternallySynchronized == 0,
		},
		logger: logger,
		flags:  options.Flags,
		name:   options.Name,
		live:   swiss.NewMap[uint64, *allocationRecord](uint32(capacity)),
	}
}

// Register begins tracking a new allocation and returns the id it should be released with
func (t *Tracker) Register(typeName string, discipline string, counts Counts) uint64 {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.destroyed {
		panic(fmt.Sprintf("attempting to register a %s allocation with a destroyed tracker", typeName))
	}

	t.nextID++
	id := t.nextID

	t.live.Put(id, &allocationRecord{
		id:         id,
		typeName:   typeName,
		discipline: discipline,
		counts:     counts,
	})

	t.stats.AllocationCount++
	t.stats.LiveCount = t.live.Count()
	if t.stats.LiveCount > t.stats.PeakLiveCount {
		t.stats.PeakLiveCount = t.stats.LiveCount
	}

	if t.flags&CreateLogAllocations != 0 {
		t.logger.Debug("Tracker::Register",
			slog.String("Tracker", t.name),
			slog.Uint64("Id", id),
			slog.String("Type", typeName),
			slog.String("Discipline", discipline),
		)
	}

	return id
}

// Release stops tracking an allocation. Allocations may still be released after the
// tracker has been destroyed, in which case Release does nothing.
func (t *Tracker) Release(id uint64, reason ReleaseReason) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.destroyed {
		return
	}

	record, ok := t.live.Get(id)
	if !ok {
		panic(fmt.Sprintf("attempting to release allocation %d, which is not tracked", id))
	}
	t.live.Delete(id)

	switch reason {
	case ReleaseDropped:
		t.stats.DropCount++
	case ReleaseUnwrapped:
		t.stats.UnwrapCount++
	default:
		panic(fmt.Sprintf("unknown release reason: %d", reason))
	}
	t.stats.LiveCount = t.live.Count()

	if t.flags&CreateLogAllocations != 0 {
		t.logger.Debug("Tracker::Release",
			slog.String("Tracker", t.name),
			slog.Uint64("Id", id),
			slog.String("Type", record.typeName),
			slog.String("Reason", reason.String()),
		)
	}
}

// LiveCount returns the number of allocations whose payload has not been dropped or moved out
func (t *Tracker) LiveCount() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.live.Count()
}

// Statistics returns a copy of the tracker's lifetime statistics
func (t *Tracker) Statistics() Statistics {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.stats
}

// AddStatistics sums this tracker's statistics into the statistics currently present in the
// provided Statistics object
func (t *Tracker) AddStatistics(stats *Statistics) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	stats.AddStatistics(&t.stats)
}

// AddDetailedStatistics sums this tracker's statistics, and the reference counts of every
// live allocation, into the statistics currently present in the provided DetailedStatistics object
func (t *Tracker) AddDetailedStatistics(stats *DetailedStatistics) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	stats.Statistics.AddStatistics(&t.stats)
	t.live.Iter(func(id uint64, record *allocationRecord) bool {
		stats.AddAllocation(record.counts.StrongCount(), record.counts.WeakCount())
		return false
	})
}

// Validate performs internal consistency checks on the tracker and the allocations it is
// observing. A live allocation with no strong references indicates that its release was
// never reported.
func (t *Tracker) Validate() error {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if t.destroyed {
		return nil
	}

	expectedLive := t.stats.AllocationCount - t.stats.DropCount - t.stats.UnwrapCount
	if expectedLive != t.live.Count() {
		return errors.Errorf("the tracker expects %d live allocations but is tracking %d", expectedLive, t.live.Count())
	}

	var err error
	t.live.Iter(func(id uint64, record *allocationRecord) bool {
		if record.counts.StrongCount() <= 0 {
			err = errors.Newf("allocation %d (%s) has no strong references but was never released", id, record.typeName)
			return true
		}
		if record.counts.WeakCount() < 0 {
			err = errors.Newf("allocation %d (%s) has a negative weak count", id, record.typeName)
			return true
		}

		return false
	})

	return err
}

func (t *Tracker) sortedRecords() []*allocationRecord {
	records := make([]*allocationRecord, 0, t.live.Count())
	t.live.Iter(func(id uint64, record *allocationRecord) bool {
		records = append(records, record)
		return false
	})

	slices.SortFunc(records, func(left, right *allocationRecord) int {
		switch {
		case left.id < right.id:
			return -1
		case left.id > right.id:
			return 1
		default:
			return 0
		}
	})

	return records
}

// BuildStatsString writes a json object describing the tracker's statistics and every live
// allocation, in registration order
func (t *Tracker) BuildStatsString(writer *jwriter.Writer) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	obj := writer.Object()
	defer obj.End()

	if t.name != "" {
		obj.Name("Name").String(t.name)
	}
	obj.Name("Flags").String(t.flags.String())

	statsObj := obj.Name("Statistics").Object()
	statsObj.Name("Allocations").Int(t.stats.AllocationCount)
	statsObj.Name("Live").Int(t.stats.LiveCount)
	statsObj.Name("Dropped").Int(t.stats.DropCount)
	statsObj.Name("Unwrapped").Int(t.stats.UnwrapCount)
	statsObj.Name("PeakLive").Int(t.stats.PeakLiveCount)
	statsObj.End()

	arrayState := obj.Name("LiveAllocations").Array()
	defer arrayState.End()

	for _, record := range t.sortedRecords() {
		allocObj := arrayState.Object()
		allocObj.Name("Id").Int(int(record.id))
		allocObj.Name("Type").String(record.typeName)
		allocObj.Name("Discipline").String(record.discipline)
		allocObj.Name("StrongCount").Int(record.counts.StrongCount())
		allocObj.Name("WeakCount").Int(record.counts.WeakCount())
		allocObj.End()
	}
}

// StatsString returns the json document produced by BuildStatsString
func (t *Tracker) StatsString() (string, error) {
	writer := jwriter.NewWriter()
	t.BuildStatsString(&writer)

	if err := writer.Error(); err != nil {
		return "", errors.Wrap(err, "failed to write tracker statistics")
	}

	return string(writer.Bytes()), nil
}

// Destroy stops the tracker. Every allocation that is still live is logged as unreleased
// and an error is returned if there were any. Allocations released after Destroy are ignored.
func (t *Tracker) Destroy() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.destroyed {
		return nil
	}
	t.destroyed = true

	unreleased := t.live.Count()
	if unreleased == 0 {
		return nil
	}

	for _, record := range t.sortedRecords() {
		t.logUnreleasedAllocation(record)
	}
	t.live.Clear()

	return errors.Newf("%d allocations were not released before the destruction of this tracker", unreleased)
}

func (t *Tracker) logUnreleasedAllocation(record *allocationRecord) {
	t.logger.LogAttrs(context.Background(), slog.LevelError, "[UNRELEASED ALLOCATION] allocation was never released",
		slog.String("tracker", t.name),
		slog.Uint64("id", record.id),
		slog.String("type", record.typeName),
		slog.String("discipline", record.discipline),
		slog.Int("strongCount", record.counts.StrongCount()),
		slog.Int("weakCount", record.counts.WeakCount()),
	)
}
