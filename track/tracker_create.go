package track

import (
	"strings"
)

// CreateFlags indicate specific tracker behaviors to activate or deactivate
type CreateFlags int32

var createFlagsMapping = make(map[CreateFlags]string)

func (f CreateFlags) Register(str string) {
	createFlagsMapping[f] = str
}

func (f CreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	for bit := CreateFlags(1); bit != 0 && bit <= f; bit <<= 1 {
		if f&bit == 0 {
			continue
		}

		name, ok := createFlagsMapping[bit]
		if !ok {
			name = "Unknown"
		}
		names = append(names, name)
	}

	return strings.Join(names, "|")
}

const (
	// CreateExternallySynchronized ensures that this tracker will not be synchronized internally.
	// The consumer must guarantee that every allocation registered with it, and the tracker itself,
	// are used from only one goroutine at a time. This is suitable for trackers that only observe
	// Local allocations.
	CreateExternallySynchronized CreateFlags = 1 << iota
	// CreateLogAllocations causes every registration and release to be written to the tracker's
	// logger at debug level
	CreateLogAllocations
)

func init() {
	CreateExternallySynchronized.Register("CreateExternallySynchronized")
	CreateLogAllocations.Register("CreateLogAllocations")
}

// CreateOptions contains optional settings when creating a tracker
type CreateOptions struct {
	// Flags indicates specific tracker behaviors to activate or deactivate
	Flags CreateFlags
	// Name is an optional label included in log messages and statistics dumps
	Name string
	// InitialCapacity is a sizing hint for the number of allocations expected to be live at once
	InitialCapacity int
}

const defaultInitialCapacity = 42
