package sharedptr

// noCopy may be embedded into handle types so that go vet's copylocks checker
// reports copies by value. Moving a handle must go through Clone or a consuming method.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
