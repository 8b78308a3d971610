package sharedptr_test

type dropCounter struct {
	name  string
	drops *int
}

func (d *dropCounter) Drop() {
	*d.drops++
}

type deepValue struct {
	values []int
	clones *int
}

func (v deepValue) Clone() deepValue {
	*v.clones++
	return deepValue{
		values: append([]int(nil), v.values...),
		clones: v.clones,
	}
}
