package preview

// reseedMsg replaces the seed of the sample batch
type reseedMsg struct {
	seed uint64
}
