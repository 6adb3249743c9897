package Trees

import "fmt"

// Ranker is a multiset that answers rank queries. Implementations count
// duplicates: inserting the same value twice makes it count twice in every
// rank and in Size.
type Ranker[T any] interface {
	//Insert v. Always succeeds; duplicates are kept.
	Insert(v T)
	//RankOf v is the number of stored values less than v, or less than or
	//equal to v when inclusive is true. v needn't be stored.
	RankOf(v T, inclusive bool) uint
	//Size is the number of stored values counting duplicates.
	Size() uint
}

// InvalidSliceError is the panic value of From when the given slice isn't sorted
// in ascending order. The slice has Prev at index At-1 and Next at index At.
type InvalidSliceError[T any] struct {
	Prev, Next T
	At         int
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice not ascending at %d: %v before %v", e.At, e.Prev, e.Next)
}
