// Package RangeSum counts the contiguous ranges of an int32 sequence whose sum
// falls in a closed interval, in O(n log n) on average.
//
// The sum of nums[k+1..i] is p[i]-p[k] where p is the prefix sum. Scanning left
// to right, the ranges ending at i with sum in [lower, upper] are the earlier
// prefixes q with p[i]-upper <= q <= p[i]-lower, which two rank queries on the
// multiset of earlier prefixes count.
package RangeSum

import "github.com/g-m-twostay/go-ostree/Trees"

// Count the pairs (i, j), 0<=i<=j<len(nums), such that nums[i]+...+nums[j] is in
// [lower, upper]. Sums and bounds are computed in 64 bits, so no input overflows.
// The multiset of prefixes isn't balanced; sorted prefix sums, for example all
// positive input, degrade Count to O(n^2).
func Count(nums []int32, lower, upper int32) int64 {
	return CountWith(Trees.New[int64, uint](), nums, lower, upper)
}

// CountWith is Count using r to hold the prefix sums. r must be empty; it holds
// every prefix sum of nums afterwards, except when nothing needs counting.
func CountWith(r Trees.Ranker[int64], nums []int32, lower, upper int32) (sum int64) {
	if len(nums) == 0 || lower > upper {
		return 0
	}
	lo, hi := int64(lower), int64(upper)
	var p int64
	for _, x := range nums {
		p += int64(x)
		// the range [0, i].
		if lo <= p && p <= hi {
			sum++
		}
		to := r.RankOf(p-lo, true)
		from := r.RankOf(p-hi, false)
		sum += int64(to - from)
		r.Insert(p)
	}
	return
}

// Naive counts the same pairs as Count by trying all of them.
// Time: O(n^2)
func Naive(nums []int32, lower, upper int32) (sum int64) {
	lo, hi := int64(lower), int64(upper)
	for i := range nums {
		var s int64
		for _, x := range nums[i:] {
			s += int64(x)
			if lo <= s && s <= hi {
				sum++
			}
		}
	}
	return
}
