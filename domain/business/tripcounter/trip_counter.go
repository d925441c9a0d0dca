package tripcounter

import (
	"cmp"
	"sort"
)

// TripCounter struct that counts how many trips share each value of a field
// + counters: amount of trips per value
// + less: natural order of the values, used to break ties
type TripCounter[K comparable] struct {
	counters map[K]int
	less     func(a, b K) bool
}

// ValueCount is the amount of trips that share Value
type ValueCount[K comparable] struct {
	Value K
	Count int
}

func NewTripCounter[K comparable](less func(a, b K) bool) *TripCounter[K] {
	return &TripCounter[K]{
		counters: make(map[K]int),
		less:     less,
	}
}

// NewOrderedTripCounter returns a TripCounter for values with a built-in order (strings, ints)
func NewOrderedTripCounter[K cmp.Ordered]() *TripCounter[K] {
	return NewTripCounter(func(a, b K) bool { return a < b })
}

func (tc *TripCounter[K]) UpdateCounter(value K) {
	tc.counters[value] += 1
}

func (tc *TripCounter[K]) GetCounter(value K) int {
	return tc.counters[value]
}

func (tc *TripCounter[K]) IsEmpty() bool {
	return len(tc.counters) == 0
}

// Modes returns every value with the highest count, in natural order
func (tc *TripCounter[K]) Modes() []K {
	maxCount := 0
	for _, count := range tc.counters {
		if count > maxCount {
			maxCount = count
		}
	}

	var modes []K
	for value, count := range tc.counters {
		if count == maxCount {
			modes = append(modes, value)
		}
	}
	sort.Slice(modes, func(i, j int) bool { return tc.less(modes[i], modes[j]) })
	return modes
}

// MostCommon returns the first mode in natural order. ok is false when nothing was counted
func (tc *TripCounter[K]) MostCommon() (value K, ok bool) {
	modes := tc.Modes()
	if len(modes) == 0 {
		return value, false
	}
	return modes[0], true
}

// ValueCounts returns every counted value, most frequent first. Ties keep natural order
func (tc *TripCounter[K]) ValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(tc.counters))
	for value, count := range tc.counters {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: count})
	}
	sort.Slice(valueCounts, func(i, j int) bool {
		if valueCounts[i].Count != valueCounts[j].Count {
			return valueCounts[i].Count > valueCounts[j].Count
		}
		return tc.less(valueCounts[i].Value, valueCounts[j].Value)
	})
	return valueCounts
}
