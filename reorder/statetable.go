package reorder

import "github.com/npillmayer/khmerlegacy/khmer"

// clusterStates is the transition table of the visual cluster segmenter.
// Rows are states, columns are syllable classes. A negative entry ends the
// current cluster without consuming the input code-point.
var clusterStates = [...][khmer.ClassCount]int8{
	// Res, Con, Con2, Con3, ZWNJ, Shifter, Robat, Coeng, DepVowel, SignAbove, SignAfter, ZWJ
	{1, 2, 2, 2, 1, 1, 1, 6, 1, 1, 1, 2},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, 3, 4, 5, 6, 16, 17, 1, -1},
	{-1, -1, -1, -1, -1, 4, -1, -1, 16, -1, -1, -1},
	{-1, -1, -1, -1, 15, -1, -1, 6, 16, 17, 1, 14},
	{-1, -1, -1, -1, -1, -1, -1, -1, 20, -1, 1, -1},
	{-1, 7, 8, 9, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, 12, 13, -1, 10, 16, 17, 1, 14},
	{-1, -1, -1, -1, 12, 13, -1, -1, 16, 17, 1, 14},
	{-1, -1, -1, -1, 12, 13, -1, 10, 16, 17, 1, 14},
	{-1, 11, 11, 11, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, 15, -1, -1, -1, 16, 17, 1, 14},
	{-1, -1, -1, -1, -1, 13, -1, -1, 16, -1, -1, -1},
	{-1, -1, -1, -1, 15, -1, -1, -1, 16, 17, 1, 14},
	{-1, -1, -1, -1, -1, -1, -1, -1, 16, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, 16, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, 17, 1, 18},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 1, 18},
	{-1, -1, -1, -1, -1, -1, -1, 19, -1, -1, -1, -1},
	{-1, 1, -1, 1, -1, -1, -1, -1, -1, -1, -1, -1},
	{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 1, -1},
}

// nextState returns the successor of state for an input of class c.
func nextState(state int8, c khmer.SyllableClass) int8 {
	if state < 0 || int(state) >= len(clusterStates) || c >= khmer.ClassCount {
		return -1
	}
	return clusterStates[state][c]
}
