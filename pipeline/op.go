package pipeline

import "fmt"

// Op identifies the sequence operation a descriptor applies.
type Op int

// Sequence-shaped operations.
const (
	OpChunk Op = iota + 1
	OpCollapse
	OpCompact
	OpConcat
	OpDiff
	OpFilter
	OpFilterIf
	OpFilterSeries
	OpFlatMap
	OpIntersect
	OpMap
	OpMapIf
	OpMapSeries
	OpPluck
	OpPush
	OpReject
	OpRejectSeries
	OpReverse
	OpSlice
	OpSort
	OpSplice
	OpTake
	OpTakeAndRemove
	OpTap
	OpUnion
	OpUnique
	OpUniqueBy
	OpUnshift
)

// Terminal operations.
const (
	OpAvg Op = iota + 100
	OpCount
	OpEvery
	OpEverySeries
	OpFind
	OpFindSeries
	OpFirst
	OpForEach
	OpForEachSeries
	OpGroupBy
	OpHas
	OpHasDuplicates
	OpIsEmpty
	OpIsNotEmpty
	OpJoin
	OpLast
	OpMax
	OpMedian
	OpMin
	OpPop
	OpReduce
	OpReduceRight
	OpShift
	OpSize
	OpSome
	OpSomeSeries
	OpSum
	OpToJSON
)

var opNames = map[Op]string{
	OpChunk:         "chunk",
	OpCollapse:      "collapse",
	OpCompact:       "compact",
	OpConcat:        "concat",
	OpDiff:          "diff",
	OpFilter:        "filter",
	OpFilterIf:      "filterIf",
	OpFilterSeries:  "filterSeries",
	OpFlatMap:       "flatMap",
	OpIntersect:     "intersect",
	OpMap:           "map",
	OpMapIf:         "mapIf",
	OpMapSeries:     "mapSeries",
	OpPluck:         "pluck",
	OpPush:          "push",
	OpReject:        "reject",
	OpRejectSeries:  "rejectSeries",
	OpReverse:       "reverse",
	OpSlice:         "slice",
	OpSort:          "sort",
	OpSplice:        "splice",
	OpTake:          "take",
	OpTakeAndRemove: "takeAndRemove",
	OpTap:           "tap",
	OpUnion:         "union",
	OpUnique:        "unique",
	OpUniqueBy:      "uniqueBy",
	OpUnshift:       "unshift",
	OpAvg:           "avg",
	OpCount:         "count",
	OpEvery:         "every",
	OpEverySeries:   "everySeries",
	OpFind:          "find",
	OpFindSeries:    "findSeries",
	OpFirst:         "first",
	OpForEach:       "forEach",
	OpForEachSeries: "forEachSeries",
	OpGroupBy:       "groupBy",
	OpHas:           "has",
	OpHasDuplicates: "hasDuplicates",
	OpIsEmpty:       "isEmpty",
	OpIsNotEmpty:    "isNotEmpty",
	OpJoin:          "join",
	OpLast:          "last",
	OpMax:           "max",
	OpMedian:        "median",
	OpMin:           "min",
	OpPop:           "pop",
	OpReduce:        "reduce",
	OpReduceRight:   "reduceRight",
	OpShift:         "shift",
	OpSize:          "size",
	OpSome:          "some",
	OpSomeSeries:    "someSeries",
	OpSum:           "sum",
	OpToJSON:        "toJSON",
}

// String returns the operation name.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Terminal reports whether the operation produces a value rather than a
// sequence.
func (o Op) Terminal() bool { return o >= OpAvg }
