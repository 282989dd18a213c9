package sequence

import (
	"slices"
	"strings"

	"github.com/goccy/go-json"

	apperrors "github.com/kbukum/lazycollect/errors"
)

func (e *Engine) numbers(operation string) ([]float64, error) {
	out := make([]float64, len(e.items))
	for i, item := range e.items {
		f, ok := toNumber(item)
		if !ok {
			return nil, apperrors.NotNumeric(operation, i, item)
		}
		out[i] = f
	}
	return out, nil
}

func (e *Engine) nonEmptyNumbers(operation string) ([]float64, error) {
	if len(e.items) == 0 {
		return nil, apperrors.EmptySequence(operation)
	}
	return e.numbers(operation)
}

// Sum adds the items. The sum of no items is 0.
func (e *Engine) Sum() (float64, error) {
	nums, err := e.numbers("sum")
	if err != nil {
		return 0, err
	}
	var total float64
	for _, n := range nums {
		total += n
	}
	return total, nil
}

// Avg returns the arithmetic mean of the items.
func (e *Engine) Avg() (float64, error) {
	nums, err := e.nonEmptyNumbers("avg")
	if err != nil {
		return 0, err
	}
	var total float64
	for _, n := range nums {
		total += n
	}
	return total / float64(len(nums)), nil
}

// Min returns the smallest item.
func (e *Engine) Min() (float64, error) {
	nums, err := e.nonEmptyNumbers("min")
	if err != nil {
		return 0, err
	}
	return slices.Min(nums), nil
}

// Max returns the largest item.
func (e *Engine) Max() (float64, error) {
	nums, err := e.nonEmptyNumbers("max")
	if err != nil {
		return 0, err
	}
	return slices.Max(nums), nil
}

// Median returns the middle value of the numerically sorted items, or the
// mean of the two middle values for an even count.
func (e *Engine) Median() (float64, error) {
	nums, err := e.nonEmptyNumbers("median")
	if err != nil {
		return 0, err
	}
	slices.Sort(nums)
	mid := len(nums) / 2
	if len(nums)%2 == 1 {
		return nums[mid], nil
	}
	return (nums[mid-1] + nums[mid]) / 2, nil
}

// Join renders the items as strings separated by sep. nil renders empty.
func (e *Engine) Join(sep string) string {
	parts := make([]string, len(e.items))
	for i, item := range e.items {
		parts[i] = stringify(item)
	}
	return strings.Join(parts, sep)
}

// GroupBy groups the items by the value at key. Dotted keys address nested
// fields; a missing or nil value groups under "".
func (e *Engine) GroupBy(key string) (*Groups, error) {
	if key == "" {
		return nil, apperrors.InvalidArgument("groupBy", "key must not be empty")
	}
	groups := newGroups()
	for _, item := range e.items {
		v, _ := Field(item, key)
		groups.add(stringify(v), item)
	}
	return groups, nil
}

// ToJSON encodes the items as a JSON array.
func (e *Engine) ToJSON() (string, error) {
	data, err := json.Marshal(e.items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
