package rlp

import (
	"encoding/json"
	"fmt"
)

// FromValue converts a dynamically typed value into an Item. Strings and byte slices become String, slices become
// List. Any other type, including nil, is rejected with ErrInvalidInput.
func FromValue(value any) (Item, error) {
	switch v := value.(type) {
	case Item:
		return v, nil
	case string:
		return String(v), nil
	case []byte:
		return String(v), nil
	case []string:
		return Strings(v...), nil
	case []any:
		l := make(List, len(v))
		for i, child := range v {
			item, err := FromValue(child)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			l[i] = item
		}
		return l, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInput, value)
	}
}

// EncodeValue is Encode(FromValue(value)).
func EncodeValue(value any) ([]byte, error) {
	item, err := FromValue(value)
	if err != nil {
		return nil, err
	}
	return Encode(item)
}

// ParseJSON reads an item from a JSON document made of strings and arrays only, e.g. ["cat", ["dog"]].
func ParseJSON(data []byte) (Item, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return FromValue(value)
}
