// Package storage holds the key-value backends the weight log and its
// averages are persisted in. Values are opaque strings, every Set is a
// full overwrite of the key.
package storage

import "errors"

var ErrNotFound = errors.New("key not found")
