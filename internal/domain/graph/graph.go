package graph

import (
	"errors"
	"fmt"
	"regexp"
)

// StoreType selects the backing store the GaaS API provisions for a graph.
type StoreType string

const (
	StoreTypeMapStore  StoreType = "mapStore"
	StoreTypeAccumulo  StoreType = "accumulo"
	StoreTypeFederated StoreType = "federatedStore"
)

var storeTypes = []StoreType{StoreTypeMapStore, StoreTypeAccumulo, StoreTypeFederated}

// StoreTypes returns every store type the API accepts, in display order.
func StoreTypes() []StoreType {
	out := make([]StoreType, len(storeTypes))
	copy(out, storeTypes)
	return out
}

func (s StoreType) Valid() bool {
	for _, st := range storeTypes {
		if st == s {
			return true
		}
	}
	return false
}

func (s StoreType) String() string { return string(s) }

func ParseStoreType(v string) (StoreType, error) {
	st := StoreType(v)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown store type %q", ErrValidation, v)
	}
	return st, nil
}

// Graph is a read-only view of a remote graph record.
type Graph struct {
	GraphID     string `json:"graphId"`
	Description string `json:"description"`
}

func New(graphID, description string) Graph {
	return Graph{GraphID: graphID, Description: description}
}

// ErrValidation marks input the GaaS API would reject with "Validation failed".
var ErrValidation = errors.New("validation failed")

// Detail strings match the ones the API returns so callers can surface either.
const (
	DetailIDRequired          = "Graph id should not be null"
	DetailIDCharset           = "Graph can contain only digits,lowercase letters or _ "
	DetailDescriptionRequired = "Description should not be empty"
)

var idPattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidationError carries the API-compatible detail message.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return "validation failed: " + e.Detail }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func IsValidID(id string) bool { return idPattern.MatchString(id) }

func ValidateID(id string) error {
	if id == "" {
		return &ValidationError{Detail: DetailIDRequired}
	}
	if !IsValidID(id) {
		return &ValidationError{Detail: DetailIDCharset}
	}
	return nil
}

func ValidateDescription(description string) error {
	if description == "" {
		return &ValidationError{Detail: DetailDescriptionRequired}
	}
	return nil
}
