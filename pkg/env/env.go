package env

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgstrings "github.com/klwxsrx/kahuna-console/pkg/strings"
)

var (
	ErrNotFound     = errors.New("env not found")
	ErrInvalidValue = errors.New("env has invalid value")
)

type availableTypes interface {
	bool | int | uint | float64 | string | time.Time | time.Duration | uuid.UUID
}

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T availableTypes](key string) (T, error) {
	var blank T
	str, ok := lookup(key)
	if !ok {
		return blank, notFoundError[T](key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, invalidValueError[T](key)
	}
	return v, nil
}

// ParseOr returns def when the variable is not set, an invalid value is still an error.
func ParseOr[T availableTypes](key string, def T) (T, error) {
	v, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	return v, err
}

func ParseOptional[T availableTypes](key string) (*T, error) {
	v, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ParseList[T availableTypes](key string, delimiter string) ([]T, error) {
	str, ok := lookup(key)
	if !ok {
		return nil, notFoundError[[]T](key)
	}

	strList := strings.Split(str, delimiter)
	resultList := make([]T, 0, len(strList))
	for _, str := range strList {
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		t, err := pkgstrings.ParseTypedValue[T](str)
		if err != nil {
			return nil, invalidValueError[[]T](key)
		}
		resultList = append(resultList, t)
	}

	return resultList, nil
}

// lookup treats an empty value as unset, so VAR= in a .env file falls back to defaults.
func lookup(key string) (string, bool) {
	str, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(str) == "" {
		return "", false
	}
	return str, true
}

func notFoundError[T any](key string) error {
	var blank T
	return fmt.Errorf("%w: %s with type %T", ErrNotFound, key, blank)
}

func invalidValueError[T any](key string) error {
	var blank T
	return fmt.Errorf("%w: %s with type %T", ErrInvalidValue, key, blank)
}
