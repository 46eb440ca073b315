package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/mux"

	"github.com/klwxsrx/kahuna-console/pkg/strings"
)

type DataExtractor[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(r)
	if err != nil {
		return nil
	}

	return &result
}

// ParseJSONResponse decodes a resty response body regardless of its status code.
func ParseJSONResponse[T any](resp *resty.Response) (T, error) {
	var result T
	err := json.Unmarshal(resp.Body(), &result)
	if err != nil {
		return result, fmt.Errorf("%w: decode json response: %w", ErrParsingError, err)
	}

	return result, nil
}

func PathParameter[T any](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](value)
	}
}

func QueryParameter[T any](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](value)
	}
}

func Header[T any](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.Header.Get(key)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](value)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var result T
		err := json.NewDecoder(r.Body).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func parseTypedValueImpl[T any](value string) (T, error) {
	v, err := strings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
