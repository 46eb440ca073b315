package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/klwxsrx/kahuna-console/pkg/log"
)

const (
	HeaderAuthorization    = "Authorization"
	DefaultRequestIDHeader = "X-Request-ID"

	bearerPrefix = "Bearer "
)

type (
	ClientOption func(*ClientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	ClientImpl struct {
		DestinationName string
		RESTClient      *resty.Client
		opts            []ClientOption
	}

	// BearerTokenProvider is asked for a token on every outgoing request.
	BearerTokenProvider func(ctx context.Context) (token string, ok bool)

	// StatusHandler reacts to a response with a particular status code, its result does not change the response.
	StatusHandler func(ctx context.Context, resp *resty.Response)
)

func NewClient(opts ...ClientOption) Client {
	client := ClientImpl{
		DestinationName: "",
		RESTClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c ClientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.RESTClient.NewRequest().SetContext(ctx)
}

func (c ClientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *ClientImpl) {
		c.DestinationName = name
		c.RESTClient.SetBaseURL(url)
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.SetTimeout(timeout)
	}
}

func WithRequestID(headerName string) ClientOption {
	if headerName == "" {
		headerName = DefaultRequestIDHeader
	}

	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(headerName) != "" {
				return nil
			}

			req.SetHeader(headerName, uuid.NewString())
			return nil
		})
	}
}

// WithBearerToken attaches the provided token unless the request already carries an Authorization header.
func WithBearerToken(provider BearerTokenProvider) ClientOption {
	return func(c *ClientImpl) {
		c.RESTClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(HeaderAuthorization) != "" {
				return nil
			}

			token, ok := provider(req.Context())
			if !ok || token == "" {
				return nil
			}

			req.SetHeader(HeaderAuthorization, bearerPrefix+token)
			return nil
		})
	}
}

// WithStatusHandler calls handler for every response with the given status code,
// requests whose path ends with one of excludedPathSuffixes are skipped.
func WithStatusHandler(statusCode int, handler StatusHandler, excludedPathSuffixes ...string) ClientOption {
	isExcluded := func(resp *resty.Response) bool {
		path := requestPath(resp)
		for _, suffix := range excludedPathSuffixes {
			if strings.HasSuffix(path, suffix) {
				return true
			}
		}
		return false
	}

	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() != statusCode || isExcluded(resp) {
				return nil
			}

			handler(resp.Request.Context(), resp)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	const destinationNameLogField = "destinationName"
	return func(c *ClientImpl) {
		c.RESTClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			l := logger.With(log.Fields{
				"httpRequest": log.Fields{
					destinationNameLogField: getDestinationNameForLogging(c),
					"method":                resp.Request.Method,
					"path":                  requestPath(resp),
					"code":                  resp.StatusCode(),
					"duration":              resp.Time().String(),
				},
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				l.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				l.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.RESTClient.OnError(func(req *resty.Request, err error) {
			fields := log.Fields{
				destinationNameLogField: getDestinationNameForLogging(c),
				"method":                req.Method,
				"url":                   req.URL,
			}

			logger.
				With(log.Fields{"httpRequest": fields}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func requestPath(resp *resty.Response) string {
	if resp.Request == nil {
		return ""
	}
	if resp.Request.RawRequest != nil && resp.Request.RawRequest.URL != nil {
		return resp.Request.RawRequest.URL.Path
	}
	return resp.Request.URL
}

func getDestinationNameForLogging(c *ClientImpl) string {
	if c.DestinationName != "" {
		return c.DestinationName
	}
	return "-"
}
