package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"konsulin-portal/internal/app/models"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/exceptions"
	"konsulin-portal/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// UpstreamObserver receives one observation per completed backend call.
// StatusCode is 0 when no response was received.
type UpstreamObserver interface {
	ObserveUpstreamRequest(resource, method string, statusCode int, duration time.Duration)
}

type Options struct {
	BaseUrl           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	HTTPClient        *http.Client
	Observer          UpstreamObserver
}

// Client speaks to the booking backend. Every path is resolved under
// /{role}, where role comes from the request or the context principal.
type Client struct {
	baseUrl    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   UpstreamObserver
	log        *zap.Logger
}

// Request describes one backend call. Path is relative to the role prefix.
type Request struct {
	Method      string
	Resource    string
	Path        string
	Query       url.Values
	Body        io.Reader
	ContentType string
	Role        constvars.Role
}

func NewClient(opts Options, logger *zap.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		baseUrl:    strings.TrimRight(opts.BaseUrl, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		observer:   opts.Observer,
		log:        logger,
	}
}

func (c *Client) GetJSON(ctx context.Context, resource, path string, query url.Values, out interface{}) error {
	return c.Do(ctx, Request{
		Method:   constvars.MethodGet,
		Resource: resource,
		Path:     path,
		Query:    query,
	}, out)
}

// SendJSON marshals payload (when non-nil) as the request body.
func (c *Client) SendJSON(ctx context.Context, method, resource, path string, payload, out interface{}) error {
	request := Request{
		Method:   method,
		Resource: resource,
		Path:     path,
	}
	if payload != nil {
		body, err := EncodeJSON(payload)
		if err != nil {
			return err
		}
		request.Body = body
		request.ContentType = constvars.MIMEApplicationJSON
	}
	return c.Do(ctx, request, out)
}

// EncodeJSON marshals payload into a request body.
func EncodeJSON(payload interface{}) (io.Reader, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return bytes.NewReader(body), nil
}

// Do sends the request and decodes a 2xx body into out, which may be nil.
// Any other status becomes an upstream error carrying the backend message.
func (c *Client) Do(ctx context.Context, request Request, out interface{}) error {
	requestID := models.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = utils.GenerateRequestID()
	}

	endpoint, err := c.buildURL(ctx, request)
	if err != nil {
		return err
	}

	c.log.Debug("transport.Client.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingUrlKey, endpoint),
	)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.log.Error("transport.Client.Do outbound throttle wait aborted",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrThrottleAborted(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, request.Body)
	if err != nil {
		c.log.Error("transport.Client.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXRequestID, requestID)
	if request.ContentType != "" {
		req.Header.Set(constvars.HeaderContentType, request.ContentType)
	}
	if principal, ok := models.PrincipalFromContext(ctx); ok && principal.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+principal.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(request, 0, start)
		c.log.Error("transport.Client.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUrlKey, endpoint),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	c.observe(request, resp.StatusCode, start)

	var reader io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get(constvars.HeaderContentEncoding), constvars.EncodingBrotli) {
		reader = brotli.NewReader(resp.Body)
	}

	bodyBytes, err := io.ReadAll(reader)
	if err != nil {
		c.log.Error("transport.Client.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrReadResponse(err, request.Resource)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := extractMessage(bodyBytes)
		c.log.Error("transport.Client.Do backend answered with error status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUrlKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("backend_message", message),
		)
		return exceptions.ErrUpstreamResponse(resp.StatusCode, message, request.Resource)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		c.log.Error("transport.Client.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUrlKey, endpoint),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, request.Resource)
	}

	c.log.Debug("transport.Client.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
	)
	return nil
}

func (c *Client) buildURL(ctx context.Context, request Request) (string, error) {
	role := request.Role
	if role == "" {
		principal, ok := models.PrincipalFromContext(ctx)
		if !ok || principal.Role == "" {
			return "", exceptions.ErrMissingPrincipal(nil)
		}
		role = principal.Role
	}
	if !role.IsValid() {
		return "", exceptions.ErrNotMatchRoleType(fmt.Errorf("unknown role %q", role))
	}

	endpoint := fmt.Sprintf("%s/%s/%s", c.baseUrl, role, strings.TrimLeft(request.Path, "/"))
	if encoded := request.Query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint, nil
}

func (c *Client) observe(request Request, statusCode int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveUpstreamRequest(request.Resource, request.Method, statusCode, time.Since(start))
}

func extractMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if message := gjson.GetBytes(body, "message").String(); message != "" {
		return message
	}
	return gjson.GetBytes(body, "error").String()
}
