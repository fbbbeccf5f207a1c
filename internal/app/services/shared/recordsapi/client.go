package recordsapi

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"cpn-service/internal/app/config"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// UnauthorizedHook is called when the records API rejects a bearer token,
// so the owning session can be destroyed process-wide.
type UnauthorizedHook func(ctx context.Context, sessionID string)

// Client is the shared HTTP adapter for the remote records API. Domain
// clients compose it per resource. Outbound calls share one rate limiter
// so a burst of admin activity cannot hammer the records backend.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	limiter        *rate.Limiter
	log            *zap.Logger
	onUnauthorized UnauthorizedHook
}

func NewClient(cfg config.Records, logger *zap.Logger, onUnauthorized UnauthorizedHook) *Client {
	return &Client{
		baseURL:        cfg.BaseUrl,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:            logger,
		onUnauthorized: onUnauthorized,
	}
}

// SessionFromContext returns the session the auth middleware attached for
// the current request.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok
}

// ContextWithSession attaches a session for outbound bearer injection.
func ContextWithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}

// Do sends one request to the records API. body and out may be nil. The
// bearer token comes from the session in ctx when one is attached; the
// login exchange runs without it.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}, resource string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrOutboundLimiter(err)
	}

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		c.log.Error("recordsapi request build failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	session, hasSession := SessionFromContext(ctx)
	if hasSession {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+session.RemoteToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("recordsapi request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == constvars.StatusUnauthorized:
		if hasSession && c.onUnauthorized != nil {
			c.onUnauthorized(ctx, session.ID)
		}
		return exceptions.ErrRecordsUnauthorized(nil)
	case resp.StatusCode == constvars.StatusNotFound:
		return exceptions.ErrRecordsNotFound(resource)
	case resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices:
		c.log.Error("recordsapi returned unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrRecordsStatus(resp.StatusCode, resource)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeResponse(err, resource)
	}
	return nil
}
