// Package remoteapi is the client of the order service, the remote
// collaborator that owns orders, production, packaging, delivery and driver
// records. It implements every gateway in ports.
//
// Responses are wrapped as {"data": ...}. A failed call carries
// {"message": "..."}, which is surfaced verbatim in *errs.RemoteError; a 404
// is reported as errs.ErrObjectNotFound instead.
package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/oapi-codegen/runtime"
)

// DefaultTimeout bounds a single call when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

var (
	_ ports.OrderGateway      = &Client{}
	_ ports.ProductionGateway = &Client{}
	_ ports.PackageGateway    = &Client{}
	_ ports.DeliveryGateway   = &Client{}
	_ ports.DriverGateway     = &Client{}
)

type Client struct {
	server     *url.URL
	httpClient *http.Client
}

// NewClient returns a client of the service at baseURL. A non-positive
// timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	server, err := url.Parse(baseURL)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		server:     server,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// call is one request to the service. op names the call in errors.
type call struct {
	op     string
	method string
	path   string
	body   any
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type failure struct {
	Message string `json:"message"`
}

// do sends c and decodes the data member of the response into out. out may
// be nil when the response body is of no interest.
func (cl *Client) do(ctx context.Context, c call, out any) error {
	target, err := cl.server.Parse("." + c.path)
	if err != nil {
		return errs.NewRemoteErrorWithCause(c.op, err)
	}

	var body io.Reader
	if c.body != nil {
		raw, err := json.Marshal(c.body)
		if err != nil {
			return errs.NewRemoteErrorWithCause(c.op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target.String(), body)
	if err != nil {
		return errs.NewRemoteErrorWithCause(c.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return errs.NewRemoteErrorWithCause(c.op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failed(c, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errs.NewRemoteErrorWithCause(c.op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func failed(c call, resp *http.Response) error {
	var f failure
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &f)

	remoteErr := errs.NewRemoteError(c.op, resp.StatusCode, strings.TrimSpace(f.Message))
	if resp.StatusCode == http.StatusNotFound {
		return errs.NewObjectNotFoundErrorWithCause(c.op, c.path, remoteErr)
	}
	return remoteErr
}

// pathParam styles a path parameter the way generated clients do.
func pathParam(name string, value any) (string, error) {
	return runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
}

type param struct {
	name  string
	value any
}

// path builds format with every param styled and escaped.
func path(op, format string, params ...param) (string, error) {
	styled := make([]any, 0, len(params))
	for _, p := range params {
		s, err := pathParam(p.name, p.value)
		if err != nil {
			return "", errs.NewRemoteErrorWithCause(op, err)
		}
		styled = append(styled, s)
	}
	return fmt.Sprintf(format, styled...), nil
}

// invalidRecord reports a record the service sent but the domain rejects.
func invalidRecord(op string, err error) error {
	return errs.NewRemoteErrorWithCause(op, fmt.Errorf("invalid record in response: %w", err))
}
