package vertex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/baalimago/docr/internal/ocr"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"golang.org/x/net/proxy"
	"golang.org/x/oauth2"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type predictRequest struct {
	Instances []json.RawMessage `json:"instances"`
}

type predictResponse struct {
	Predictions     []json.RawMessage `json:"predictions"`
	DeployedModelID string            `json:"deployedModelId,omitempty"`
	Model           string            `json:"model,omitempty"`
}

// StatusError is returned when the endpoint answers with a non 2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vertex: status %d: %s", e.StatusCode, e.Body)
}

// REST talks json to the ':predict' method of the v1 api
type REST struct {
	baseURL string
	client  *http.Client
	tokens  oauth2.TokenSource
}

func NewREST(ctx context.Context, conf ocr.Configurations) (*REST, error) {
	client, err := newHTTPClient(conf.Proxy)
	if err != nil {
		return nil, err
	}
	ts, err := tokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return &REST{
		baseURL: restBaseURL(conf),
		client:  client,
		tokens:  ts,
	}, nil
}

func newHTTPClient(proxyAddr string) (*http.Client, error) {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if proxyAddr != "" {
		dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		transport.Proxy = nil
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
	}
	return &http.Client{Transport: transport}, nil
}

func (r *REST) Predict(ctx context.Context, req ocr.InferenceRequest) ([]*structpb.Value, error) {
	instances, err := req.Instances()
	if err != nil {
		return nil, fmt.Errorf("failed to build instances: %w", err)
	}
	pr := predictRequest{
		Instances: make([]json.RawMessage, 0, len(instances)),
	}
	for _, inst := range instances {
		b, err := protojson.Marshal(inst)
		if err != nil {
			return nil, fmt.Errorf("failed to encode instance: %w", err)
		}
		pr.Instances = append(pr.Instances, b)
	}
	b, err := json.Marshal(pr)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	if isDebug() {
		ancli.PrintOK(fmt.Sprintf("vertex predict request: %v\n", debug.IndentedJsonFmt(pr)))
	}

	url := fmt.Sprintf("%v/v1/%v:predict", r.baseURL, req.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex req: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	tok, err := r.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	tok.SetAuthHeader(httpReq)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to query vertex: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var predResp predictResponse
	if err := json.Unmarshal(body, &predResp); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if isDebug() {
		ancli.PrintOK(fmt.Sprintf("vertex predict response: %v\n", debug.IndentedJsonFmt(predResp)))
	}
	ret := make([]*structpb.Value, 0, len(predResp.Predictions))
	for i, raw := range predResp.Predictions {
		v := &structpb.Value{}
		if err := protojson.Unmarshal(raw, v); err != nil {
			return nil, fmt.Errorf("failed to decode prediction %d: %w", i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
