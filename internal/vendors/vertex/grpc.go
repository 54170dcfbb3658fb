package vertex

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/baalimago/docr/internal/ocr"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

// GRPC uses the official PredictionClient. A new client is dialed per call
// since docr only ever makes one.
type GRPC struct {
	endpoint string
	opts     []option.ClientOption
}

func NewGRPC(conf ocr.Configurations) (*GRPC, error) {
	if conf.Proxy != "" {
		return nil, fmt.Errorf("proxy '%v' is only supported by the '%v' transport", conf.Proxy, ocr.REST)
	}
	endpoint := grpcEndpoint(conf)
	opts := []option.ClientOption{option.WithEndpoint(endpoint)}
	if ts, ok := staticToken(); ok {
		opts = append(opts, option.WithTokenSource(ts))
	}
	return &GRPC{
		endpoint: endpoint,
		opts:     opts,
	}, nil
}

func (g *GRPC) Predict(ctx context.Context, req ocr.InferenceRequest) ([]*structpb.Value, error) {
	instances, err := req.Instances()
	if err != nil {
		return nil, fmt.Errorf("failed to build instances: %w", err)
	}
	c, err := aiplatform.NewPredictionClient(ctx, g.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction client for '%v': %w", g.endpoint, err)
	}
	defer c.Close()

	predReq := &aiplatformpb.PredictRequest{
		Endpoint:  req.Model,
		Instances: instances,
	}
	if isDebug() {
		ancli.PrintOK(fmt.Sprintf("vertex predict request: %v\n", debug.IndentedJsonFmt(predReq)))
	}
	resp, err := c.Predict(ctx, predReq)
	if err != nil {
		return nil, fmt.Errorf("failed to query vertex: %w", err)
	}
	if isDebug() {
		ancli.PrintOK(fmt.Sprintf("vertex predict response: %v\n", debug.IndentedJsonFmt(resp)))
	}
	return resp.GetPredictions(), nil
}
