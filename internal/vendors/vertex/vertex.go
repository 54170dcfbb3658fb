// Package vertex holds the transports used to reach Vertex AI publisher
// model prediction endpoints.
package vertex

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/baalimago/docr/internal/ocr"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

// Host of the regional endpoint for location
func Host(location string) string {
	if location == "global" {
		return "aiplatform.googleapis.com"
	}
	return fmt.Sprintf("%v-aiplatform.googleapis.com", location)
}

// NewPredictor for the transport selected in conf
func NewPredictor(ctx context.Context, conf ocr.Configurations) (ocr.Predictor, error) {
	switch conf.Transport {
	case ocr.REST:
		r, err := NewREST(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("failed to create rest predictor: %w", err)
		}
		return r, nil
	case ocr.GRPC:
		g, err := NewGRPC(conf)
		if err != nil {
			return nil, fmt.Errorf("failed to create grpc predictor: %w", err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown transport: '%v'", conf.Transport)
	}
}

func isDebug() bool {
	return misc.Truthy(os.Getenv("DEBUG")) || misc.Truthy(os.Getenv("VERTEX_DEBUG"))
}

func restBaseURL(conf ocr.Configurations) string {
	if conf.Endpoint == "" {
		return "https://" + Host(conf.Location)
	}
	if strings.Contains(conf.Endpoint, "://") {
		return strings.TrimSuffix(conf.Endpoint, "/")
	}
	return "https://" + strings.TrimSuffix(conf.Endpoint, "/")
}

func grpcEndpoint(conf ocr.Configurations) string {
	if conf.Endpoint != "" {
		return conf.Endpoint
	}
	return Host(conf.Location) + ":443"
}
