package ocr

import (
	"context"
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

type Querier struct {
	Configurations
	client *DocumentOCRClient
}

func NewQuerier(conf Configurations, p Predictor) (*Querier, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ocr config: %w", err)
	}
	return &Querier{
		Configurations: conf,
		client:         NewDocumentOCRClient(p, conf.ProjectID, conf.Location, conf.Model, conf.Output),
	}, nil
}

func (q *Querier) Query(ctx context.Context) error {
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("querying with config: %v\n", debug.IndentedJsonFmt(q.Configurations)))
	}
	if timeout := q.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stop func()
	if !q.Raw {
		stop = StartAnimation()
	}
	path, err := q.client.RequestOCR(ctx, q.Prompt, q.Source.URI, q.Source.MIMEType)
	if stop != nil {
		stop()
	}
	if err != nil {
		return fmt.Errorf("failed to ocr document (%v): %w", Classify(err), err)
	}

	if q.Raw {
		fmt.Println(path)
		return nil
	}
	ancli.PrintOK(fmt.Sprintf("OCR result saved to: '%v'\n", path))
	return nil
}
