package ocr

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Predictor submits a request to a prediction endpoint and returns the raw
// prediction values.
type Predictor interface {
	Predict(ctx context.Context, req InferenceRequest) ([]*structpb.Value, error)
}

type DocumentOCRClient struct {
	predictor Predictor
	model     string
	output    Output
}

// NewDocumentOCRClient addressing the model of projectID in location. Results
// are stored according to out.
func NewDocumentOCRClient(p Predictor, projectID, location, model string, out Output) *DocumentOCRClient {
	return &DocumentOCRClient{
		predictor: p,
		model:     ModelResourceName(projectID, location, model),
		output:    out,
	}
}

// RequestOCR asks the model to OCR the document at documentURI, following
// instruction, and writes the text to the output file. The returned path is
// only valid if err is nil, on error no file has been written.
func (c *DocumentOCRClient) RequestOCR(ctx context.Context, instruction, documentURI, mimeType string) (string, error) {
	req, err := NewInferenceRequest(c.model, instruction, documentURI, mimeType)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	predictions, err := c.predictor.Predict(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}

	text, err := ExtractText(predictions)
	if err != nil {
		return "", err
	}

	artifact, err := SaveText(c.output, text)
	if err != nil {
		return "", err
	}
	return artifact.Path, nil
}
