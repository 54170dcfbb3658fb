package ocr

import (
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"
)

const UserRole = "USER"

// Part is one unit of multimodal input. The set is closed, see TextPart and
// FileReferencePart.
type Part interface{ isPart() }

type TextPart struct {
	Text string
}

func (TextPart) isPart() {}

// FileReferencePart points at a document the remote service fetches itself.
type FileReferencePart struct {
	MIMEType string
	URI      string
}

func (FileReferencePart) isPart() {}

type Content struct {
	Role  string
	Parts []Part
}

type InferenceRequest struct {
	// Model is the full publisher model resource name, see ModelResourceName
	Model    string
	Contents []Content
}

func ModelResourceName(projectID, location, model string) string {
	return fmt.Sprintf("projects/%v/locations/%v/publishers/google/models/%v", projectID, location, model)
}

// NewInferenceRequest with a single user content item holding the instruction
// followed by the file reference.
func NewInferenceRequest(model, instruction, documentURI, mimeType string) (InferenceRequest, error) {
	if err := validateInputs(instruction, documentURI, mimeType); err != nil {
		return InferenceRequest{}, err
	}
	return InferenceRequest{
		Model: model,
		Contents: []Content{
			{
				Role: UserRole,
				Parts: []Part{
					TextPart{Text: instruction},
					FileReferencePart{MIMEType: mimeType, URI: documentURI},
				},
			},
		},
	}, nil
}

func validateInputs(instruction, documentURI, mimeType string) error {
	if strings.TrimSpace(instruction) == "" {
		return fmt.Errorf("%w: instruction text is empty", ErrInvalidRequest)
	}
	if strings.TrimSpace(mimeType) == "" {
		return fmt.Errorf("%w: mime type is empty", ErrInvalidRequest)
	}
	u, err := url.Parse(documentURI)
	if err != nil {
		return fmt.Errorf("%w: failed to parse document uri: %w", ErrInvalidRequest, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("%w: document uri '%v' has no scheme, the remote service must be able to fetch it", ErrInvalidRequest, documentURI)
	}
	return nil
}

// Instances converts every content item into one prediction instance on the
// form {"role": .., "parts": [{"text": ..}, {"file_data": {"mime_type": .., "file_uri": ..}}]}
func (r InferenceRequest) Instances() ([]*structpb.Value, error) {
	ret := make([]*structpb.Value, 0, len(r.Contents))
	for _, c := range r.Contents {
		parts := make([]any, 0, len(c.Parts))
		for _, p := range c.Parts {
			switch part := p.(type) {
			case TextPart:
				parts = append(parts, map[string]any{
					"text": part.Text,
				})
			case FileReferencePart:
				parts = append(parts, map[string]any{
					"file_data": map[string]any{
						"mime_type": part.MIMEType,
						"file_uri":  part.URI,
					},
				})
			default:
				return nil, fmt.Errorf("unknown part type: %T", p)
			}
		}
		v, err := structpb.NewValue(map[string]any{
			"role":  c.Role,
			"parts": parts,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to convert content to instance: %w", err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}
