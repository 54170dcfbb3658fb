package ocr

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// Prediction is the classified shape of a single prediction value. Which one
// you get depends on the backing model.
type Prediction interface{ isPrediction() }

// TextFieldPrediction is a struct value with a string field 'text'
type TextFieldPrediction struct {
	Text string
}

func (TextFieldPrediction) isPrediction() {}

type StringPrediction struct {
	Text string
}

func (StringPrediction) isPrediction() {}

// UnrecognizedPrediction is anything else. Kind describes what was found.
type UnrecognizedPrediction struct {
	Kind string
}

func (UnrecognizedPrediction) isPrediction() {}

func ClassifyPrediction(v *structpb.Value) Prediction {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StructValue:
		field, ok := k.StructValue.GetFields()["text"]
		if !ok {
			return UnrecognizedPrediction{Kind: "struct without 'text' field"}
		}
		s, ok := field.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return UnrecognizedPrediction{Kind: fmt.Sprintf("struct with %v 'text' field", kindName(field))}
		}
		return TextFieldPrediction{Text: s.StringValue}
	case *structpb.Value_StringValue:
		return StringPrediction{Text: k.StringValue}
	default:
		return UnrecognizedPrediction{Kind: kindName(v)}
	}
}

func kindName(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "null"
	case *structpb.Value_NumberValue:
		return "number"
	case *structpb.Value_BoolValue:
		return "bool"
	case *structpb.Value_StringValue:
		return "string"
	case *structpb.Value_ListValue:
		return "list"
	case *structpb.Value_StructValue:
		return "struct"
	default:
		return "unset"
	}
}

// ExtractText from the first prediction. Any other predictions are ignored.
func ExtractText(predictions []*structpb.Value) (string, error) {
	if len(predictions) == 0 {
		return "", ErrEmptyResponse
	}
	switch p := ClassifyPrediction(predictions[0]).(type) {
	case TextFieldPrediction:
		return p.Text, nil
	case StringPrediction:
		return p.Text, nil
	case UnrecognizedPrediction:
		return "", fmt.Errorf("%w: got %v", ErrUnsupportedResponseShape, p.Kind)
	default:
		return "", fmt.Errorf("%w: unhandled prediction type %T", ErrUnsupportedResponseShape, p)
	}
}
