package ocr

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"google.golang.org/protobuf/types/known/structpb"
)

type blockingPredictor struct{}

func (blockingPredictor) Predict(ctx context.Context, req InferenceRequest) ([]*structpb.Value, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestNewQuerier_invalidConf(t *testing.T) {
	_, err := NewQuerier(Default, &mockPredictor{})
	if err == nil {
		t.Fatal("expected error")
	}
	testboil.AssertStringContains(t, err.Error(), "invalid ocr config")
}

func TestQuery_raw(t *testing.T) {
	conf := validConf()
	conf.Output.Dir = t.TempDir()
	conf.Raw = true
	conf.Prompt = "ocr"
	q, err := NewQuerier(conf, &mockPredictor{predictions: []*structpb.Value{structpb.NewStringValue("hello")}})
	if err != nil {
		t.Fatal(err)
	}
	var queryErr error
	out := testboil.CaptureStdout(t, func(t *testing.T) {
		queryErr = q.Query(context.Background())
	})
	if queryErr != nil {
		t.Fatalf("unexpected error: %v", queryErr)
	}
	want := filepath.Join(conf.Output.Dir, conf.Output.FileName)
	testboil.FailTestIfDiff(t, strings.TrimSpace(out), want)
	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	testboil.FailTestIfDiff(t, string(b), "hello")
}

func TestQuery_errorNamesKind(t *testing.T) {
	conf := validConf()
	conf.Output.Dir = t.TempDir()
	conf.Raw = true
	conf.Prompt = "ocr"
	q, err := NewQuerier(conf, &mockPredictor{})
	if err != nil {
		t.Fatal(err)
	}
	err = q.Query(context.Background())
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got: %v", err)
	}
	testboil.AssertStringContains(t, err.Error(), "(empty-response)")
}

func TestQuery_returnsOnContextCancel(t *testing.T) {
	conf := validConf()
	conf.Output.Dir = t.TempDir()
	conf.Raw = true
	conf.Prompt = "ocr"
	q, err := NewQuerier(conf, blockingPredictor{})
	if err != nil {
		t.Fatal(err)
	}
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		q.Query(ctx)
	}, time.Second)
}

func TestQuery_timeout(t *testing.T) {
	conf := validConf()
	conf.Output.Dir = t.TempDir()
	conf.Raw = true
	conf.Prompt = "ocr"
	conf.TimeoutSeconds = Seconds(1)
	q, err := NewQuerier(conf, blockingPredictor{})
	if err != nil {
		t.Fatal(err)
	}
	err = q.Query(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got: %v", err)
	}
	testboil.FailTestIfDiff(t, Classify(err), KindCancelled)
}

func TestFunimation(t *testing.T) {
	if funimation(0) != "📄" {
		t.Errorf("unexpected image for 0")
	}
	if funimation(250*time.Millisecond) != "📃" {
		t.Errorf("unexpected image for step")
	}
}

func TestStartAnimation_stops(t *testing.T) {
	stop := StartAnimation()
	time.Sleep(50 * time.Millisecond)
	stop()
}
