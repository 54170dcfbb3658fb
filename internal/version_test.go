package internal

import (
	"errors"
	"testing"

	"github.com/baalimago/docr/internal/utils"
	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

func TestPrintVersion(t *testing.T) {
	t.Run("build flags win", func(t *testing.T) {
		oldV, oldC := BuildVersion, BuildChecksum
		t.Cleanup(func() { BuildVersion, BuildChecksum = oldV, oldC })
		BuildVersion = "v1.2.3"
		BuildChecksum = "abc"
		var err error
		out := testboil.CaptureStdout(t, func(t *testing.T) {
			_, err = printVersion()
		})
		if !errors.Is(err, utils.ErrUserInitiatedExit) {
			t.Fatalf("expected ErrUserInitiatedExit, got: %v", err)
		}
		testboil.AssertStringContains(t, out, "version: v1.2.3\n")
		testboil.AssertStringContains(t, out, "checksum: abc\n")
		testboil.AssertStringContains(t, out, "go: go")
	})
}
