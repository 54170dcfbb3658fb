package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
)

type goldenFileTestCase struct {
	expect          string
	givenArgs       string
	givenEnvs       map[string]string
	wantOutExactly  string
	wantOutContains string
	wantStatusCode  int
}

func runGolden(t *testing.T, tc goldenFileTestCase) {
	t.Helper()
	for k, v := range tc.givenEnvs {
		t.Setenv(k, v)
	}
	var gotStatusCode int
	gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
		gotStatusCode = run(strings.Split(tc.givenArgs, " "))
	})

	testboil.FailTestIfDiff(t, gotStatusCode, tc.wantStatusCode)
	if tc.wantOutContains != "" {
		testboil.AssertStringContains(t, gotStdout, tc.wantOutContains)
	}
	if tc.wantOutExactly != "" {
		testboil.FailTestIfDiff(t, gotStdout, tc.wantOutExactly)
	}
}

// fakeVertex answers every predict call with body, recording the request path
func fakeVertex(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.Copy(io.Discard, r.Body)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func Test_goldenFile_HELP(t *testing.T) {
	runGolden(t, goldenFileTestCase{
		expect:          "help prints usage",
		givenArgs:       "help",
		wantOutContains: "Usage: docr [flags] <command>",
		wantStatusCode:  0,
	})
}

func Test_goldenFile_VERSION(t *testing.T) {
	runGolden(t, goldenFileTestCase{
		expect:          "version prints version",
		givenArgs:       "version",
		wantOutContains: "version: ",
		wantStatusCode:  0,
	})
}

func Test_goldenFile_unknown_command(t *testing.T) {
	runGolden(t, goldenFileTestCase{
		expect:         "unknown command fails",
		givenArgs:      "photo",
		wantStatusCode: 1,
	})
}

func Test_goldenFile_CONFIG(t *testing.T) {
	confDir := filepath.Join(t.TempDir(), ".docr")
	var gotStatusCode int
	t.Setenv("DOCR_CONFIG_HOME", confDir)
	t.Setenv("DOCR_PROJECT_ID", "env-project")
	t.Setenv("DEBUG", "")
	gotStdout := testboil.CaptureStdout(t, func(t *testing.T) {
		gotStatusCode = run([]string{"-l", "us-central1", "-t", "0", "config"})
	})
	testboil.FailTestIfDiff(t, gotStatusCode, 0)
	var got map[string]any
	if err := json.Unmarshal([]byte(gotStdout), &got); err != nil {
		t.Fatalf("failed to unmarshal config output: %v, output: %q", err, gotStdout)
	}
	testboil.FailTestIfDiff(t, got["project-id"], any("env-project"))
	testboil.FailTestIfDiff(t, got["location"], any("us-central1"))
	testboil.FailTestIfDiff(t, got["timeout-seconds"], any(float64(0)))
}

func Test_goldenFile_OCR(t *testing.T) {
	srv, gotPath := fakeVertex(t, http.StatusOK, `{"predictions":[{"text":"hello"}]}`)
	outDir := filepath.Join(t.TempDir(), "outputs")
	wantFile := filepath.Join(outDir, "result.txt")
	envs := map[string]string{
		"DOCR_CONFIG_HOME":    filepath.Join(t.TempDir(), ".docr"),
		"DOCR_ENDPOINT":       srv.URL,
		"DOCR_PROJECT_ID":     "proj",
		"DOCR_LOCATION":       "europe-west9",
		"DOCR_MODEL":          "gemini-2.0-flash-001",
		"DOCR_TRANSPORT":      "rest",
		"VERTEX_ACCESS_TOKEN": "tok",
		"DEBUG":               "",
	}

	runGolden(t, goldenFileTestCase{
		expect:         "ocr writes result and prints path",
		givenArgs:      "-r -u https://example.com/doc.pdf -od " + outDir + " -of result.txt ocr transcribe",
		givenEnvs:      envs,
		wantOutExactly: wantFile + "\n",
		wantStatusCode: 0,
	})
	testboil.FailTestIfDiff(t, *gotPath, "/v1/projects/proj/locations/europe-west9/publishers/google/models/gemini-2.0-flash-001:predict")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("expected result file: %v", err)
	}
	testboil.FailTestIfDiff(t, string(b), "hello")
}

func Test_goldenFile_OCR_failures(t *testing.T) {
	tcs := []struct {
		desc   string
		status int
		body   string
	}{
		{"empty response", http.StatusOK, `{"predictions":[]}`},
		{"unsupported shape", http.StatusOK, `{"predictions":[42]}`},
		{"server error", http.StatusInternalServerError, `oops`},
	}
	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			srv, _ := fakeVertex(t, tc.status, tc.body)
			outDir := filepath.Join(t.TempDir(), "outputs")
			runGolden(t, goldenFileTestCase{
				expect:    tc.desc,
				givenArgs: "-r -pi proj -u https://example.com/doc.pdf -od " + outDir + " ocr",
				givenEnvs: map[string]string{
					"DOCR_CONFIG_HOME":    t.TempDir(),
					"DOCR_ENDPOINT":       srv.URL,
					"DOCR_TRANSPORT":      "rest",
					"VERTEX_ACCESS_TOKEN": "tok",
				},
				wantStatusCode: 1,
			})
			if _, err := os.Stat(outDir); !os.IsNotExist(err) {
				t.Fatalf("expected no output dir to be created, stat err: %v", err)
			}
		})
	}
}
