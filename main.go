package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/baalimago/docr/internal"
	"github.com/baalimago/docr/internal/utils"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
)

const usage = `docr - (d)ocument (ocr) via Vertex AI

Prerequisites:
  - A google cloud project with the Vertex AI API enabled
  - Application default credentials ('gcloud auth application-default login'),
    or the VERTEX_ACCESS_TOKEN environment variable set to an access token
  - The document must be reachable by google, for instance a signed URL or a gs:// URI

Usage: docr [flags] <command>

Flags:
  -pi, -project-id string      Set the google cloud project id.
  -l, -location string         Set the location of the model. (default is found in ocrConfig.json)
  -m, -model string            Set the publisher model. (default is found in ocrConfig.json)
  -tr, -transport string       Set the transport, 'rest' or 'grpc'. (default is found in ocrConfig.json)
  -e, -endpoint string         Override the prediction endpoint.
  -px, -proxy string           Set a SOCKS5 proxy (host:port), rest transport only.
  -u, -uri string              Set the URI of the document to OCR.
  -mt, -mime-type string       Set the MIME type of the document.
  -od, -output-dir string      Set the directory to store the result in.
  -of, -output-file string     Set the file name of the result. Existing files are overwritten.
  -t, -timeout int             Set the timeout of the remote call in seconds, 0 disables it. (default is found in ocrConfig.json)
  -I, -replace string          Set the string to replace with stdin.
  -i bool                      Set to true to replace '{}' with stdin. This is overwritten by -I and -replace.
  -r, -raw bool                Set to true to only print the result path, no animation.

Environment:
  DOCR_PROJECT_ID, DOCR_LOCATION, DOCR_MODEL, DOCR_TRANSPORT, DOCR_ENDPOINT, DOCR_PROXY,
  DOCR_SOURCE_URI, DOCR_MIME_TYPE, DOCR_OUTPUT_DIR, DOCR_OUTPUT_FILE, DOCR_TIMEOUT_SECONDS
  override the config file, and are overridden by flags. A .env file in the
  working directory is loaded first. DOCR_CONFIG_HOME sets the config directory.

Commands:
  h|help                        Display this help message
  o|ocr [instruction]           OCR the document. Instruction defaults to the one in ocrConfig.json
  c|config                      Print the resolved configuration
  v|version                     Print version and dependencies

Examples:
  - docr -pi my-project -u https://example.com/register.pdf ocr
  - docr -u gs://bucket/scan.png -mt image/png -of scan.txt ocr "Transcribe the handwriting"
  - echo "Only page 2" | docr -r -i ocr "Transcribe {}"
  - DOCR_TRANSPORT=grpc docr ocr
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ancli.SetupSlog()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	querier, err := internal.Setup(ctx, usage, args)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}
	go func() { shutdown.Monitor(cancel) }()
	err = querier.Query(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			ancli.Okf("Seems like you wanted out. Byebye!\n")
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye! 🚀\n")
	}
	return 0
}
