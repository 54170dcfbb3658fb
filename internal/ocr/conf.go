package ocr

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Configurations struct {
	ProjectID string    `json:"project-id"`
	Location  string    `json:"location"`
	Model     string    `json:"model"`
	Transport Transport `json:"transport"`
	// Endpoint overrides the regional '<location>-aiplatform.googleapis.com' host.
	// For rest it's a base url, for grpc a host:port.
	Endpoint string `json:"endpoint"`
	// Proxy is a SOCKS5 host:port, only used by the rest transport
	Proxy string `json:"proxy"`
	// TimeoutSeconds bounds the remote call, 0 means only the caller's ctx
	// applies. nil is unset, so an explicit 0 is not back-filled on load.
	TimeoutSeconds *int `json:"timeout-seconds"`
	// Instruction used when no prompt is given as arguments
	Instruction  string `json:"instruction"`
	Source       Source `json:"source"`
	Output       Output `json:"output"`
	Raw          bool   `json:"raw"`
	StdinReplace string `json:"-"`
	Prompt       string `json:"-"`
}

type Source struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mime-type"`
}

type Output struct {
	Dir      string `json:"dir"`
	FileName string `json:"file-name"`
}

type Transport string

const (
	REST Transport = "rest"
	GRPC Transport = "grpc"
)

var Default = Configurations{
	Location:       "europe-west9",
	Model:          "gemini-2.0-flash-001",
	Transport:      REST,
	TimeoutSeconds: Seconds(300),
	Instruction:    "Return a copy of the following document as plain text, exactly as written. Keep the reading order and line breaks.",
	Source: Source{
		MIMEType: "application/pdf",
	},
	Output: Output{
		Dir:      fmt.Sprintf("%v/Documents/docr", os.Getenv("HOME")),
		FileName: "ocr_document.txt",
	},
}

// Seconds returns a pointer to n, for TimeoutSeconds
func Seconds(n int) *int {
	return &n
}

// Timeout is the deadline for the remote call, 0 if there is none
func (c Configurations) Timeout() time.Duration {
	if c.TimeoutSeconds == nil || *c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(*c.TimeoutSeconds) * time.Second
}

func ValidateTransport(t Transport) error {
	switch t {
	case REST, GRPC:
		return nil
	default:
		return fmt.Errorf("invalid transport: %v", t)
	}
}

// envOverrides maps environment variables onto the fields they override
func (c *Configurations) envOverrides() map[string]*string {
	return map[string]*string{
		"DOCR_PROJECT_ID":  &c.ProjectID,
		"DOCR_LOCATION":    &c.Location,
		"DOCR_MODEL":       &c.Model,
		"DOCR_ENDPOINT":    &c.Endpoint,
		"DOCR_PROXY":       &c.Proxy,
		"DOCR_OUTPUT_DIR":  &c.Output.Dir,
		"DOCR_OUTPUT_FILE": &c.Output.FileName,
		"DOCR_SOURCE_URI":  &c.Source.URI,
		"DOCR_MIME_TYPE":   &c.Source.MIMEType,
	}
}

// ApplyEnv overrides any field which has its environment variable set
func (c *Configurations) ApplyEnv() error {
	for k, field := range c.envOverrides() {
		if v := os.Getenv(k); v != "" {
			*field = v
		}
	}
	if v := os.Getenv("DOCR_TRANSPORT"); v != "" {
		c.Transport = Transport(v)
	}
	if v := os.Getenv("DOCR_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse DOCR_TIMEOUT_SECONDS: %w", err)
		}
		c.TimeoutSeconds = &n
	}
	return nil
}

// Validate that everything needed to reach the model and store the result is set.
// All missing fields are reported at once.
func (c *Configurations) Validate() error {
	required := []struct {
		name, val string
	}{
		{"project-id", c.ProjectID},
		{"location", c.Location},
		{"model", c.Model},
		{"output.dir", c.Output.Dir},
		{"output.file-name", c.Output.FileName},
		{"source.uri", c.Source.URI},
		{"source.mime-type", c.Source.MIMEType},
	}
	var errs []error
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			errs = append(errs, fmt.Errorf("missing required config: '%v'", r.name))
		}
	}
	if err := ValidateTransport(c.Transport); err != nil {
		errs = append(errs, err)
	}
	if c.TimeoutSeconds != nil && *c.TimeoutSeconds < 0 {
		errs = append(errs, fmt.Errorf("timeout-seconds must not be negative, got: %v", *c.TimeoutSeconds))
	}
	return errors.Join(errs...)
}
