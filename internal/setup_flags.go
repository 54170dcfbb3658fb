package internal

import (
	"errors"
	"flag"
	"fmt"

	"github.com/baalimago/docr/internal/ocr"
	"github.com/baalimago/docr/internal/utils"
)

// Configurations holds the values set by flags. A value equal to the one in
// defaultFlags means that the flag wasn't set, and that the value from file/env
// should be kept.
type Configurations struct {
	ProjectID  string
	Location   string
	Model      string
	Transport  string
	Endpoint   string
	Proxy      string
	OutputDir  string
	OutputFile string
	SourceURI  string
	MIMEType   string
	// TimeoutSeconds is unset when negative, since 0 is a valid timeout
	TimeoutSeconds int
	StdinReplace   string
	ExpectReplace  bool
	PrintRaw       bool
}

var defaultFlags = Configurations{
	TimeoutSeconds: -1,
}

func parseFlags(defaults Configurations, args []string) (Configurations, []string, error) {
	fs := flag.NewFlagSet("docr", flag.ContinueOnError)
	fs.String("A-helpful-nonexisting-flag", "there is no default", "This isn't a flag. It's only here to tell you that 'docr h/help' gives better overview of usage than 'docr -h'.")

	piShort := fs.String("pi", defaults.ProjectID, "Set the google cloud project id. Mutually exclusive with project-id flag.")
	piLong := fs.String("project-id", defaults.ProjectID, "Set the google cloud project id. Mutually exclusive with pi flag.")

	lShort := fs.String("l", defaults.Location, "Set the location/region of the model, such as 'europe-west9'. Mutually exclusive with location flag.")
	lLong := fs.String("location", defaults.Location, "Set the location/region of the model, such as 'europe-west9'. Mutually exclusive with l flag.")

	mShort := fs.String("m", defaults.Model, "Set the publisher model to use. Mutually exclusive with model flag.")
	mLong := fs.String("model", defaults.Model, "Set the publisher model to use. Mutually exclusive with m flag.")

	trShort := fs.String("tr", defaults.Transport, "Set the transport, 'rest' or 'grpc'. Mutually exclusive with transport flag.")
	trLong := fs.String("transport", defaults.Transport, "Set the transport, 'rest' or 'grpc'. Mutually exclusive with tr flag.")

	eShort := fs.String("e", defaults.Endpoint, "Override the prediction endpoint. Base url for rest, host:port for grpc.")
	eLong := fs.String("endpoint", defaults.Endpoint, "Override the prediction endpoint. Base url for rest, host:port for grpc.")

	pxShort := fs.String("px", defaults.Proxy, "Set a SOCKS5 proxy (host:port) for the rest transport.")
	pxLong := fs.String("proxy", defaults.Proxy, "Set a SOCKS5 proxy (host:port) for the rest transport.")

	odShort := fs.String("od", defaults.OutputDir, "Set the directory to store the OCR result in.")
	odLong := fs.String("output-dir", defaults.OutputDir, "Set the directory to store the OCR result in.")

	ofShort := fs.String("of", defaults.OutputFile, "Set the file name of the OCR result. An existing file is overwritten.")
	ofLong := fs.String("output-file", defaults.OutputFile, "Set the file name of the OCR result. An existing file is overwritten.")

	uShort := fs.String("u", defaults.SourceURI, "Set the URI of the document. Must be reachable by the remote service.")
	uLong := fs.String("uri", defaults.SourceURI, "Set the URI of the document. Must be reachable by the remote service.")

	mtShort := fs.String("mt", defaults.MIMEType, "Set the MIME type of the document.")
	mtLong := fs.String("mime-type", defaults.MIMEType, "Set the MIME type of the document.")

	tShort := fs.Int("t", defaults.TimeoutSeconds, "Set the timeout of the remote call in seconds, 0 disables it. Mutually exclusive with timeout flag.")
	tLong := fs.Int("timeout", defaults.TimeoutSeconds, "Set the timeout of the remote call in seconds, 0 disables it. Mutually exclusive with t flag.")

	stdinReplaceShort := fs.String("I", defaults.StdinReplace, "Set the string to replace with stdin. (flag syntax borrowed from xargs)")
	stdinReplaceLong := fs.String("replace", defaults.StdinReplace, "Set the string to replace with stdin. (flag syntax borrowed from xargs)")
	expectReplace := fs.Bool("i", defaults.ExpectReplace, "Set to true to replace '{}' with stdin. This is overwritten by -I and -replace. (flag syntax borrowed from xargs)")

	printRawShort := fs.Bool("r", defaults.PrintRaw, "Set to true to print only the result path, no animation.")
	printRawLong := fs.Bool("raw", defaults.PrintRaw, "Set to true to print only the result path, no animation.")

	err := fs.Parse(args)
	if err != nil {
		return Configurations{}, []string{}, fmt.Errorf("failed to parse args: %w", err)
	}

	var errs []error
	pick := func(short, long *string, dflt, shortName, longName string) string {
		v, err := utils.ReturnNonDefault(*short, *long, dflt)
		if err != nil {
			errs = append(errs, fmt.Errorf("flags: '%v' and '%v' are mutually exclusive", shortName, longName))
		}
		return v
	}

	timeout, err := utils.ReturnNonDefault(*tShort, *tLong, defaults.TimeoutSeconds)
	if err != nil {
		errs = append(errs, fmt.Errorf("flags: 't' and 'timeout' are mutually exclusive"))
	}

	newConf := Configurations{
		ProjectID:      pick(piShort, piLong, defaults.ProjectID, "pi", "project-id"),
		Location:       pick(lShort, lLong, defaults.Location, "l", "location"),
		Model:          pick(mShort, mLong, defaults.Model, "m", "model"),
		Transport:      pick(trShort, trLong, defaults.Transport, "tr", "transport"),
		Endpoint:       pick(eShort, eLong, defaults.Endpoint, "e", "endpoint"),
		Proxy:          pick(pxShort, pxLong, defaults.Proxy, "px", "proxy"),
		OutputDir:      pick(odShort, odLong, defaults.OutputDir, "od", "output-dir"),
		OutputFile:     pick(ofShort, ofLong, defaults.OutputFile, "of", "output-file"),
		SourceURI:      pick(uShort, uLong, defaults.SourceURI, "u", "uri"),
		MIMEType:       pick(mtShort, mtLong, defaults.MIMEType, "mt", "mime-type"),
		TimeoutSeconds: timeout,
		StdinReplace:   pick(stdinReplaceShort, stdinReplaceLong, defaults.StdinReplace, "I", "replace"),
		ExpectReplace:  *expectReplace,
		PrintRaw:       *printRawShort || *printRawLong,
	}
	if len(errs) > 0 {
		return Configurations{}, []string{}, errors.Join(errs...)
	}
	if newConf.ExpectReplace && newConf.StdinReplace == "" {
		newConf.StdinReplace = "{}"
	}

	return newConf, fs.Args(), nil
}

// applyFlagOverridesForOCR is defined here, and not as a method on ocr.Configurations,
// to keep the ocr package free of cli concerns.
//
// Only values which differ from the default flags are applied, so that the
// convention flags > env > file > default holds.
func applyFlagOverridesForOCR(oConf *ocr.Configurations, flagSet, defaultFlags Configurations) {
	if flagSet.ProjectID != defaultFlags.ProjectID {
		oConf.ProjectID = flagSet.ProjectID
	}
	if flagSet.Location != defaultFlags.Location {
		oConf.Location = flagSet.Location
	}
	if flagSet.Model != defaultFlags.Model {
		oConf.Model = flagSet.Model
	}
	if flagSet.Transport != defaultFlags.Transport {
		oConf.Transport = ocr.Transport(flagSet.Transport)
	}
	if flagSet.Endpoint != defaultFlags.Endpoint {
		oConf.Endpoint = flagSet.Endpoint
	}
	if flagSet.Proxy != defaultFlags.Proxy {
		oConf.Proxy = flagSet.Proxy
	}
	if flagSet.OutputDir != defaultFlags.OutputDir {
		oConf.Output.Dir = flagSet.OutputDir
	}
	if flagSet.OutputFile != defaultFlags.OutputFile {
		oConf.Output.FileName = flagSet.OutputFile
	}
	if flagSet.SourceURI != defaultFlags.SourceURI {
		oConf.Source.URI = flagSet.SourceURI
	}
	if flagSet.MIMEType != defaultFlags.MIMEType {
		oConf.Source.MIMEType = flagSet.MIMEType
	}
	if flagSet.TimeoutSeconds != defaultFlags.TimeoutSeconds {
		timeout := flagSet.TimeoutSeconds
		oConf.TimeoutSeconds = &timeout
	}
	if flagSet.StdinReplace != defaultFlags.StdinReplace {
		oConf.StdinReplace = flagSet.StdinReplace
	}
	if flagSet.PrintRaw != defaultFlags.PrintRaw {
		oConf.Raw = flagSet.PrintRaw
	}
}
