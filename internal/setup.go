package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/baalimago/docr/internal/models"
	"github.com/baalimago/docr/internal/ocr"
	"github.com/baalimago/docr/internal/utils"
	"github.com/baalimago/docr/internal/vendors/vertex"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
)

type Mode int

const (
	HELP Mode = iota
	OCR
	CONFIG
	VERSION
)

const ocrConfigFileName = "ocrConfig.json"

// NewPredictor is swapped in tests to avoid reaching out to google
var NewPredictor = vertex.NewPredictor

func getModeFromArgs(cmd string) (Mode, error) {
	switch cmd {
	case "ocr", "o":
		return OCR, nil
	case "config", "c":
		return CONFIG, nil
	case "help", "h":
		return HELP, nil
	case "version", "v":
		return VERSION, nil
	default:
		return HELP, fmt.Errorf("unknown command: '%s'", cmd)
	}
}

// loadOCRConfig with the precedence flags > env > file > default
func loadOCRConfig(confDir string, flagSet Configurations) (ocr.Configurations, error) {
	oConf, err := utils.LoadConfigFromFile(confDir, ocrConfigFileName, &ocr.Default)
	if err != nil {
		return ocr.Configurations{}, fmt.Errorf("failed to load configs: %w", err)
	}
	if err := oConf.ApplyEnv(); err != nil {
		return ocr.Configurations{}, err
	}
	applyFlagOverridesForOCR(&oConf, flagSet, defaultFlags)
	return oConf, nil
}

type configQuerier struct {
	conf ocr.Configurations
}

func (c configQuerier) Query(ctx context.Context) error {
	fmt.Println(debug.IndentedJsonFmt(c.conf))
	return nil
}

func Setup(ctx context.Context, usage string, allArgs []string) (models.Querier, error) {
	flagSet, args, err := parseFlags(defaultFlags, allArgs)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		fmt.Print(usage)
		return nil, utils.ErrUserInitiatedExit
	}
	mode, err := getModeFromArgs(args[0])
	if err != nil {
		return nil, err
	}

	switch mode {
	case HELP:
		fmt.Print(usage)
		return nil, utils.ErrUserInitiatedExit
	case VERSION:
		return printVersion()
	}

	if err := utils.LoadDotEnv(".env"); err != nil {
		ancli.PrintWarn(fmt.Sprintf("%v\n", err))
	}
	confDir, err := utils.GetDocrConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find config dir: %w", err)
	}
	oConf, err := loadOCRConfig(confDir, flagSet)
	if err != nil {
		return nil, err
	}

	switch mode {
	case CONFIG:
		return configQuerier{conf: oConf}, nil
	case OCR:
		err = oConf.SetupPrompts(args[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to setup prompt: %w", err)
		}
		if err := oConf.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config, set it in '%v', env or flags: %w", confDir, err)
		}
		p, err := NewPredictor(ctx, oConf)
		if err != nil {
			return nil, err
		}
		if misc.Truthy(os.Getenv("DEBUG")) {
			ancli.PrintOK(fmt.Sprintf("using transport: %v\n", oConf.Transport))
		}
		q, err := ocr.NewQuerier(oConf, p)
		if err != nil {
			return nil, fmt.Errorf("failed to create ocr querier: %w", err)
		}
		return q, nil
	default:
		return nil, fmt.Errorf("unknown mode: %v", mode)
	}
}
