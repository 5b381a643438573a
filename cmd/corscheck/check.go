package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/NeuralTrust/CorsCheck/pkg/app/checker"
	"github.com/NeuralTrust/CorsCheck/pkg/app/report"
	"github.com/NeuralTrust/CorsCheck/pkg/config"
	"github.com/NeuralTrust/CorsCheck/pkg/domain/check"
	"github.com/NeuralTrust/CorsCheck/pkg/infra/httpprobe"
	infraLogger "github.com/NeuralTrust/CorsCheck/pkg/infra/logger"
)

// CheckCmd runs a single CORS check and prints the verdict. The exit code is
// zero only when both phases allow the origin.
type CheckCmd struct {
	Method         string   `short:"m" long:"method" description:"HTTP method of the actual request (default from config, GET)"`
	Headers        []string `short:"H" long:"header" description:"Extra request header as Name:Value, repeatable"`
	TimeoutSeconds float64  `short:"t" long:"timeout" description:"Timeout per request in seconds (default from config, 10)"`
	Output         string   `short:"o" long:"output" description:"Report format" choice:"text" choice:"json"`
	Verbose        bool     `short:"v" long:"verbose" description:"Include per-phase status codes and headers in the report"`
	Config         string   `long:"config" description:"Directory holding corscheck.yaml"`
	Args           struct {
		Origin string `positional-arg-name:"origin" description:"Origin making the cross-origin request"`
		Target string `positional-arg-name:"target" description:"URL whose CORS configuration is checked"`
	} `positional-args:"yes" required:"2"`
}

func (c *CheckCmd) Execute(_ []string) error {
	if err := config.Load(c.Config); err != nil {
		return err
	}
	cfg := config.GetConfig()

	output := c.Output
	if output == "" {
		output = cfg.Defaults.Output
	}

	req := &check.Request{
		Origin:  c.Args.Origin,
		Target:  c.Args.Target,
		Method:  c.Method,
		Headers: check.ParseHeaders(c.Headers),
		Timeout: time.Duration(c.TimeoutSeconds * float64(time.Second)),
	}
	req.ApplyDefaults(cfg.Defaults.Method, cfg.Defaults.Timeout())

	logger := infraLogger.NewLogger(cfg.Logging.Level)
	evaluator := checker.NewEvaluator(logger, httpprobe.NewProber(logger))

	verdict, err := evaluator.Evaluate(context.Background(), req)
	if err != nil {
		if output == "json" {
			raw, mErr := json.MarshalIndent(map[string]string{"error": err.Error()}, "", "  ")
			if mErr == nil {
				fmt.Println(string(raw))
				os.Exit(1)
			}
		}
		return err
	}

	transformer := report.NewTransformer()
	if output == "json" {
		doc, err := transformer.JSON(verdict)
		if err != nil {
			return err
		}
		fmt.Println(doc)
	} else {
		text := transformer.Text(verdict, c.Verbose)
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		fmt.Print(text)
	}

	if !verdict.Success {
		os.Exit(1)
	}
	return nil
}
