package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-formintake/pkg/assemble"
	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/receiver"
	"github.com/goliatone/go-formintake/pkg/submission"
	"github.com/goliatone/go-formintake/pkg/validate"
	"github.com/goliatone/go-formintake/pkg/verification"
)

func main() {
	formPath := flag.String("form", "form.yaml", "form definition path")
	responsesPath := flag.String("responses", "", "responses JSON path (stdin if empty)")
	secret := flag.String("secret", "", "signature verification secret")
	output := flag.String("output", "", "output file (stdout if empty)")
	emailOut := flag.Bool("email", false, "emit the admin email HTML instead of JSON")
	verbose := flag.Bool("verbose", false, "log pipeline activity")
	timeout := flag.Duration("timeout", 30*time.Second, "processing timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	form, err := field.LoadForm(*formPath)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	raw, err := readResponses(*responsesPath)
	if err != nil {
		log.Fatalf("Failed to read responses: %v", err)
	}
	responses, err := receiver.ParseResponses(raw)
	if err != nil {
		log.Fatalf("Failed to parse responses: %v", err)
	}

	pipeline := submission.New(pipelineOptions(*secret, *verbose)...)
	result, err := pipeline.Process(ctx, form, responses, nil)
	if err != nil {
		log.Fatalf("Submission rejected: %v", err)
	}

	rendered, err := render(form, result, *emailOut)
	if err != nil {
		log.Fatalf("Failed to render output: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(rendered))
	}
}

func readResponses(path string) ([]byte, error) {
	if path == "" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}

func pipelineOptions(secret string, verbose bool) []submission.Option {
	var opts []submission.Option
	if secret != "" {
		verifier := verification.NewHMAC([]byte(secret))
		opts = append(opts, submission.WithValidator(validate.New(validate.WithVerifier(verifier))))
	}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			opts = append(opts, submission.WithLogger(logger))
		}
	}
	return opts
}

func render(form field.Form, result *submission.Result, emailOut bool) ([]byte, error) {
	if emailOut {
		html, err := assemble.AdminSummaryHTML(form.Title, form.ID, result.Data)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	}
	return json.MarshalIndent(struct {
		FormData          []assemble.AdminField     `json:"formData"`
		AutoReplyData     []assemble.AutoReplyField `json:"autoReplyData"`
		DataCollationData []assemble.CollationField `json:"dataCollationData"`
		EmailRecipients   []string                  `json:"emailRecipients,omitempty"`
	}{
		FormData:          result.Data.FormData,
		AutoReplyData:     result.Data.AutoReplyData,
		DataCollationData: result.Data.DataCollationData,
		EmailRecipients:   result.EmailRecipients,
	}, "", "  ")
}
