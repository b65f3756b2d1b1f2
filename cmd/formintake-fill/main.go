// Command formintake-fill walks a form definition interactively and
// writes the answers as a responses document suitable for
// formintake-check.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-formintake/pkg/field"
	"github.com/goliatone/go-formintake/pkg/submission"
)

type outResponse struct {
	ID          string     `json:"_id"`
	Kind        field.Kind `json:"fieldType"`
	Question    string     `json:"question"`
	Answer      string     `json:"answer,omitempty"`
	AnswerArray any        `json:"answerArray,omitempty"`
	IsVisible   bool       `json:"isVisible"`
}

func main() {
	formPath := flag.String("form", "form.yaml", "form definition path")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	form, err := field.LoadForm(*formPath)
	if err != nil {
		log.Fatalf("Failed to load form: %v", err)
	}

	fmt.Printf("== %s ==\n", form.Title)

	responses := make([]outResponse, 0, len(form.Fields))
	for _, schema := range form.Fields {
		resp, err := ask(schema)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		responses = append(responses, resp)
	}

	// Run the answers through the pipeline so obvious mistakes surface
	// before the document is handed to a server.
	pipeline := submission.New()
	if _, err := pipeline.Process(context.Background(), form, toFieldResponses(responses), nil); err != nil {
		fmt.Printf("warning: responses do not validate: %v\n", err)
	}

	doc, err := json.MarshalIndent(struct {
		Responses []outResponse `json:"responses"`
	}{responses}, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode responses: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, doc, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Responses written to %s\n", *output)
	} else {
		fmt.Println(string(doc))
	}
}

func toFieldResponses(responses []outResponse) []field.Response {
	out := make([]field.Response, 0, len(responses))
	for _, resp := range responses {
		fr := field.Response{
			ID:        resp.ID,
			Kind:      resp.Kind,
			Question:  resp.Question,
			Answer:    resp.Answer,
			IsVisible: resp.IsVisible,
		}
		if answers, ok := resp.AnswerArray.([]string); ok {
			fr.AnswerArray = answers
		}
		out = append(out, fr)
	}
	return out
}

func ask(schema field.Schema) (outResponse, error) {
	resp := outResponse{
		ID:        schema.ID,
		Kind:      schema.Kind,
		Question:  schema.Title,
		IsVisible: true,
	}

	var opts []survey.AskOpt
	if schema.Required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	switch schema.Kind {
	case field.KindSection, field.KindStatement:
		fmt.Printf("-- %s --\n", schema.Title)
		return resp, nil
	case field.KindAttachment, field.KindTable, field.KindChildren:
		// These kinds need file or tabular input and are skipped in
		// interactive mode.
		fmt.Printf("(skipping %s field %q)\n", schema.Kind, schema.Title)
		return resp, nil
	case field.KindDropdown, field.KindRadio:
		var answer string
		prompt := &survey.Select{Message: schema.Title, Options: schema.Options}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return outResponse{}, err
		}
		resp.Answer = answer
	case field.KindCountryRegion:
		var answer string
		prompt := &survey.Select{Message: schema.Title, Options: field.Countries}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return outResponse{}, err
		}
		resp.Answer = answer
	case field.KindYesNo:
		var answer string
		prompt := &survey.Select{Message: schema.Title, Options: []string{field.YesAnswer, field.NoAnswer}}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return outResponse{}, err
		}
		resp.Answer = answer
	case field.KindRating:
		steps := make([]string, 0, schema.RatingSteps)
		for i := 1; i <= schema.RatingSteps; i++ {
			steps = append(steps, strconv.Itoa(i))
		}
		var answer string
		prompt := &survey.Select{Message: schema.Title, Options: steps}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return outResponse{}, err
		}
		resp.Answer = answer
	case field.KindCheckbox:
		var answers []string
		prompt := &survey.MultiSelect{Message: schema.Title, Options: schema.Options}
		if err := survey.AskOne(prompt, &answers, opts...); err != nil {
			return outResponse{}, err
		}
		if len(answers) > 0 {
			resp.AnswerArray = answers
		}
	default:
		var answer string
		prompt := &survey.Input{Message: schema.Title}
		if err := survey.AskOne(prompt, &answer, opts...); err != nil {
			return outResponse{}, err
		}
		resp.Answer = answer
	}
	return resp, nil
}
