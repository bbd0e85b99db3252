package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// issueDTO is one entry of an issue list file:
//
//	- name: Zpravodaj 1/2024
//	  period: jaro
type issueDTO struct {
	Name   string `yaml:"name"`
	Period string `yaml:"period"`
}

func loadIssues(path string) ([]issueDTO, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read issues %s: %w", path, err)
	}

	var issues []issueDTO
	if err := yaml.Unmarshal(b, &issues); err != nil {
		return nil, fmt.Errorf("parse issues %s: %w", path, err)
	}

	for i, is := range issues {
		if is.Period == "" {
			return nil, fmt.Errorf("parse issues %s: entry %d: %w", path, i, errMissingPeriod)
		}
	}
	return issues, nil
}

var errMissingPeriod = errors.New("missing period")

func issuesFromArgs(args []string) []issueDTO {
	issues := make([]issueDTO, 0, len(args))
	for _, a := range args {
		issues = append(issues, issueDTO{Period: a})
	}
	return issues
}
