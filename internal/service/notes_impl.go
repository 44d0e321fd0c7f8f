package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/semtag-io/semtag/internal/domain"
)

// markdownNotes renders a conventional-commits style changelog grouped by
// the sections of the filtered rule table. Commit types without a section
// are omitted.
type markdownNotes struct{}

// NewNotesService creates the markdown NotesService.
func NewNotesService() NotesService {
	return &markdownNotes{}
}

func (s *markdownNotes) Generate(_ context.Context, input NotesInput) (string, error) {
	sections := make(map[string][]domain.Commit)
	var order []string
	for _, rule := range input.Rules {
		if _, seen := sections[rule.Section]; !seen {
			sections[rule.Section] = nil
			order = append(order, rule.Section)
		}
	}
	sectionByType := make(map[string]string, len(input.Rules))
	for _, rule := range input.Rules {
		sectionByType[rule.Type] = rule.Section
	}
	for _, commit := range input.Commits {
		header, _, _ := strings.Cut(commit.Message, "\n")
		m := headerPattern.FindStringSubmatch(header)
		if m == nil {
			continue
		}
		section, ok := sectionByType[m[1]]
		if !ok {
			continue
		}
		sections[section] = append(sections[section], commit)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", input.NewTag)
	if input.RepositoryURL != "" && input.PreviousTag != "" {
		fmt.Fprintf(&b, "\n[Compare changes](%s/compare/%s...%s)\n",
			input.RepositoryURL, input.PreviousTag, input.NewTag)
	}
	for _, section := range order {
		commits := sections[section]
		if len(commits) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n\n", section)
		for _, commit := range commits {
			header, _, _ := strings.Cut(commit.Message, "\n")
			fmt.Fprintf(&b, "* %s (%s)\n", header, shortSHA(commit.SHA))
		}
	}
	return b.String(), nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
