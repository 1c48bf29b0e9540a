package forge

import (
	"sort"
	"strings"
	"unicode"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sofmeright/readmegen/src/narrator"
)

// WorkflowDir is where GitHub Actions workflow definitions live.
const WorkflowDir = ".github/workflows"

// Workflows lists the workflow files (.yaml or .yml) in WorkflowDir.
// A missing directory yields nil. Subdirectories are skipped. With sorted
// false, entries keep the order the filesystem returned them in.
func Workflows(fs billy.Filesystem, sorted bool) []string {
	entries, err := fs.ReadDir(WorkflowDir)
	if err != nil {
		return nil
	}

	var workflows []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			workflows = append(workflows, name)
		}
	}

	if sorted {
		sort.Strings(workflows)
	}
	return workflows
}

// WorkflowBadge builds the status badge of a workflow in a GitHub repository.
func WorkflowBadge(repoURL, workflow string) narrator.BadgeModule {
	repoURL = strings.TrimSuffix(repoURL, "/")
	workflowURL := repoURL + "/actions/workflows/" + workflow

	return narrator.BadgeModule{
		Alt:    WorkflowTitle(workflow),
		ImgURL: workflowURL + "/badge.svg",
		Link:   workflowURL,
	}
}

// WorkflowBadges renders one badge per workflow, one per line.
func WorkflowBadges(repoURL string, workflows []string) string {
	modules := make([]narrator.Module, 0, len(workflows))
	for _, w := range workflows {
		modules = append(modules, WorkflowBadge(repoURL, w))
	}
	return narrator.Stack(modules)
}

// WorkflowTitle turns a workflow filename into a badge label:
// "build-release.yaml" and "buildRelease.yml" both become "Build Release".
// A workflow named ci (any case) is labelled "CI".
func WorkflowTitle(workflow string) string {
	name := strings.TrimSuffix(strings.TrimSuffix(workflow, ".yaml"), ".yml")
	if strings.ToUpper(name) == "CI" {
		return "CI"
	}

	var humanized strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			humanized.WriteRune(' ')
		}
		humanized.WriteRune(r)
	}

	spaced := strings.NewReplacer("-", " ", "_", " ").Replace(humanized.String())
	return titleCase(strings.TrimSpace(spaced))
}

// minorWords stay lowercase inside a title.
var minorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "en": true, "for": true, "if": true, "in": true, "of": true,
	"on": true, "or": true, "the": true, "to": true, "v": true, "via": true,
	"vs": true, "with": true,
}

func titleCase(s string) string {
	caser := cases.Title(language.English, cases.NoLower)
	words := strings.Fields(s)
	for i, word := range words {
		lower := strings.ToLower(word)
		if i > 0 && i < len(words)-1 && minorWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}
