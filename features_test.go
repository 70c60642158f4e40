package htmlint_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/htmlint/htmlint"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			TestingT: t,
			Strict:   true,
		},
	}
	suite.Run()
}

// featureState carries one scenario's document, cursor and results.
type featureState struct {
	tree   *htmlint.Tree
	offset uint32
	diags  []htmlint.Diagnostic
	items  []htmlint.CompletionItem
}

func initializeScenario(ctx *godog.ScenarioContext) {
	s := &featureState{}
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*s = featureState{}
		return ctx, nil
	})

	ctx.Step(`^the document:$`, s.theDocument)
	ctx.Step(`^the document with a cursor:$`, s.theDocumentWithCursor)
	ctx.Step(`^the document is validated$`, s.validated)
	ctx.Step(`^no diagnostics are reported$`, s.noDiagnostics)
	ctx.Step(`^a "([^"]*)" diagnostic is reported$`, s.diagnosticReported)
	ctx.Step(`^exactly (\d+) diagnostics? (?:is|are) reported$`, s.diagnosticCount)
	ctx.Step(`^completions are requested at the cursor$`, s.completionsRequested)
	ctx.Step(`^the completion labels are "([^"]*)"$`, s.completionLabelsAre)
	ctx.Step(`^the completions include "([^"]*)"$`, s.completionsInclude)
	ctx.Step(`^the completions do not include "([^"]*)"$`, s.completionsExclude)
}

func (s *featureState) parse(src string) error {
	tree, err := htmlint.Parse(context.Background(), []byte(src))
	if err != nil {
		return err
	}
	s.tree = tree
	return nil
}

func (s *featureState) theDocument(doc *godog.DocString) error {
	return s.parse(strings.TrimSpace(doc.Content))
}

func (s *featureState) theDocumentWithCursor(doc *godog.DocString) error {
	src := strings.TrimSpace(doc.Content)
	i := strings.IndexByte(src, '|')
	if i < 0 {
		return fmt.Errorf("no cursor marker in document")
	}
	s.offset = uint32(i)
	return s.parse(src[:i] + src[i+1:])
}

func (s *featureState) validated() error {
	s.diags = htmlint.Validate(context.Background(), s.tree)
	return nil
}

func (s *featureState) noDiagnostics() error {
	if len(s.diags) != 0 {
		return fmt.Errorf("expected a clean document, got %d diagnostics, first: %s", len(s.diags), s.diags[0])
	}
	return nil
}

func (s *featureState) diagnosticReported(tag string) error {
	for _, d := range s.diags {
		if d.Tag.String() == tag {
			return nil
		}
	}
	return fmt.Errorf("no %q diagnostic among %d findings", tag, len(s.diags))
}

func (s *featureState) diagnosticCount(n int) error {
	if len(s.diags) != n {
		return fmt.Errorf("expected %d diagnostics, got %d", n, len(s.diags))
	}
	return nil
}

func (s *featureState) completionsRequested() error {
	s.items = htmlint.Complete(context.Background(), s.tree, s.offset)
	return nil
}

func (s *featureState) completionLabelsAre(list string) error {
	want := map[string]struct{}{}
	for _, l := range strings.Split(list, ",") {
		want[strings.TrimSpace(l)] = struct{}{}
	}
	got := map[string]struct{}{}
	for _, it := range s.items {
		got[it.Label] = struct{}{}
	}
	for l := range want {
		if _, ok := got[l]; !ok {
			return fmt.Errorf("missing completion %q", l)
		}
	}
	for l := range got {
		if _, ok := want[l]; !ok {
			return fmt.Errorf("unexpected completion %q", l)
		}
	}
	return nil
}

func (s *featureState) completionsInclude(label string) error {
	for _, it := range s.items {
		if it.Label == label {
			return nil
		}
	}
	return fmt.Errorf("completion %q not offered", label)
}

func (s *featureState) completionsExclude(label string) error {
	for _, it := range s.items {
		if it.Label == label {
			return fmt.Errorf("completion %q should not be offered", label)
		}
	}
	return nil
}
