package preview

import (
	"context"
	"os/exec"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/nightswitch/fmcore/pkg/commands"
	"github.com/nightswitch/fmcore/pkg/event"
)

func fakeRunner(output string) *commands.OSCommand {
	runner := commands.NewOSCommand(logrus.NewEntry(logrus.New()))
	runner.SetCommand(func(name string, args ...string) *exec.Cmd {
		return exec.Command("printf", "%s", output)
	})
	return runner
}

func TestJSONProducerCapsAtRowBudget(t *testing.T) {
	runner := fakeRunner("one\ntwo\nthree\nfour\n")
	producer := JSONProducer(runner, "jq . {{.path}}", func() int { return 2 })

	data, err := producer(context.Background(), "/tmp/x.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Kind != event.PreviewText {
		t.Fatalf("expected Text kind, got %+v", data)
	}
	if data.Text != "one\ntwo" {
		t.Fatalf("expected first 2 lines, got %q", data.Text)
	}
}

func TestFirstLinesZeroBudgetIsEmpty(t *testing.T) {
	if got := firstLines("a\nb\nc", 0); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
