// Package commands wraps os/exec the way the rest of this module's ambient
// stack does: a thin runner that logs what it invoked and how long it took,
// and a sanitised-output helper that turns a bare exit error into something
// with stderr attached.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-errors/errors"
	"github.com/mgutz/str"
	"github.com/sirupsen/logrus"
)

// Platform stores the small amount of os-specific state the runner needs.
type Platform struct {
	os       string
	shell    string
	shellArg string
}

func getPlatform() *Platform {
	if runtime.GOOS == "windows" {
		return &Platform{os: "windows", shell: "cmd", shellArg: "/c"}
	}
	return &Platform{os: runtime.GOOS, shell: "bash", shellArg: "-c"}
}

// OSCommand runs collaborator subprocesses (the JSON pretty-printer, archive
// lister, video thumbnailer, and openers) and logs what it ran.
type OSCommand struct {
	Log      *logrus.Entry
	Platform *Platform
	command  func(string, ...string) *exec.Cmd
}

// NewOSCommand builds a runner.
func NewOSCommand(log *logrus.Entry) *OSCommand {
	return &OSCommand{
		Log:      log,
		Platform: getPlatform(),
		command:  exec.Command,
	}
}

// SetCommand overrides the command constructor. For tests only.
func (c *OSCommand) SetCommand(cmd func(string, ...string) *exec.Cmd) {
	c.command = cmd
}

// RunCommandWithOutputContext runs a shell-style command string and returns
// its stdout, cancellable via ctx.
func (c *OSCommand) RunCommandWithOutputContext(ctx context.Context, command string) (string, error) {
	cmd := c.ExecutableFromStringContext(ctx, command)
	before := time.Now()
	output, err := sanitisedCommandOutput(cmd.Output())
	c.Log.Debug(fmt.Sprintf("'%s': %s", command, time.Since(before)))
	return output, err
}

// ExecutableFromStringContext splits a command string like "jq . file.json"
// into an executable, cancellable via ctx.
func (c *OSCommand) ExecutableFromStringContext(ctx context.Context, commandStr string) *exec.Cmd {
	splitCmd := str.ToArgv(commandStr)
	base := c.command(splitCmd[0], splitCmd[1:]...)
	cmd := exec.CommandContext(ctx, base.Path)
	cmd.Args = base.Args
	cmd.Env = os.Environ()
	return cmd
}

// Quote wraps a message in platform-specific quotation marks, for building
// opener/collaborator command templates that embed a path.
func (c *OSCommand) Quote(message string) string {
	var quote string
	if c.Platform.os == "windows" {
		quote = `\"`
		message = strings.NewReplacer(
			`"`, `"'"'"`,
			`\"`, `\\"`,
		).Replace(message)
	} else {
		quote = `"`
		message = strings.NewReplacer(
			`\`, `\\`,
			`"`, `\"`,
			`$`, `\$`,
			"`", "\\`",
		).Replace(message)
	}
	return quote + message + quote
}

func sanitisedCommandOutput(output []byte, err error) (string, error) {
	outputString := string(output)
	if err == nil {
		return outputString, nil
	}

	if exitError, ok := err.(*exec.ExitError); ok {
		if len(exitError.Stderr) > 0 {
			return outputString, errors.New(string(exitError.Stderr))
		}
		return outputString, errors.New(err.Error())
	}
	if _, ok := err.(*exec.Error); ok {
		return "", NewComplexError(ErrSubprocessMissing, err.Error())
	}
	if os.IsPermission(err) {
		return "", NewComplexError(ErrPermissionDenied, err.Error())
	}
	return "", WrapError(err)
}
