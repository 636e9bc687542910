package command

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// yt-dlp exits with 101 when --max-downloads is reached, which is expected.
const exitStatusMaxDownloads = "exit status 101"

type CommandExecutor interface {
	RunCommandWithTimeout(executable string, timeout time.Duration, args ...string) (chan *string, chan error)
}

type DefaultCommandExecutor struct{}

func (command *DefaultCommandExecutor) RunCommandWithTimeout(
	executable string,
	timeout time.Duration,
	args ...string,
) (chan *string, chan error) {
	resultChannel := make(chan *string, 1)
	errorChannel := make(chan error, 1)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		stdout, err := exec.CommandContext(ctx, executable, args...).Output()

		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			errorChannel <- errors.Errorf("operation timed out after %d seconds", int(timeout.Seconds()))
			return
		}

		if err != nil && !strings.Contains(err.Error(), exitStatusMaxDownloads) {
			errorChannel <- errors.Wrapf(err, "%s", executable)
			return
		}

		stdoutString := string(stdout)
		resultChannel <- &stdoutString
	}()

	return resultChannel, errorChannel
}
