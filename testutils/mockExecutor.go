package testutils

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// MockCommandExecutor answers every command with a canned stdout or exit code
// and records the arguments it was called with.
type MockCommandExecutor struct {
	MockStdoutResult string
	MockExitCode     int

	mutex sync.Mutex
	calls [][]string
}

func (command *MockCommandExecutor) RunCommandWithTimeout(
	executable string,
	timeout time.Duration,
	args ...string,
) (chan *string, chan error) {
	resultChannel := make(chan *string, 1)
	errorChannel := make(chan error, 1)

	command.mutex.Lock()
	command.calls = append(command.calls, append([]string{executable}, args...))
	stdout := command.MockStdoutResult
	exitCode := command.MockExitCode
	command.mutex.Unlock()

	go func() {
		if exitCode != 0 {
			errorChannel <- errors.Errorf("exit status %d", exitCode)
		} else {
			resultChannel <- &stdout
		}
	}()

	return resultChannel, errorChannel
}

func (command *MockCommandExecutor) Calls() [][]string {
	command.mutex.Lock()
	defer command.mutex.Unlock()
	return command.calls
}
