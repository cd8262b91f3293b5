package cli

// Test doubles for the Executor seam.

import "io"

// MockCommand is a Command whose behavior is scripted by the test.
type MockCommand struct {
	Name    string
	Args    []string
	RunFunc func() error
}

func (c *MockCommand) CombinedOutput() ([]byte, error) { return nil, c.Run() }

func (c *MockCommand) Run() error {
	if c.RunFunc != nil {
		return c.RunFunc()
	}
	return nil
}

func (c *MockCommand) SetStdout(w io.Writer) {}
func (c *MockCommand) SetStderr(w io.Writer) {}

// MockExecutor records every command it creates and runs the same
// validators the OS executor would.
type MockExecutor struct {
	Commands      []*MockCommand
	DefaultRunErr error
}

func (m *MockExecutor) Command(name string, args []string, validators ...ExecValidator) (Command, error) {
	spec := ExecSpec{Name: name, Args: args}
	for _, validate := range validators {
		if err := validate(spec); err != nil {
			return nil, err
		}
	}
	cmd := &MockCommand{Name: name, Args: args}
	if m.DefaultRunErr != nil {
		runErr := m.DefaultRunErr
		cmd.RunFunc = func() error { return runErr }
	}
	m.Commands = append(m.Commands, cmd)
	return cmd, nil
}

// LastCommand returns the most recently created command, or nil.
func (m *MockExecutor) LastCommand() *MockCommand {
	if len(m.Commands) == 0 {
		return nil
	}
	return m.Commands[len(m.Commands)-1]
}
