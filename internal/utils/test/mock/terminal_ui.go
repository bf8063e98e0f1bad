package mock

import (
	"bytes"
	"io"

	"github.com/Netflix/go-expect"
	"github.com/hinshun/vt10x"

	"github.com/graelo/milvus-project-helper/internal/terminal"
)

// UIOptions are the options to configure the mock terminal UI
type UIOptions struct {
	AutoConfirm bool
	UseColors   bool
	UseJSON     bool
}

func newUIConfig(options UIOptions) terminal.UIConfig {
	outputFormat := terminal.OutputFormatText
	if options.UseJSON {
		outputFormat = terminal.OutputFormatJSON
	}

	return terminal.UIConfig{
		AutoConfirm:   options.AutoConfirm,
		DisableColors: !options.UseColors,
		OutputFormat:  outputFormat,
	}
}

// NewUI returns a new *bytes.Buffer and a mock terminal UI that writes to the buffer
func NewUI() (*bytes.Buffer, terminal.UI) {
	out := new(bytes.Buffer)
	return out, NewUIWithOptions(UIOptions{}, out)
}

// NewUIWithOptions creates a new mock terminal UI based on the provided options
func NewUIWithOptions(options UIOptions, writer io.Writer) terminal.UI {
	return terminal.NewUI(newUIConfig(options), nil, writer, writer)
}

// NewVT10XConsole returns a new *bytes.Buffer and a *expect.Console
// along with its corresponding mock terminal UI that write to the buffer
func NewVT10XConsole() (*bytes.Buffer, *expect.Console, terminal.UI, error) {
	out := new(bytes.Buffer)
	console, ui, err := NewVT10XConsoleWithOptions(UIOptions{}, out)
	return out, console, ui, err
}

// NewVT10XConsoleWithOptions creates a new *expect.Console
// along with its corresponding mock terminal UI based on the provided options
func NewVT10XConsoleWithOptions(options UIOptions, writers ...io.Writer) (*expect.Console, terminal.UI, error) {
	console, _, err := vt10x.NewVT10XConsole(expect.WithStdout(writers...))
	if err != nil {
		return nil, nil, err
	}

	ui := terminal.NewUI(
		newUIConfig(options),
		console.Tty(),
		console.Tty(),
		console.Tty(),
	)

	return console, ui, nil
}
