package plot

import "fmt"

// Command is a user action the assembler responds to.
type Command int

const (
	// CommandPlotChart plots the current selection.
	CommandPlotChart Command = iota + 1
)

var commandNames = map[Command]string{
	CommandPlotChart: "plot-chart",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand returns the command with the given name.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
