package tui

import "strings"

// Command is a line typed at the ':' prompt. Name is lowercased and
// aliases are resolved, so "q" arrives as "quit".
type Command struct {
	Name string
	Args string
}

var commandAliases = map[string]string{
	"q":   "quit",
	"h":   "help",
	"fav": "favorites",
	"s":   "search",
}

// ParseCommand splits input into a command name and its arguments. A leading
// ':' is ignored.
func ParseCommand(input string) Command {
	input = strings.TrimPrefix(strings.TrimSpace(input), ":")
	name, args, _ := strings.Cut(strings.TrimSpace(input), " ")
	name = strings.ToLower(name)
	if full, ok := commandAliases[name]; ok {
		name = full
	}
	return Command{Name: name, Args: strings.TrimSpace(args)}
}
