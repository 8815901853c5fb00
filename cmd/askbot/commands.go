package main

import (
	"strconv"
	"strings"
)

const helpText = `Commands:
  /help                 Show this message
  /exit                 Quit
  /clear                Start the chat view over
  /health               Check the API connection
  /actions              List quick actions
  /action <n|id>        Send a quick action
  /suggest <n>          Send a suggested follow-up
  /search <query>       Search the knowledge base
  /projects             List projects
  /project <id>         Select a project
  /sessions             List your recent sessions
  /settings             Show settings
  /set <key> <value>    Change a setting
  /save                 Save settings
  /reset                Restore default settings`

type command struct {
	Name string
	Args []string
}

// parseCommand splits "/name arg..." into its parts
func parseCommand(input string) command {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(input), "/"))
	if len(fields) == 0 {
		return command{}
	}
	name := strings.ToLower(fields[0])
	if name == "quit" {
		name = "exit"
	}
	return command{Name: name, Args: fields[1:]}
}

func (c command) rest() string {
	return strings.Join(c.Args, " ")
}

// parseValue turns a /set argument into a JSON-compatible value
func parseValue(raw string) interface{} {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// pickIndex resolves a 1-based position or an id against n items
func pickIndex(arg string, n int, id func(int) string) (int, bool) {
	if i, err := strconv.Atoi(arg); err == nil {
		if i >= 1 && i <= n {
			return i - 1, true
		}
		return 0, false
	}
	for i := 0; i < n; i++ {
		if id(i) == arg {
			return i, true
		}
	}
	return 0, false
}
