package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"elevatehub/internal/catalog"
	"elevatehub/internal/client"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/localstore"
)

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("askbot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("askbot: %v", err)
	}
}

type session struct {
	opts     *options
	api      *client.Client
	conv     *client.Conversation
	project  *client.ProjectSelection
	settings *client.SettingsContext
	store    *localstore.Store
	actions  []models.QuickAction
	out      *renderer
}

func run(ctx context.Context, opts *options, in io.Reader, stdout io.Writer) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	if opts.Store != localstore.Memory {
		if err := os.MkdirAll(filepath.Dir(opts.Store), 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	store, err := localstore.Open(opts.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	registry, err := catalog.NewRegistry()
	if err != nil {
		return err
	}

	clientOpts := []client.Option{client.WithTimeout(opts.Timeout)}
	if opts.Token != "" {
		clientOpts = append(clientOpts, client.WithToken(opts.Token))
	}
	api := client.New(opts.URL, clientOpts...)

	s := &session{
		opts:     opts,
		api:      api,
		conv:     client.NewConversation(api, opts.User, logger),
		project:  client.NewProjectSelection(),
		settings: client.NewSettingsContext(store, logger),
		store:    store,
		actions:  registry.QuickActions(),
		out:      newRenderer(stdout, opts.NoColor),
	}
	if err := s.settings.Load(ctx); err != nil {
		return err
	}
	if err := s.project.Restore(ctx, store); err != nil {
		logger.Warn("failed to restore project selection", "error", err)
	}
	s.project.Subscribe(func(id, name string) {
		if err := s.project.Save(ctx, store); err != nil {
			s.out.errorf("could not save project selection: %v", err)
		}
		if id != "" {
			s.out.info("Project: %s", name)
		}
	})
	s.settings.OnSaved(func(models.JSONMap) { s.out.info("Settings saved.") })

	s.out.banner(opts.URL, s.conv.CheckHealth(ctx))
	for _, m := range s.conv.Messages() {
		s.out.message(m)
	}
	if s.conv.ShowQuickActions() {
		s.out.quickActions(s.actions)
	}

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(stdout, "> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if done := s.handleCommand(ctx, parseCommand(line)); done {
				return nil
			}
			continue
		}
		s.send(ctx, line)
	}
}

func (s *session) send(ctx context.Context, text string) {
	if reply := s.conv.Send(ctx, text); reply != nil {
		s.out.message(*reply)
		s.out.suggestions(s.conv.Suggestions())
	}
}

// handleCommand runs one slash command and reports whether to quit
func (s *session) handleCommand(ctx context.Context, cmd command) bool {
	switch cmd.Name {
	case "exit":
		return true
	case "help":
		s.out.info(helpText)
	case "clear":
		s.conv.Clear()
		for _, m := range s.conv.Messages() {
			s.out.message(m)
		}
		s.out.quickActions(s.actions)
	case "health":
		if s.conv.CheckHealth(ctx) {
			s.out.info("API is online.")
		} else {
			s.out.errorf("API is offline; replies come from the local assistant.")
		}
	case "actions":
		s.out.quickActions(s.actions)
	case "action":
		i, ok := pickIndex(cmd.rest(), len(s.actions), func(i int) string { return s.actions[i].ID })
		if !ok {
			s.out.errorf("unknown quick action %q", cmd.rest())
			return false
		}
		action := s.actions[i]
		s.out.message(models.Message{Sender: models.SenderUser, Content: action.Prompt})
		reply := s.conv.SendQuickAction(ctx, action)
		s.out.message(*reply)
		s.out.suggestions(s.conv.Suggestions())
	case "suggest":
		i, ok := pickIndex(cmd.rest(), len(s.conv.Suggestions()), func(int) string { return "" })
		if !ok {
			s.out.errorf("no suggestion %q", cmd.rest())
			return false
		}
		text, _ := s.conv.UseSuggestion(i)
		s.out.message(models.Message{Sender: models.SenderUser, Content: text})
		s.send(ctx, text)
	case "search":
		s.search(ctx, cmd.rest())
	case "projects":
		s.listProjects(ctx)
	case "project":
		s.selectProject(ctx, cmd.rest())
	case "sessions":
		s.listSessions(ctx)
	case "settings":
		s.out.settings(s.settings.Settings(), s.settings.HasUnsavedChanges())
	case "set":
		if len(cmd.Args) < 2 {
			s.out.errorf("usage: /set <key> <value>")
			return false
		}
		s.settings.Update(cmd.Args[0], parseValue(strings.Join(cmd.Args[1:], " ")))
	case "save":
		if err := s.settings.Save(ctx); err != nil {
			s.out.errorf("save failed: %v", err)
		}
	case "reset":
		if err := s.settings.Reset(ctx); err != nil {
			s.out.errorf("reset failed: %v", err)
			return false
		}
		s.out.info("Settings restored to defaults.")
	default:
		s.out.errorf("unknown command, try /help")
	}
	return false
}

func (s *session) search(ctx context.Context, query string) {
	results, err := s.api.SearchKnowledge(ctx, query, "", 0)
	if err != nil {
		s.out.errorf("search failed: %v", err)
		return
	}
	if len(results) == 0 {
		s.out.info("No matching articles.")
		return
	}
	for _, r := range results {
		s.out.info("%s [%s] %.2f\n    %s", r.Entry.Title, r.Entry.Category, r.RelevanceScore, r.Snippet)
	}
}

func (s *session) listProjects(ctx context.Context) {
	projects, err := s.api.Projects(ctx)
	if err != nil {
		s.out.errorf("could not load projects: %v", err)
		return
	}
	selected, _, _ := s.project.Selected()
	for _, p := range projects {
		marker := " "
		if p.ID == selected {
			marker = "*"
		}
		s.out.info("%s %-16s %s (%s, %d%%)", marker, p.ID, p.Name, p.Status, p.Progress)
	}
}

func (s *session) selectProject(ctx context.Context, id string) {
	if id == "" {
		s.project.Clear()
		s.out.info("Project selection cleared.")
		return
	}
	data, err := s.api.Project(ctx, id)
	if err != nil {
		s.out.errorf("could not load project %q: %v", id, err)
		return
	}
	s.project.Select(data.Project.ID, data.Project.Name)
}

func (s *session) listSessions(ctx context.Context) {
	sessions, err := s.api.Sessions(ctx, s.opts.User)
	if err != nil {
		s.out.errorf("could not list sessions: %v", err)
		return
	}
	for _, sess := range sessions {
		status := "idle"
		if sess.IsActive {
			status = "active"
		}
		s.out.info("%s  %d messages  %s  %s", sess.ID, len(sess.Messages), status, sess.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
