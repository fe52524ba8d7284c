package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketprep/pocketprep/internal/ai"
	"github.com/pocketprep/pocketprep/internal/chat"
	"github.com/pocketprep/pocketprep/internal/cli"
	"github.com/pocketprep/pocketprep/internal/model"
	"github.com/pocketprep/pocketprep/internal/suggest"
)

func suggestCmd() *cobra.Command {
	var tripType, tripDuration, tripClimate string
	var saveName string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "suggest [query]",
		Short: "Get AI packing suggestions",
		Long: `Ask for packing suggestions in plain language, or describe the trip
with --type, --duration, and --climate. Without a configured AI provider the
suggestions come from the built-in tables, so this always works offline.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator, err := newGenerator()
			if err != nil {
				return err
			}

			session := ai.NewSession(generator)
			defer session.Close()
			orchestrator := chat.New(session)

			if interactive {
				return runInteractive(cmd, orchestrator)
			}

			switch {
			case tripType != "" || tripDuration != "" || tripClimate != "":
				trip, err := resolveTrip(tripType, tripDuration, tripClimate)
				if err != nil {
					return err
				}
				orchestrator.SendWithContext(trip.Type, trip.Duration, trip.Climate)
			case len(args) == 1:
				orchestrator.SendMessage(args[0])
			default:
				return fmt.Errorf("provide a query or trip flags (see --help)")
			}

			orchestrator.Wait()
			snapshot := orchestrator.Snapshot()
			renderTurn(snapshot)

			if saveName != "" {
				return saveSuggestions(cmd, saveName, orchestrator.Suggestions())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tripType, "type", "", "trip type (beach, camping, business, ...)")
	cmd.Flags().StringVar(&tripDuration, "duration", "", "trip duration (day, weekend, week, extended)")
	cmd.Flags().StringVar(&tripClimate, "climate", "", "expected climate (hot, warm, cold, rainy, mixed)")
	cmd.Flags().StringVar(&saveName, "save", "", "save the suggestions as a new list with this name")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "start an interactive suggestion chat")

	return cmd
}

// runInteractive drives a multi-turn suggestion chat on stdin.
func runInteractive(cmd *cobra.Command, orchestrator *chat.Orchestrator) error {
	cmd.Println(cli.TitleStyle.Render("PocketPrep suggestions"))
	cmd.Println(cli.SubtleStyle.Render("Describe your trip. Commands: /save <name>, /remove <item>, /clear, /quit"))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cli.UserMessageStyle.Render("> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/clear":
			orchestrator.ClearChat()
			cmd.Println(cli.SubtleStyle.Render("Chat cleared."))
			continue
		case strings.HasPrefix(line, "/remove "):
			item := strings.TrimSpace(strings.TrimPrefix(line, "/remove "))
			orchestrator.RemoveSuggestion(item)
			cli.RenderSuggestions(os.Stdout, orchestrator.Snapshot().Suggestions)
			continue
		case strings.HasPrefix(line, "/save "):
			name := strings.TrimSpace(strings.TrimPrefix(line, "/save "))
			if err := saveSuggestions(cmd, name, orchestrator.Suggestions()); err != nil {
				cmd.Println(cli.ErrorStyle.Render(err.Error()))
			}
			continue
		}

		orchestrator.SendMessage(line)
		orchestrator.Wait()
		renderTurn(orchestrator.Snapshot())
	}

	return scanner.Err()
}

// renderTurn prints the last assistant message and the active suggestions.
func renderTurn(snapshot chat.Snapshot) {
	for i := len(snapshot.Messages) - 1; i >= 0; i-- {
		if !snapshot.Messages[i].FromUser {
			cli.RenderChatMessage(os.Stdout, snapshot.Messages[i])
			break
		}
	}
	cli.RenderSuggestions(os.Stdout, snapshot.Suggestions)
}

// saveSuggestions materializes the suggested items into a stored list.
func saveSuggestions(cmd *cobra.Command, name string, items []string) error {
	if len(items) == 0 {
		return fmt.Errorf("no suggestions to save")
	}

	store, err := initStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	list := suggest.BuildList(name, items)
	if err := store.CreateList(cmd.Context(), &list); err != nil {
		return err
	}

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved %d items to %s", len(list.Items), list.Name)))
	cmd.Println(cli.SubtleStyle.Render("id: " + list.ID))
	return nil
}

// resolveTrip maps the flag shorthands onto trip context values. Unset flags
// get a sensible default so a single flag is enough.
func resolveTrip(typeFlag, durationFlag, climateFlag string) (*model.TripContext, error) {
	trip := &model.TripContext{
		Type:     model.TripTypeTravel,
		Duration: model.DurationWeekend,
		Climate:  model.ClimateMixed,
	}

	if typeFlag != "" {
		t, err := matchTripType(typeFlag)
		if err != nil {
			return nil, err
		}
		trip.Type = t
	}
	if durationFlag != "" {
		d, err := matchTripDuration(durationFlag)
		if err != nil {
			return nil, err
		}
		trip.Duration = d
	}
	if climateFlag != "" {
		c, err := matchTripClimate(climateFlag)
		if err != nil {
			return nil, err
		}
		trip.Climate = c
	}

	return trip, nil
}

func matchTripType(s string) (model.TripType, error) {
	lowered := strings.ToLower(s)
	for _, t := range model.TripTypes() {
		if strings.Contains(strings.ToLower(string(t)), lowered) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown trip type %q (options: %s)", s, joinTripTypes())
}

func matchTripDuration(s string) (model.TripDuration, error) {
	// "week" is a substring of "weekend", so durations go through explicit
	// aliases rather than substring matching.
	switch strings.ToLower(s) {
	case "day", "day trip":
		return model.DurationDayTrip, nil
	case "weekend":
		return model.DurationWeekend, nil
	case "week", "1 week":
		return model.DurationWeek, nil
	case "extended", "2+ weeks":
		return model.DurationExtended, nil
	default:
		return "", fmt.Errorf("unknown duration %q (options: day, weekend, week, extended)", s)
	}
}

func matchTripClimate(s string) (model.TripClimate, error) {
	lowered := strings.ToLower(s)
	for _, c := range model.TripClimates() {
		if strings.Contains(strings.ToLower(string(c)), lowered) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown climate %q (options: hot, warm, cold, rainy, mixed)", s)
}

func joinTripTypes() string {
	types := model.TripTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
