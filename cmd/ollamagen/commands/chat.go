package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/ollamagen/pkg/cli"
	"github.com/lowkeylabs/ollamagen/pkg/ollama"
)

var chatSession string

var chatCmd = &cobra.Command{
	Use:     "chat",
	Aliases: []string{"i", "repl"},
	Short:   "Interactive conversation",
	Long: `Start an interactive conversation. Each turn streams the answer and
carries the conversation context into the next turn.

Commands inside the conversation:
  /reset     forget the conversation so far
  /context   show how many context tokens are carried
  /model <m> switch model for the following turns
  /quit      leave (also Ctrl-D)

Examples:
  ollamagen chat
  ollamagen chat --session trip`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	cfgCtx, err := getContext()
	if err != nil {
		return err
	}
	client := createClient(cfgCtx)

	var store *cli.SessionStore
	var sess *cli.Session
	if chatSession != "" {
		store, err = cli.DefaultSessionStore()
		if err != nil {
			return err
		}
		sess, err = store.LoadOrCreate(chatSession)
		if err != nil {
			return err
		}
		client.SetContext(sess.Context)
		cli.PrintInfo("Resumed session %q (%d context tokens)", sess.Name, len(sess.Context))
	}

	model := cfgCtx.Model
	if model == "" {
		model = ollama.DefaultModel
	}
	fmt.Printf("Chatting with %s. /quit to leave, /reset to start over.\n\n", model)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s> ", model)
		if !scanner.Scan() {
			fmt.Println()
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			done, err := handleChatCommand(line, client, &model)
			if err != nil {
				cli.PrintError("%v", err)
			}
			if done {
				break
			}
			continue
		}

		req := ollama.NewGenerateRequest(line)
		req.Model = model

		for event, err := range client.Generate.CreateStream(context.Background(), req) {
			if err != nil {
				fmt.Println()
				cli.PrintError("%v", err)
				break
			}
			fmt.Print(event.Response)
		}
		fmt.Println()

		if sess != nil {
			sess.Context = client.Context()
			sess.Model = model
			if err := store.Save(sess); err != nil {
				cli.PrintWarning("failed to save session: %v", err)
			}
		}
	}

	return scanner.Err()
}

// handleChatCommand runs a /command. It reports whether the loop should end.
func handleChatCommand(line string, client *ollama.Client, model *string) (bool, error) {
	parts := strings.Fields(line)
	switch parts[0] {
	case "/quit", "/exit", "/q":
		return true, nil

	case "/reset":
		client.ResetContext()
		cli.PrintInfo("Conversation reset")
		return false, nil

	case "/context":
		cli.PrintInfo("%d context tokens carried", len(client.Context()))
		return false, nil

	case "/model":
		if len(parts) < 2 {
			return false, fmt.Errorf("usage: /model <name>")
		}
		*model = parts[1]
		cli.PrintInfo("Switched to %s (context kept)", *model)
		return false, nil

	case "/help", "/?":
		fmt.Println("/reset, /context, /model <name>, /quit")
		return false, nil

	default:
		return false, fmt.Errorf("unknown command %s (try /help)", parts[0])
	}
}

func init() {
	chatCmd.Flags().StringVar(&chatSession, "session", "", "named session to resume and update")
}
