package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/ollamagen/pkg/cli"
	"github.com/lowkeylabs/ollamagen/pkg/ollama"
)

// generateFlags are the request-shaping flags shared by generate and stream.
type generateFlags struct {
	file    string
	model   string
	system  string
	suffix  string
	format  string
	raw     bool
	session string
	stats   bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "request file (YAML or JSON, - for stdin)")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "model to use (overrides context default)")
	cmd.Flags().StringVar(&f.system, "system", "", "system instruction")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "text appended after the generated output")
	cmd.Flags().StringVar(&f.format, "format", "", `output format ("" or "json")`)
	cmd.Flags().BoolVar(&f.raw, "raw", false, "send the prompt without templating")
	cmd.Flags().StringVar(&f.session, "session", "", "named session to resume and update")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "print timing and token metrics")
}

// buildRequest assembles the generate request from a request file, the
// positional prompt, and flag overrides.
func (f *generateFlags) buildRequest(args []string) (*ollama.GenerateRequest, error) {
	req := ollama.NewGenerateRequest(strings.Join(args, " "))
	req.Model = "" // let the client's context default apply unless set below

	switch {
	case f.file == "-":
		if err := cli.LoadRequestFromStdin(req); err != nil {
			return nil, err
		}
	case f.file != "":
		if err := cli.LoadRequest(f.file, req); err != nil {
			return nil, err
		}
	}

	if f.model != "" {
		req.Model = f.model
	}
	if f.system != "" {
		req.System = f.system
	}
	if f.suffix != "" {
		req.Suffix = f.suffix
	}
	if f.format != "" {
		req.Format = ollama.Format(f.format)
	}
	if f.raw {
		req.Raw = true
	}

	if !req.Format.Valid() {
		return nil, fmt.Errorf("invalid format %q (want \"\" or \"json\")", req.Format)
	}
	if req.Prompt == "" {
		return nil, fmt.Errorf("no prompt given: pass it as an argument or in a request file")
	}
	return req, nil
}

// loadSession wires a saved session into the client, returning the session
// and its store, or (nil, nil) when no session was requested.
func (f *generateFlags) loadSession(client *ollama.Client) (*cli.SessionStore, *cli.Session, error) {
	if f.session == "" {
		return nil, nil, nil
	}
	store, err := cli.DefaultSessionStore()
	if err != nil {
		return nil, nil, err
	}
	sess, err := store.LoadOrCreate(f.session)
	if err != nil {
		return nil, nil, err
	}
	client.SetContext(sess.Context)
	printVerbose("Session %s: %d context tokens", sess.Name, len(sess.Context))
	return store, sess, nil
}

// saveSession persists the client's conversation context back to the session.
func saveSession(store *cli.SessionStore, sess *cli.Session, client *ollama.Client, model string) error {
	if store == nil {
		return nil
	}
	sess.Context = client.Context()
	if model != "" {
		sess.Model = model
	}
	return store.Save(sess)
}

var generateFlagsOneShot generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a completion",
	Long: `Generate a completion and print it once it is fully produced.

Examples:
  ollamagen generate "Why is the sky blue?"
  ollamagen generate -m mistral --format json "List three facts about the moon as JSON"
  ollamagen generate -f request.yaml --json --jq '.response'
  ollamagen generate --session sky "And why is it red at sunset?"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := &generateFlagsOneShot

		req, err := f.buildRequest(args)
		if err != nil {
			return err
		}

		cfgCtx, err := getContext()
		if err != nil {
			return err
		}
		client := createClient(cfgCtx)

		store, sess, err := f.loadSession(client)
		if err != nil {
			return err
		}

		printVerbose("Using context: %s", cfgCtx.Name)
		printVerbose("Model: %s", pickModel(req, cfgCtx))

		resp, err := client.Generate.Create(context.Background(), req)
		if err != nil {
			return fmt.Errorf("generate failed: %w", err)
		}

		if err := saveSession(store, sess, client, pickModel(req, cfgCtx)); err != nil {
			return err
		}

		if f.stats {
			printStats(resp)
		}

		if outputJSON || jqExpr != "" || outputFile != "" {
			return outputResult(resp)
		}
		fmt.Println(resp.Response)
		return nil
	},
}

var generateFlagsStream generateFlags

var streamCmd = &cobra.Command{
	Use:   "stream [prompt]",
	Short: "Generate a completion, streaming fragments as they arrive",
	Long: `Generate a completion and print each fragment as the service
produces it. Stops on the first stream error.

Examples:
  ollamagen stream "Tell me a story about a lighthouse"
  ollamagen stream --session story "Continue it"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := &generateFlagsStream

		req, err := f.buildRequest(args)
		if err != nil {
			return err
		}

		cfgCtx, err := getContext()
		if err != nil {
			return err
		}
		client := createClient(cfgCtx)

		store, sess, err := f.loadSession(client)
		if err != nil {
			return err
		}

		printVerbose("Using context: %s", cfgCtx.Name)
		printVerbose("Model: %s", pickModel(req, cfgCtx))

		var terminal *ollama.StreamEvent
		for event, err := range client.Generate.CreateStream(context.Background(), req) {
			if err != nil {
				fmt.Println()
				return fmt.Errorf("stream failed: %w", err)
			}
			fmt.Print(event.Response)
			os.Stdout.Sync()
			if event.Done {
				terminal = event
			}
		}
		fmt.Println()

		if terminal == nil {
			return fmt.Errorf("stream ended without a terminal event")
		}

		if err := saveSession(store, sess, client, pickModel(req, cfgCtx)); err != nil {
			return err
		}

		if f.stats {
			cli.PrintInfo("%s: %d tok in %s (%s)",
				terminal.DoneReason,
				terminal.EvalCount,
				cli.FormatDuration(terminal.EvalDuration),
				cli.FormatTokensPerSecond(terminal.EvalCount, terminal.EvalDuration),
			)
		}
		return nil
	},
}

// pickModel reports the model a request will run against, for verbose output.
func pickModel(req *ollama.GenerateRequest, ctx *cli.Context) string {
	if req.Model != "" {
		return req.Model
	}
	if ctx.Model != "" {
		return ctx.Model
	}
	return ollama.DefaultModel
}

func init() {
	generateFlagsOneShot.register(generateCmd)
	generateFlagsStream.register(streamCmd)
}
