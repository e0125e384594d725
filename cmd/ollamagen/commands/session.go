package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lowkeylabs/ollamagen/pkg/cli"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage saved conversations",
	Long: `Manage saved conversations.

A session stores the conversation context returned by the server so a
conversation can continue across CLI invocations:

  ollamagen generate --session trip "Plan a weekend in Bergen"
  ollamagen generate --session trip "Swap Saturday for a museum day"`,
}

var sessionListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cli.DefaultSessionStore()
		if err != nil {
			return err
		}

		names, err := store.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No saved sessions")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMODEL\tTOKENS\tUPDATED")
		for _, name := range names {
			sess, err := store.Load(name)
			if err != nil {
				cli.PrintWarning("skipping %s: %v", name, err)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				sess.Name, sess.Model, len(sess.Context),
				sess.UpdatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
		return nil
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cli.DefaultSessionStore()
		if err != nil {
			return err
		}
		sess, err := store.Load(args[0])
		if err != nil {
			return err
		}
		return outputResult(sess)
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cli.DefaultSessionStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Session %q deleted", args[0])
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)
}
