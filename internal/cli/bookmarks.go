package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veda-tools/samhita/internal/userdata"
)

// bookmarksCmd represents the bookmarks command group
var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Manage bookmarked verses",
	Long: `Bookmarks is your saved set of verse ids. Bookmarks reference
verses by id only; the verse data itself always comes from the corpus.

  samhita bookmarks list
  samhita bookmarks add RV.1.1.1
  samhita bookmarks toggle RV.1.1.1`,
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked verse ids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		bookmarks := userdata.LoadBookmarks(a.state)
		ids := bookmarks.List()

		if a.cfg.Output.JSON {
			if ids == nil {
				ids = []string{}
			}
			return renderJSON(os.Stdout, ids)
		}
		if len(ids) == 0 {
			fmt.Println("No bookmarks.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var bookmarksAddCmd = &cobra.Command{
	Use:   "add <verse-id>",
	Short: "Bookmark a verse id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		bookmarks := userdata.LoadBookmarks(a.state)
		bookmarks.Add(args[0])
		fmt.Printf("Bookmarked %s.\n", args[0])
		return nil
	},
}

var bookmarksRemoveCmd = &cobra.Command{
	Use:   "remove <verse-id>",
	Short: "Remove a bookmarked verse id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		bookmarks := userdata.LoadBookmarks(a.state)
		bookmarks.Remove(args[0])
		fmt.Printf("Removed %s.\n", args[0])
		return nil
	},
}

var bookmarksToggleCmd = &cobra.Command{
	Use:   "toggle <verse-id>",
	Short: "Toggle a verse id's bookmark state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		defer a.close()

		bookmarks := userdata.LoadBookmarks(a.state)
		bookmarks.Toggle(args[0])
		if bookmarks.Contains(args[0]) {
			fmt.Printf("Bookmarked %s.\n", args[0])
		} else {
			fmt.Printf("Removed %s.\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd)
	bookmarksCmd.AddCommand(bookmarksAddCmd)
	bookmarksCmd.AddCommand(bookmarksRemoveCmd)
	bookmarksCmd.AddCommand(bookmarksToggleCmd)
}
