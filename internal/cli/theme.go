package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veda-tools/samhita/internal/userdata"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or set the display theme preference",
	Long: `Theme reads or updates the persisted light/dark preference.
Without an argument it prints the current theme.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	a := newApp()
	defer a.close()

	if len(args) == 0 {
		fmt.Println(userdata.LoadTheme(a.state))
		return nil
	}

	switch args[0] {
	case "light":
		userdata.SaveTheme(a.state, userdata.ThemeLight)
		fmt.Println(userdata.ThemeLight)
	case "dark":
		userdata.SaveTheme(a.state, userdata.ThemeDark)
		fmt.Println(userdata.ThemeDark)
	case "toggle":
		fmt.Println(userdata.ToggleTheme(a.state))
	default:
		return fmt.Errorf("unknown theme %q (want light, dark, or toggle)", args[0])
	}
	return nil
}
