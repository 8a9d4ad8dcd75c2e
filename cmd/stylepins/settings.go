package main

import (
	"errors"

	"github.com/spf13/cobra"

	"stylepins/internal/catalog"
)

var errInvalidCredentials = errors.New("invalid username or password")

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change social links and the admin password",
	}
	cmd.AddCommand(newSettingsShowCmd(a), newSettingsSetCmd(a))
	return cmd
}

func newSettingsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the social links",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			links := a.store.State().Settings.Links()
			rows := make([][]string, 0, len(links))
			for _, l := range links {
				rows = append(rows, []string{l.Network, l.Value})
			}
			return a.print(links, tableData{headers: []string{"NETWORK", "VALUE"}, rows: rows})
		},
	}
}

func newSettingsSetCmd(a *app) *cobra.Command {
	var (
		whatsapp, instagram, telegram, youtube, pinterest string
		u                                                 catalog.SettingsUpdate
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change social links or the admin password",
		Long: "Change social links or the admin password. Only the flags given are changed.\n" +
			"A new password must be repeated with --confirm-password.",
		Args:    cobra.NoArgs,
		PreRunE: a.requireAdmin,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			link := func(name string, v *string) *string {
				if flags.Changed(name) {
					return v
				}
				return nil
			}
			u.WhatsApp = link("whatsapp", &whatsapp)
			u.Instagram = link("instagram", &instagram)
			u.Telegram = link("telegram", &telegram)
			u.YouTube = link("youtube", &youtube)
			u.Pinterest = link("pinterest", &pinterest)

			if err := a.store.UpdateSettings(cmd.Context(), u); err != nil {
				return err
			}
			links := a.store.State().Settings.Links()
			rows := make([][]string, 0, len(links))
			for _, l := range links {
				rows = append(rows, []string{l.Network, l.Value})
			}
			return a.print(links, tableData{headers: []string{"NETWORK", "VALUE"}, rows: rows})
		},
	}
	f := cmd.Flags()
	f.StringVar(&whatsapp, "whatsapp", "", "WhatsApp number")
	f.StringVar(&instagram, "instagram", "", "Instagram handle")
	f.StringVar(&telegram, "telegram", "", "Telegram channel")
	f.StringVar(&youtube, "youtube", "", "YouTube channel")
	f.StringVar(&pinterest, "pinterest", "", "Pinterest account")
	f.StringVar(&u.NewPassword, "new-password", "", "new admin password")
	f.StringVar(&u.ConfirmPassword, "confirm-password", "", "repeat the new admin password")
	return cmd
}

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check admin credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, password := a.credentials(cmd)
			if !a.store.Authenticate(username, password) {
				return errInvalidCredentials
			}
			return a.print(map[string]any{"authenticated": true, "username": username}, tableData{
				headers: []string{"USERNAME", "AUTHENTICATED"},
				rows:    [][]string{{username, "yes"}},
			})
		},
	}
}
