package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonmartinstorm/profilsnusern/internal/contact"
	"github.com/jonmartinstorm/profilsnusern/internal/ui"
)

var contactMsg contact.Message

func init() {
	contactCmd.Flags().StringVar(&contactMsg.Name, "name", "", "avsenderens navn")
	contactCmd.Flags().StringVar(&contactMsg.Email, "email", "", "avsenderens e-post")
	contactCmd.Flags().StringVar(&contactMsg.Subject, "subject", "", "emne")
	contactCmd.Flags().StringVar(&contactMsg.Message, "message", "", "meldingstekst")
	rootCmd.AddCommand(contactCmd)
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send en melding via kontaktskjemaet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(os.Stderr)
		if err != nil {
			return err
		}

		err = contact.NewRelay(cfg.FormEndpoint).Submit(cmd.Context(), contactMsg)
		n := contact.NotificationFor(err)
		style := ui.Green
		if !n.Success {
			style = ui.Red
		}
		fmt.Println(style.Render(n.Title))
		fmt.Println(ui.Dim.Render(n.Description))
		return err
	},
}
