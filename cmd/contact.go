package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/portfolio-rain/internal/contact"
	"github.com/iburimskiy/portfolio-rain/internal/notify"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Contact.Endpoint == "" {
			return fmt.Errorf("contact.endpoint is not configured")
		}
		timeout := time.Duration(cfg.Contact.TimeoutSeconds) * time.Second
		client := contact.NewClient(cfg.Contact.Endpoint,
			contact.WithMethod(cfg.Contact.Method),
			contact.WithHTTPClient(&http.Client{Timeout: timeout}),
			contact.WithLogger(logger.Named("contact")),
		)

		res := client.Submit(context.Background(), contact.Form{
			Name:    contactName,
			Email:   contactEmail,
			Message: contactMessage,
		})
		if res.Kind != notify.Success {
			return errors.New(res.Text)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return nil
	},
}

func init() {
	contactCmd.Flags().StringVar(&contactName, "name", "", "your name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "your email address")
	contactCmd.Flags().StringVarP(&contactMessage, "message", "m", "", "message text")
	rootCmd.AddCommand(contactCmd)
}
