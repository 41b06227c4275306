package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"billed/internal/client"
	"billed/internal/mockstore"
	"billed/internal/newbill"
	"billed/internal/router"
	"billed/internal/routes"
	"billed/internal/session"
	"billed/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errFileRejected = errors.New("receipt rejected: only jpg, jpeg and png files are accepted")

type options struct {
	apiURL      string
	sessionFile string
	out         string
	mock        bool
}

func newRootCmd(cfg *config.Config, logger *zap.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "newbill",
		Short:        "Submit expense bills to the billed store",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", cfg.Client.APIURL, "bill store base URL")
	root.PersistentFlags().StringVar(&opts.sessionFile, "session-file", cfg.Client.SessionFile, "session file")
	root.PersistentFlags().StringVar(&opts.out, "out", "-", "where rendered pages go (- for stdout)")
	root.PersistentFlags().BoolVar(&opts.mock, "mock", false, "use the in-memory fixture store")

	root.AddCommand(
		newSessionCmd(opts, logger),
		newSubmitCmd(cfg, opts, logger),
		newListCmd(cfg, opts, logger),
	)
	return root
}

func newSessionCmd(opts *options, logger *zap.Logger) *cobra.Command {
	var user newbill.Session
	var userType string

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Store the connected user in the session file",
		RunE: func(cmd *cobra.Command, args []string) error {
			user.Type = newbill.UserType(userType)
			if user.Email == "" {
				return errors.New("--email is required")
			}
			return session.NewFileStore(opts.sessionFile, logger).SetUser(user)
		},
	}
	cmd.Flags().StringVar(&user.Email, "email", "", "user email")
	cmd.Flags().StringVar(&userType, "type", string(newbill.UserTypeEmployee), "user type (Employee or Admin)")
	return cmd
}

func newSubmitCmd(cfg *config.Config, opts *options, logger *zap.Logger) *cobra.Command {
	var (
		filePath string
		fields   newbill.BillFields
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Upload a receipt and submit a new bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("failed to read receipt: %w", err)
			}

			out, closeOut, err := openOutput(opts.out, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeOut()

			provider := session.NewProvider(session.NewFileStore(opts.sessionFile, logger), logger)
			user, _ := provider.User()
			store := buildStore(cfg, opts, user, logger)

			ctx := cmd.Context()
			nav := router.New(ctx, store, out, logger)
			input := &fileInput{path: filePath}
			fileError := &stderrIndicator{w: cmd.ErrOrStderr()}

			ctrl := newbill.NewController(newbill.Deps{
				Session:   provider,
				Store:     store,
				Navigator: nav,
				Form:      staticForm(fields),
				FileError: fileError,
				FileInput: input,
				Logger:    logger,
			})

			nav.Navigate(routes.NewBill)

			ctrl.OnFileSelected(ctx, newbill.SelectedFile{
				Name:    filepath.Base(filePath),
				Content: content,
				Path:    filePath,
			})
			if ctrl.State() == newbill.StateErrorShown {
				return errFileRejected
			}
			// A person filling the form leaves the upload time to settle.
			ctrl.Wait()

			ctrl.OnSubmit(ctx)
			ctrl.Wait()
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "receipt image (jpg, jpeg, png)")
	cmd.Flags().StringVar(&fields.ExpenseType, "type", "Transports", "expense type")
	cmd.Flags().StringVar(&fields.Name, "name", "", "expense name")
	cmd.Flags().StringVar(&fields.Date, "date", "", "expense date (yyyy-mm-dd)")
	cmd.Flags().StringVar(&fields.Amount, "amount", "", "amount TTC in euros")
	cmd.Flags().StringVar(&fields.VAT, "vat", "", "VAT amount")
	cmd.Flags().StringVar(&fields.Pct, "pct", "", "VAT percentage (defaults to 20)")
	cmd.Flags().StringVar(&fields.Commentary, "commentary", "", "commentary")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newListCmd(cfg *config.Config, opts *options, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Render the bills of the connected user",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, closeOut, err := openOutput(opts.out, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeOut()

			user, _ := session.NewProvider(session.NewFileStore(opts.sessionFile, logger), logger).User()
			store := buildStore(cfg, opts, user, logger)
			router.New(cmd.Context(), store, out, logger).Navigate(routes.Bills)
			return nil
		},
	}
}

func buildStore(cfg *config.Config, opts *options, user *newbill.Session, logger *zap.Logger) newbill.Store {
	if opts.mock {
		return mockstore.New()
	}
	remote := client.NewRemoteStore(opts.apiURL, &http.Client{Timeout: cfg.Client.Timeout}, logger)
	if user != nil && user.Type != newbill.UserTypeAdmin {
		return remote.ForUser(user.Email)
	}
	return remote
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
