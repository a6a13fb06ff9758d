package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"leap-forms-backend/internal/domain"
	"leap-forms-backend/internal/usecase"
	"leap-forms-backend/pkg/i18n"

	"github.com/spf13/cobra"
)

var errInvalidSubmission = errors.New("submission is invalid")

type options struct {
	locale string
	brand  string
	form   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "quotectl",
		Short:         "Estimate, validate and render LEAP form submissions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.locale, "locale", i18n.LocaleEN, "locale for messages and labels (en, zh-HK)")
	root.PersistentFlags().StringVar(&opts.brand, "brand", "LEAP by LLL", "brand name printed in email headers")

	estimateCmd := &cobra.Command{
		Use:   "estimate <quote.json|->",
		Short: "Print the fee estimate for a quote submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quote, _, err := readQuote(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			est := usecase.NewFeeEstimator().Estimate(quote)
			return writeJSON(cmd.OutOrStdout(), est)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Print validation errors for a contact or quote submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args[0])
		},
	}
	validateCmd.Flags().StringVar(&opts.form, "form", "quote", "submission kind: quote or contact")

	renderCmd := &cobra.Command{
		Use:       "render <quote|contact> <file.json|->",
		Short:     "Print the email report for a submission",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"quote", "contact"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args[0], args[1])
		},
	}

	root.AddCommand(estimateCmd, validateCmd, renderCmd)
	return root
}

func runValidate(cmd *cobra.Command, opts *options, path string) error {
	catalog, err := i18n.NewCatalog()
	if err != nil {
		return err
	}
	ctx := context.WithValue(cmd.Context(), domain.KeyLocale, catalog.Match(opts.locale, ""))
	validator := usecase.NewSubmissionValidator(catalog)

	var errs domain.ValidationErrorMap
	switch opts.form {
	case "quote":
		quote, _, err := readQuote(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		errs = validator.ValidateQuote(ctx, quote)
	case "contact":
		contact, _, err := readContact(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		errs = validator.ValidateContact(ctx, contact)
	default:
		return fmt.Errorf("unknown form %q (want quote or contact)", opts.form)
	}

	if err := writeJSON(cmd.OutOrStdout(), errs); err != nil {
		return err
	}
	if !errs.Empty() {
		return errInvalidSubmission
	}
	return nil
}

func runRender(cmd *cobra.Command, opts *options, kind, path string) error {
	catalog, err := i18n.NewCatalog()
	if err != nil {
		return err
	}
	formatter := usecase.NewSubmissionFormatter(opts.brand, catalog.For(catalog.Match(opts.locale, "")))

	var doc domain.Document
	switch kind {
	case "quote":
		quote, submittedAt, err := readQuote(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		est := usecase.NewFeeEstimator().Estimate(quote)
		doc = formatter.FormatQuote(quote, &est, submittedAt)
	case "contact":
		contact, submittedAt, err := readContact(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		doc = formatter.FormatContact(contact, submittedAt)
	default:
		return fmt.Errorf("unknown form %q (want quote or contact)", kind)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Subject: %s\n\n%s", doc.Subject, doc.Text)
	return err
}

// readQuote accepts either the request envelope ({"formData": ...}) or a bare submission.
func readQuote(stdin io.Reader, path string) (*domain.QuoteSubmission, *time.Time, error) {
	raw, err := readInput(stdin, path)
	if err != nil {
		return nil, nil, err
	}
	var env struct {
		FormData  *domain.QuoteSubmission `json:"formData"`
		Timestamp string                  `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if env.FormData != nil {
		return env.FormData, parseTime(env.Timestamp), nil
	}
	var quote domain.QuoteSubmission
	if err := json.Unmarshal(raw, &quote); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &quote, nil, nil
}

func readContact(stdin io.Reader, path string) (*domain.ContactSubmission, *time.Time, error) {
	raw, err := readInput(stdin, path)
	if err != nil {
		return nil, nil, err
	}
	var env struct {
		FormData  *domain.ContactSubmission `json:"formData"`
		Timestamp string                    `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if env.FormData != nil {
		return env.FormData, parseTime(env.Timestamp), nil
	}
	var contact domain.ContactSubmission
	if err := json.Unmarshal(raw, &contact); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &contact, nil, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return bytes.TrimSpace(raw), nil
}

func parseTime(ts string) *time.Time {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return nil
	}
	return &t
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
