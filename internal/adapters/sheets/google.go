// Package sheets reads entry rows from Google Sheets.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	portsrepo "github.com/SscSPs/def_finance/internal/core/ports/repositories"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Client reads ranges from one spreadsheet with service account credentials.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ portsrepo.SheetSource = (*Client)(nil)

// Credentials selects where the service account key comes from. JSON wins
// over File.
type Credentials struct {
	JSON string
	File string
}

func (c Credentials) load() ([]byte, error) {
	switch {
	case strings.TrimSpace(c.JSON) != "":
		return []byte(c.JSON), nil
	case strings.TrimSpace(c.File) != "":
		b, err := os.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		return b, nil
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE)")
	}
}

// NewClient creates a read-only Sheets client.
func NewClient(ctx context.Context, spreadsheetID string, creds Credentials) (*Client, error) {
	spreadsheetID = strings.TrimSpace(spreadsheetID)
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	raw, err := creds.load()
	if err != nil {
		return nil, err
	}

	googleCreds, err := google.CredentialsFromJSON(ctx, raw, gsheet.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := gsheet.NewService(ctx, option.WithCredentials(googleCreds))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets client created", slog.String("spreadsheet_id", spreadsheetID))
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadRange returns the formatted cell values of an A1 range.
func (c *Client) ReadRange(ctx context.Context, a1Range string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, a1Range).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", a1Range, err)
	}
	return toStrings(resp.Values), nil
}

func toStrings(values [][]any) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			cells[j] = strings.TrimSpace(fmt.Sprint(v))
		}
		out[i] = cells
	}
	return out
}
