package sheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/tacmarket/marketplace-api/models"
)

// Mirror writes one row per entity to a Google spreadsheet. Providers and
// profiles are upserted by ID (column A scan); appointments and analytics
// rows are append-only. Without a spreadsheet ID the mirror runs in
// local-only mode and every sync is a no-op.
type Mirror struct {
	svc           *gsheets.Service
	spreadsheetID string
}

func NewMirror(ctx context.Context, spreadsheetID, credentialsFile string) *Mirror {
	if spreadsheetID == "" {
		log.Println("Google Sheets not configured, mirroring disabled")
		return &Mirror{}
	}

	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		log.Printf("Failed to create Google Sheets client, mirroring disabled: %v", err)
		return &Mirror{}
	}
	return &Mirror{svc: svc, spreadsheetID: spreadsheetID}
}

func (m *Mirror) Configured() bool {
	return m != nil && m.svc != nil
}

// Setup makes sure all four sheets exist with their header rows.
func (m *Mirror) Setup(ctx context.Context) error {
	if !m.Configured() {
		return nil
	}
	for _, s := range []struct {
		name    string
		headers []string
	}{
		{ProfilesSheet, profileHeaders},
		{ProvidersSheet, providerHeaders},
		{AppointmentsSheet, appointmentHeaders},
		{AnalyticsSheet, analyticsHeaders},
	} {
		if err := m.ensureSheet(ctx, s.name, s.headers); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mirror) ensureSheet(ctx context.Context, name string, headers []string) error {
	spreadsheet, err := m.svc.Spreadsheets.Get(m.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == name {
			return nil
		}
	}

	log.Printf("Creating sheet: %s", name)
	_, err = m.svc.Spreadsheets.BatchUpdate(m.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{{
			AddSheet: &gsheets.AddSheetRequest{
				Properties: &gsheets.SheetProperties{Title: name},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	headerRange := fmt.Sprintf("'%s'!A1:%s1", name, columnLetter(len(headers)))
	_, err = m.svc.Spreadsheets.Values.Update(m.spreadsheetID, headerRange, &gsheets.ValueRange{
		Values: [][]interface{}{headerRow},
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write headers for %s: %w", name, err)
	}
	return nil
}

// upsert scans column A for the row's ID, then updates the matching row in
// place or appends a new one.
func (m *Mirror) upsert(ctx context.Context, sheetName string, headers []string, values []interface{}) error {
	if err := m.ensureSheet(ctx, sheetName, headers); err != nil {
		return err
	}

	id, _ := values[0].(string)
	idColumn, err := m.svc.Spreadsheets.Values.Get(m.spreadsheetID, fmt.Sprintf("'%s'!A:A", sheetName)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read IDs from %s: %w", sheetName, err)
	}

	existingRow := 0
	for i, row := range idColumn.Values {
		if i == 0 {
			continue // header
		}
		if len(row) > 0 && row[0] == id {
			existingRow = i + 1
			break
		}
	}

	body := &gsheets.ValueRange{Values: [][]interface{}{values}}
	if existingRow > 0 {
		updateRange := fmt.Sprintf("'%s'!A%d:%s%d", sheetName, existingRow, columnLetter(len(headers)), existingRow)
		_, err = m.svc.Spreadsheets.Values.Update(m.spreadsheetID, updateRange, body).
			ValueInputOption("RAW").Context(ctx).Do()
		return err
	}

	appendRange := fmt.Sprintf("'%s'!A:%s", sheetName, columnLetter(len(headers)))
	_, err = m.svc.Spreadsheets.Values.Append(m.spreadsheetID, appendRange, body).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return err
}

func (m *Mirror) append(ctx context.Context, sheetName string, headers []string, values []interface{}) error {
	if err := m.ensureSheet(ctx, sheetName, headers); err != nil {
		return err
	}
	appendRange := fmt.Sprintf("'%s'!A:%s", sheetName, columnLetter(len(headers)))
	_, err := m.svc.Spreadsheets.Values.Append(m.spreadsheetID, appendRange, &gsheets.ValueRange{
		Values: [][]interface{}{values},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return err
}

func (m *Mirror) SyncProvider(ctx context.Context, p models.ServiceProvider) error {
	if !m.Configured() {
		return nil
	}
	return m.upsert(ctx, ProvidersSheet, providerHeaders, providerRow(p))
}

func (m *Mirror) SyncProfile(ctx context.Context, p models.LocalProfile) error {
	if !m.Configured() {
		return nil
	}
	return m.upsert(ctx, ProfilesSheet, profileHeaders, profileRow(p))
}

func (m *Mirror) SyncAppointment(ctx context.Context, a models.Appointment, providerName string) error {
	if !m.Configured() {
		return nil
	}
	return m.append(ctx, AppointmentsSheet, appointmentHeaders, appointmentRow(a, providerName))
}

func (m *Mirror) AppendAnalytics(ctx context.Context, row AnalyticsRow) error {
	if !m.Configured() {
		return nil
	}
	return m.append(ctx, AnalyticsSheet, analyticsHeaders, analyticsRowValues(row))
}
