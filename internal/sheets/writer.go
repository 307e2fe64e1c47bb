package sheets

import (
	"context"
	"sync"

	"crm-reporting/internal/shared/loggers"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

//go:generate mockgen -source=writer.go -destination=./mocks/writer_mock.go -package=mocks
type Writer interface {
	// EnsureHeaders makes row 1 equal the given headers, rewriting it when it
	// is empty or differs.
	EnsureHeaders(ctx context.Context, headers []string) error
	// AppendRows appends the rows after the last non-empty row.
	AppendRows(ctx context.Context, rows [][]interface{}) error
}

type sheetsWriter struct {
	spreadsheetID   string
	credentialsPath string

	// The remote session is authorized lazily on first use and cached; the
	// lock guarantees exactly one initialization under concurrent first use.
	initMu  sync.Mutex
	service *sheetsapi.Service
}

func NewWriter(spreadsheetID, credentialsPath string) Writer {
	return &sheetsWriter{
		spreadsheetID:   spreadsheetID,
		credentialsPath: credentialsPath,
	}
}

func (w *sheetsWriter) getService(ctx context.Context) (*sheetsapi.Service, error) {
	w.initMu.Lock()
	defer w.initMu.Unlock()

	if w.service != nil {
		return w.service, nil
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(w.credentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, errAuthorizationFailed(err)
	}

	loggers.Ctx(ctx).Info().Msg("authorized spreadsheet session")
	w.service = service
	return service, nil
}

func (w *sheetsWriter) EnsureHeaders(ctx context.Context, headers []string) error {
	service, err := w.getService(ctx)
	if err != nil {
		return err
	}

	existing, err := service.Spreadsheets.Values.
		Get(w.spreadsheetID, "1:1").
		Context(ctx).
		Do()
	if err != nil {
		return errWriteFailed("read headers", err)
	}

	if headersMatch(existing, headers) {
		loggers.Ctx(ctx).Debug().Msg("spreadsheet headers already set")
		return nil
	}

	headerRow := make([]interface{}, len(headers))
	for i, header := range headers {
		headerRow[i] = header
	}
	_, err = service.Spreadsheets.Values.
		Update(w.spreadsheetID, "A1", &sheetsapi.ValueRange{Values: [][]interface{}{headerRow}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return errWriteFailed("update headers", err)
	}

	loggers.Ctx(ctx).Info().Strs("headers", headers).Msg("spreadsheet headers set")
	return nil
}

func (w *sheetsWriter) AppendRows(ctx context.Context, rows [][]interface{}) error {
	if len(rows) == 0 {
		loggers.Ctx(ctx).Warn().Msg("no rows to append")
		return nil
	}

	service, err := w.getService(ctx)
	if err != nil {
		return err
	}

	_, err = service.Spreadsheets.Values.
		Append(w.spreadsheetID, "A1", &sheetsapi.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errWriteFailed("append rows", err)
	}

	metricRowsAppendedTotal.WithLabelValues().Add(float64(len(rows)))
	loggers.Ctx(ctx).Info().Int("rows", len(rows)).Msg("rows appended to spreadsheet")
	return nil
}

func headersMatch(existing *sheetsapi.ValueRange, headers []string) bool {
	if existing == nil || len(existing.Values) == 0 {
		return false
	}
	row := existing.Values[0]
	if len(row) != len(headers) {
		return false
	}
	for i, cell := range row {
		text, ok := cell.(string)
		if !ok || text != headers[i] {
			return false
		}
	}
	return true
}
