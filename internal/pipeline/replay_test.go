package pipeline

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/fintrade/market-ingest/internal/landing"
)

const replayPayload = `{
	"Meta Data": {"2. Symbol": "AAPL"},
	"Time Series (Daily)": {
		"2024-01-02": {
			"1. open": "10",
			"2. high": "11",
			"3. low": "9",
			"4. close": "10.5",
			"5. volume": "1000"
		}
	}
}`

// mockSource serves landed payloads from a map keyed symbol|date.
type mockSource struct {
	objects map[string][]byte
	dates   map[string][]time.Time
	listErr error
}

func objectKey(symbol string, date time.Time) string {
	return symbol + "|" + date.Format("2006-01-02")
}

func (m *mockSource) GetRaw(_ context.Context, symbol string, date time.Time) ([]byte, error) {
	data, ok := m.objects[objectKey(symbol, date)]
	if !ok {
		return nil, fmt.Errorf("get raw: %w", landing.ErrNotFound)
	}
	return data, nil
}

func (m *mockSource) ListRawDates(_ context.Context, symbol string) ([]time.Time, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.dates[symbol], nil
}

func TestReplayer_Replay(t *testing.T) {
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	source := &mockSource{objects: map[string][]byte{
		objectKey("AAPL", date): []byte(replayPayload),
	}}
	sink := &mockSink{}

	r := NewReplayer(source, sink, nil)
	if err := r.Replay(context.Background(), []string{"AAPL"}, []time.Time{date}); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	if len(sink.loads) != 1 {
		t.Fatalf("expected 1 load, got %d", len(sink.loads))
	}
	row := sink.loads[0][0]
	if row.Symbol != "AAPL" || !row.Date.Equal(date) {
		t.Errorf("unexpected row identity: %+v", row)
	}
	if row.Open != 10.0 || row.High != 11.0 || row.Low != 9.0 || row.Close != 10.5 || row.Volume != 1000 {
		t.Errorf("unexpected row values: %+v", row)
	}
}

func TestReplayer_MissingPayloadSkipped(t *testing.T) {
	landed := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	missing := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	source := &mockSource{objects: map[string][]byte{
		objectKey("AAPL", landed): []byte(replayPayload),
	}}
	sink := &mockSink{}

	r := NewReplayer(source, sink, nil)
	err := r.Replay(context.Background(), []string{"AAPL"}, []time.Time{landed, missing})
	if err != nil {
		t.Fatalf("missing payload should not fail the replay: %v", err)
	}

	if len(sink.loads) != 1 {
		t.Errorf("expected 1 load, got %d", len(sink.loads))
	}
}

func TestReplayer_MalformedPayloadFailsSymbol(t *testing.T) {
	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	source := &mockSource{objects: map[string][]byte{
		objectKey("AAPL", date): []byte(`{"unexpected": "shape"}`),
		objectKey("MSFT", date): []byte(replayPayload),
	}}
	sink := &mockSink{}

	r := NewReplayer(source, sink, nil)
	err := r.Replay(context.Background(), []string{"AAPL", "MSFT"}, []time.Time{date})

	var inc *IncompleteError
	if !errors.As(err, &inc) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
	if !reflect.DeepEqual(inc.Failed, []string{"AAPL"}) {
		t.Errorf("failed symbols = %v, want [AAPL]", inc.Failed)
	}
	if len(sink.loads) != 1 {
		t.Errorf("expected MSFT to still load, got %d loads", len(sink.loads))
	}
}

func TestReplayer_ListsDatesWhenNoneGiven(t *testing.T) {
	d1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	source := &mockSource{
		objects: map[string][]byte{
			objectKey("AAPL", d1): []byte(replayPayload),
			objectKey("AAPL", d2): []byte(replayPayload),
		},
		dates: map[string][]time.Time{
			"AAPL": {d1, d2},
		},
	}
	sink := &mockSink{}

	r := NewReplayer(source, sink, nil)
	if err := r.Replay(context.Background(), []string{"AAPL"}, nil); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	if len(sink.loads) != 2 {
		t.Errorf("expected 2 loads from listed dates, got %d", len(sink.loads))
	}
}

func TestReplayer_ListFailureFailsSymbol(t *testing.T) {
	source := &mockSource{listErr: errors.New("listing refused")}
	sink := &mockSink{}

	r := NewReplayer(source, sink, nil)
	err := r.Replay(context.Background(), []string{"AAPL"}, nil)

	var inc *IncompleteError
	if !errors.As(err, &inc) {
		t.Fatalf("expected IncompleteError, got %v", err)
	}
	if !reflect.DeepEqual(inc.Failed, []string{"AAPL"}) {
		t.Errorf("failed symbols = %v, want [AAPL]", inc.Failed)
	}
}
