package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"cabinkeep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer captures every checklist save the autosaver issues.
type recordingServer struct {
	mu    sync.Mutex
	saves []models.ChecklistRecord
	srv   *httptest.Server
}

func newRecordingServer(t *testing.T) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/checklists", r.URL.Path)

		var rec models.ChecklistRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rec))

		rs.mu.Lock()
		rs.saves = append(rs.saves, rec)
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rec)
	}))
	t.Cleanup(rs.srv.Close)
	return rs
}

func (rs *recordingServer) saved() []models.ChecklistRecord {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]models.ChecklistRecord, len(rs.saves))
	copy(out, rs.saves)
	return out
}

func TestAutosaverCoalescesEdits(t *testing.T) {
	rs := newRecordingServer(t)
	saver := NewAutosaver(New(rs.srv.URL), 40*time.Millisecond)
	defer saver.Close()

	// A burst of edits inside one quiescence window produces one write
	// holding the last state.
	for towels := 1; towels <= 4; towels++ {
		rec := models.NewChecklistRecord(1)
		rec.BathTowels = towels
		saver.Record(rec)
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return len(rs.saved()) == 1
	}, time.Second, 10*time.Millisecond)

	saves := rs.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, 4, saves[0].BathTowels)

	// Quiet period; no further writes.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, rs.saved(), 1)
}

func TestAutosaverSeparateWindows(t *testing.T) {
	rs := newRecordingServer(t)
	saver := NewAutosaver(New(rs.srv.URL), 25*time.Millisecond)
	defer saver.Close()

	saver.Record(models.NewChecklistRecord(1))
	assert.Eventually(t, func() bool { return len(rs.saved()) == 1 }, time.Second, 5*time.Millisecond)

	saver.Record(models.NewChecklistRecord(2))
	assert.Eventually(t, func() bool { return len(rs.saved()) == 2 }, time.Second, 5*time.Millisecond)

	saves := rs.saved()
	assert.Equal(t, 1, saves[0].CabinNumber)
	assert.Equal(t, 2, saves[1].CabinNumber)
}

func TestAutosaverCloseCancelsPendingWrite(t *testing.T) {
	rs := newRecordingServer(t)
	saver := NewAutosaver(New(rs.srv.URL), 50*time.Millisecond)

	saver.Record(models.NewChecklistRecord(3))
	saver.Close()

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rs.saved(), "a write pending at teardown must not land")

	// Edits after close are ignored.
	saver.Record(models.NewChecklistRecord(3))
	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rs.saved())
}

func TestAutosaverFlush(t *testing.T) {
	rs := newRecordingServer(t)
	saver := NewAutosaver(New(rs.srv.URL), time.Hour)
	defer saver.Close()

	rec := models.NewChecklistRecord(2)
	rec.CoffeePods = 6
	saver.Record(rec)

	require.NoError(t, saver.Flush(context.Background()))
	saves := rs.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, 6, saves[0].CoffeePods)

	// Nothing pending after a flush.
	require.NoError(t, saver.Flush(context.Background()))
	assert.Len(t, rs.saved(), 1)
}

func TestAutosaverReportsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Server error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	errCh := make(chan error, 1)
	saver := NewAutosaver(New(srv.URL), 20*time.Millisecond)
	saver.OnError = func(err error) { errCh <- err }
	defer saver.Close()

	saver.Record(models.NewChecklistRecord(1))

	select {
	case err := <-errCh:
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	case <-time.After(time.Second):
		t.Fatal("expected a save error")
	}
}
