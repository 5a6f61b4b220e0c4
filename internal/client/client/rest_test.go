package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/server/auth"
	"github.com/dmitrijs2005/transferbench/internal/server/employees"
	restserver "github.com/dmitrijs2005/transferbench/internal/server/http"
	"github.com/dmitrijs2005/transferbench/internal/server/storage"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startREST(t *testing.T, rows int) *RESTClient {
	t.Helper()
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	s := restserver.NewHTTPServer("", nopLogger{}, employees.NewService(employees.NewSynthetic(rows), nil, nopLogger{}), store, 0, "")
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)

	return NewRESTClient(ts.URL, ts.Client())
}

func TestREST_ListEmployees(t *testing.T) {
	c := startREST(t, 120)

	p, err := c.ListEmployees(context.Background(), 2, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(120), p.TotalCount)
	assert.Equal(t, 3, p.TotalPages)
	require.Len(t, p.Items, 50)

	want := employees.Row(51)
	got := p.Items[0]
	if diff := cmp.Diff(Employee{
		ID: want.ID, Name: want.Name, Department: want.Department,
		Salary: want.Salary, DateOfBirth: want.DateOfBirth,
	}, got); diff != "" {
		t.Fatalf("first row mismatch (-want +got):\n%s", diff)
	}
	assert.Positive(t, c.BytesReceived())
}

func TestREST_ListEmployees_BadPage(t *testing.T) {
	c := startREST(t, 10)

	_, err := c.ListEmployees(context.Background(), -3, 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestREST_StreamEmployees(t *testing.T) {
	c := startREST(t, 40)

	var ids []int64
	n, err := c.StreamEmployees(context.Background(), 0, func(e Employee) { ids = append(ids, e.ID) })
	require.NoError(t, err)
	assert.Equal(t, 40, n)
	require.Len(t, ids, 40)
	assert.Equal(t, int64(1), ids[0])
	assert.Equal(t, int64(40), ids[39])

	n, err = c.StreamEmployees(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestREST_StreamEmployees_ProtocolErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing end", "event:employee\ndata:{\"id\":1}\n\n"},
		{"count mismatch", "event:employee\ndata:{\"id\":1}\n\nevent:end\ndata:{\"count\":2}\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/event-stream")
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			_, err := NewRESTClient(ts.URL, ts.Client()).StreamEmployees(context.Background(), 0, nil)
			require.ErrorIs(t, err, ErrProtocol)
		})
	}
}

func TestREST_StreamEmployees_ServerErrorEvent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "event: error\ndata: {\"error\":\"internal error\"}\n\n")
	}))
	defer ts.Close()

	n, err := NewRESTClient(ts.URL, ts.Client()).StreamEmployees(context.Background(), 0, nil)
	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "internal error")
}

func TestREST_NotFoundAndUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	c := NewRESTClient(ts.URL, ts.Client())

	_, err := c.ListEmployees(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrNotFound)

	ts.Close()
	_, err = c.ListEmployees(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestReadEvents(t *testing.T) {
	body := ": comment\nevent: a\ndata: one\ndata: two\n\ndata: plain\n\nevent:b\ndata:x"

	type ev struct{ event, data string }
	var got []ev
	err := readEvents(strings.NewReader(body), func(event string, data []byte) error {
		got = append(got, ev{event, string(data)})
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []ev{{"a", "one\ntwo"}, {"message", "plain"}, {"b", "x"}}, got)
}

func TestNewRESTClient_AddsScheme(t *testing.T) {
	c := NewRESTClient("localhost:8080/", nil)
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}

// presigningStore serves presigned URLs pointing at a separate object server.
type presigningStore struct {
	*storage.DiskStore
	objects string
}

func (p *presigningStore) PresignGet(_ context.Context, name string, ttl time.Duration) (string, error) {
	return fmt.Sprintf("%s/bucket/%s?X-Amz-Expires=%d", p.objects, name, int(ttl.Seconds())), nil
}

func TestREST_DownloadPayroll(t *testing.T) {
	uploads := t.TempDir()
	data := []byte(strings.Repeat("row;", 5000))
	require.NoError(t, os.WriteFile(filepath.Join(uploads, "march.csv"), data, 0o600))

	disk, err := storage.NewDiskStore(uploads)
	require.NoError(t, err)

	objects := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bucket/march.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer objects.Close()

	store := &presigningStore{DiskStore: disk, objects: objects.URL}
	s := restserver.NewHTTPServer("", nopLogger{}, employees.NewService(employees.NewSynthetic(1), nil, nopLogger{}), store, 15*time.Minute, "")
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	c := NewRESTClient(ts.URL, ts.Client())
	c.SetDownloadsDir(t.TempDir())
	ctx := context.Background()

	for _, presigned := range []bool{false, true} {
		res, err := c.DownloadPayroll(ctx, "march.csv", presigned)
		require.NoError(t, err, "presigned=%v", presigned)
		assert.Equal(t, int64(len(data)), res.Bytes)

		got, err := os.ReadFile(res.Path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}

	u, err := c.PayrollURL(ctx, "march.csv")
	require.NoError(t, err)
	assert.Equal(t, 900, u.ExpiresIn)
	assert.Contains(t, u.URL, "X-Amz-Expires=900")
}

func TestREST_DownloadPayroll_NotFound(t *testing.T) {
	c := startREST(t, 1)
	dir := t.TempDir()
	c.SetDownloadsDir(dir)

	_, err := c.DownloadPayroll(context.Background(), "missing.csv", false)
	require.ErrorIs(t, err, ErrNotFound)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = c.PayrollURL(context.Background(), "missing.csv")
	require.Error(t, err, "disk store has no presigned URLs")
}

func TestREST_DownloadPayroll_AccessToken(t *testing.T) {
	const secret = "rest-secret"

	uploads := t.TempDir()
	data := []byte("alice,100000\n")
	require.NoError(t, os.WriteFile(filepath.Join(uploads, "salaries.csv"), data, 0o600))
	disk, err := storage.NewDiskStore(uploads)
	require.NoError(t, err)

	var objectHits, objectAuth atomic.Int32
	objects := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		objectHits.Add(1)
		if r.Header.Get("Authorization") != "" {
			objectAuth.Add(1)
		}
		_, _ = w.Write(data)
	}))
	defer objects.Close()

	store := &presigningStore{DiskStore: disk, objects: objects.URL}
	s := restserver.NewHTTPServer("", nopLogger{}, employees.NewService(employees.NewSynthetic(1), nil, nopLogger{}), store, time.Minute, secret)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	dir := t.TempDir()
	c := NewRESTClient(ts.URL, ts.Client())
	c.SetDownloadsDir(dir)
	ctx := context.Background()

	_, err = c.DownloadPayroll(ctx, "salaries.csv", false)
	require.ErrorIs(t, err, ErrUnauthorized)
	_, err = c.PayrollURL(ctx, "salaries.csv")
	require.ErrorIs(t, err, ErrUnauthorized)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	token, err := auth.GenerateToken("bench", []byte(secret), time.Minute)
	require.NoError(t, err)
	c.SetAccessToken(token)

	for _, presigned := range []bool{false, true} {
		res, err := c.DownloadPayroll(ctx, "salaries.csv", presigned)
		require.NoError(t, err, "presigned=%v", presigned)
		got, err := os.ReadFile(res.Path)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	}

	assert.Equal(t, int32(1), objectHits.Load())
	assert.Zero(t, objectAuth.Load(), "object store must not see the server token")

	// employee listing is not guarded
	p, err := NewRESTClient(ts.URL, ts.Client()).ListEmployees(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, p.Items, 1)
}
