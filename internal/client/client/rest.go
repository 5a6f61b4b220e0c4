package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/dmitrijs2005/transferbench/internal/client/utils"
	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/filex"
)

// Employee mirrors the REST representation of an employee row.
type Employee struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	Salary      float64 `json:"salary"`
	DateOfBirth string  `json:"dateOfBirth"`
}

type EmployeePage struct {
	TotalCount int64      `json:"totalCount"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
	Items      []Employee `json:"items"`
}

type RESTClient struct {
	baseURL      string
	http         *http.Client
	downloadsDir string
	accessToken  string
	received     atomic.Int64
}

func NewRESTClient(baseURL string, hc *http.Client) *RESTClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return &RESTClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc, downloadsDir: common.DownloadsDir}
}

// SetDownloadsDir changes where DownloadPayroll writes files.
func (c *RESTClient) SetDownloadsDir(dir string) {
	c.downloadsDir = dir
}

// SetAccessToken makes every request to the server carry token as a bearer
// credential. Presigned object URLs are fetched without it.
func (c *RESTClient) SetAccessToken(token string) {
	c.accessToken = token
}

// BytesReceived reports response body bytes read so far.
func (c *RESTClient) BytesReceived() int64 {
	return c.received.Load()
}

type countingReader struct {
	r io.Reader
	n *atomic.Int64
}

func (c countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

func (c *RESTClient) get(ctx context.Context, path string, q url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, statusError(resp)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, body.Error)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body.Error)
	}
}

func (c *RESTClient) ListEmployees(ctx context.Context, page, pageSize int) (*EmployeePage, error) {
	q := url.Values{}
	if page != 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize != 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	resp, err := c.get(ctx, "/api/employees", q)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var p EmployeePage
	if err := json.NewDecoder(countingReader{resp.Body, &c.received}).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	return &p, nil
}

// StreamEmployees reads the employee event stream; fn may be nil. The stream
// must finish with an "end" event whose count matches the rows received.
func (c *RESTClient) StreamEmployees(ctx context.Context, max int, fn func(Employee)) (int, error) {
	q := url.Values{}
	if max > 0 {
		q.Set("max", strconv.Itoa(max))
	}

	resp, err := c.get(ctx, "/api/employees/stream", q)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n := 0
	ended := false
	err = readEvents(countingReader{resp.Body, &c.received}, func(event string, data []byte) error {
		switch event {
		case "employee":
			var e Employee
			if err := json.Unmarshal(data, &e); err != nil {
				return fmt.Errorf("decode employee: %w", err)
			}
			n++
			if fn != nil {
				fn(e)
			}
		case "end":
			var end struct {
				Count int `json:"count"`
			}
			if err := json.Unmarshal(data, &end); err != nil {
				return fmt.Errorf("decode end: %w", err)
			}
			if end.Count != n {
				return fmt.Errorf("%w: server sent %d rows, received %d", ErrProtocol, end.Count, n)
			}
			ended = true
			return io.EOF
		case "error":
			return fmt.Errorf("server error: %s", data)
		}
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return n, ctx.Err()
		}
		return n, err
	}
	if !ended {
		return n, fmt.Errorf("%w: stream ended without end event", ErrProtocol)
	}
	return n, nil
}

type PresignedURL struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

// PayrollURL asks the server for a presigned object URL of name.
func (c *RESTClient) PayrollURL(ctx context.Context, name string) (*PresignedURL, error) {
	resp, err := c.get(ctx, "/api/payroll/"+url.PathEscape(name)+"/url", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var u PresignedURL
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decode url: %w", err)
	}
	return &u, nil
}

// DownloadPayroll fetches name over REST into the downloads directory. With
// presigned set the bytes come straight from the object store.
func (c *RESTClient) DownloadPayroll(ctx context.Context, name string, presigned bool) (*DownloadResult, error) {
	local, err := filex.SafeName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var body io.Reader
	if presigned {
		u, err := c.PayrollURL(ctx, local)
		if err != nil {
			return nil, err
		}
		pr, pw := io.Pipe()
		go func() {
			_, err := utils.FetchURL(ctx, c.http, u.URL, pw)
			pw.CloseWithError(err)
		}()
		defer pr.Close()
		body = pr
	} else {
		resp, err := c.get(ctx, "/api/payroll/"+url.PathEscape(local), nil)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		body = resp.Body
	}

	dir, err := filex.EnsureDir(c.downloadsDir)
	if err != nil {
		return nil, err
	}
	// a REST download is a single response body
	res := &DownloadResult{Name: local, Path: filepath.Join(dir, local), Chunks: 1}

	f, err := os.Create(res.Path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", res.Path, err)
	}
	defer f.Close()

	n, err := io.Copy(f, countingReader{body, &c.received})
	res.Bytes, res.Size = n, n
	if err != nil {
		if n == 0 {
			_ = f.Close()
			_ = os.Remove(res.Path)
		}
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		return res, fmt.Errorf("download %s: %w", local, err)
	}
	return res, nil
}

// readEvents calls fn for every event of a text/event-stream body. fn may
// return io.EOF to stop early without error.
func readEvents(r io.Reader, fn func(event string, data []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		event string
		data  bytes.Buffer
	)
	dispatch := func() error {
		if event == "" && data.Len() == 0 {
			return nil
		}
		if event == "" {
			event = "message"
		}
		err := fn(event, bytes.TrimSuffix(data.Bytes(), []byte("\n")))
		event = ""
		data.Reset()
		return err
	}

	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			if err := dispatch(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "event":
			event = value
		case "data":
			data.WriteString(value)
			data.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if err := dispatch(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
