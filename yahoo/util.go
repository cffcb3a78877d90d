package yahoo

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/fundfx"
)

// unixDay returns the unix timestamp of midnight UTC on that day, the
// granularity the chart API works at for daily candles.
func unixDay(d fundfx.Date) int64 {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Unix()
}

// dayOfUnix truncates a unix timestamp to its UTC day.
func dayOfUnix(ts int64) fundfx.Date {
	return fundfx.NewDate(time.Unix(ts, 0).UTC().Date())
}

// jsonGetter performs JSON GET requests behind a daily disk cache:
// closes for past days never change, and today's close at most once a
// day is plenty for a batch report.
type jsonGetter struct {
	client *http.Client
}

func newDailyCachingGetter() *jsonGetter {
	client := new(http.Client)
	client.Transport = &dayCache{base: http.DefaultTransport}
	return &jsonGetter{client: client}
}

// jwget performs an HTTP GET request to the given address and
// unmarshals the JSON response body into the provided data structure.
func (g *jsonGetter) jwget(addr string, data interface{}) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// the chart endpoint rejects the default Go user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ffx)")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// dayCache is a disk cache for HTTP responses whose key rotates daily.
type dayCache struct {
	base http.RoundTripper
}

func (c *dayCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", fundfx.Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("yahoo-%x", sha1.Sum([]byte(key)))
	file := filepath.Join(os.TempDir(), key)

	if content, err := os.ReadFile(file); err == nil {
		return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return resp, nil
	}
	if err := os.WriteFile(file, content, 0644); err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}
