package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"prpcap/internal/domain"
)

// Client talks to a relay server over HTTP.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a client for the relay at base.
func NewClient(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

var _ domain.RelayClient = (*Client)(nil)

// Publish registers the epoch publics under name.
func (c *Client) Publish(name string, pub domain.EpochPublic) error {
	return c.post("/epoch/"+url.PathEscape(name), pub, nil)
}

// FetchEpoch returns the epoch publics registered under name.
func (c *Client) FetchEpoch(name string) (domain.EpochPublic, error) {
	var out domain.EpochPublic
	if err := c.getJSON("/epoch/"+url.PathEscape(name), &out); err != nil {
		return domain.EpochPublic{}, err
	}
	return out, nil
}

// Post queues an envelope for its recipient.
func (c *Client) Post(env domain.Envelope) error {
	return c.post("/msg/"+url.PathEscape(env.To), env, nil)
}

// Fetch returns up to limit pending envelopes for name (all of them when
// limit is 0).
func (c *Client) Fetch(name string, limit int) ([]domain.Envelope, error) {
	u := "/msg/" + url.PathEscape(name)
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}
	var envs []domain.Envelope
	if err := c.getJSON(u, &envs); err != nil {
		return nil, err
	}
	return envs, nil
}

// Ack removes the first count envelopes from name's queue.
func (c *Client) Ack(name string, count int) error {
	return c.post("/msg/"+url.PathEscape(name)+"/ack", struct {
		Count int `json:"count"`
	}{Count: count}, nil)
}

func (c *Client) post(path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) getJSON(path string, out any) error {
	resp, err := c.HTTP.Get(c.Base + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("relay get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
