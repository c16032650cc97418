// Package remote implements the optional remote copy of the store: a plain
// HTTP JSON endpoint plus a debounced push queue with last-writer-wins
// reconciliation. Remote failures never block local work; they are logged
// and retried on the next mutation or load.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tableflip.dev/violet/pkg/model"
)

// Remote is the opaque remote store collaborator.
type Remote interface {
	Pull(ctx context.Context) (*model.Store, error)
	Push(ctx context.Context, s *model.Store) error
}

// NewHTTP returns a Remote that GETs and PUTs the store JSON at url.
func NewHTTP(url string) Remote {
	return &httpRemote{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type httpRemote struct {
	url    string
	client *http.Client
}

func (r *httpRemote) Pull(ctx context.Context) (*model.Store, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		// An empty remote is not an error; the first push seeds it.
		return model.NewStore(), nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote: pull: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	s := &model.Store{}
	if err := json.Unmarshal(body, s); err != nil {
		return nil, fmt.Errorf("remote: pull: decode: %w", err)
	}
	return model.Normalize(s), nil
}

func (r *httpRemote) Push(ctx context.Context, s *model.Store) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("remote: push: unexpected status %s", resp.Status)
	}
	return nil
}

// Reconcile resolves a local and a remote copy by comparing last-write
// timestamps and keeping the newer copy wholesale. No merging of concurrent
// edits is attempted. Ties keep local.
func Reconcile(local, remote *model.Store) *model.Store {
	if remote == nil {
		return local
	}
	if local == nil {
		return remote
	}
	lt, lerr := time.Parse(time.RFC3339, local.UpdatedAt)
	rt, rerr := time.Parse(time.RFC3339, remote.UpdatedAt)
	switch {
	case lerr != nil && rerr != nil:
		return local
	case lerr != nil:
		return remote
	case rerr != nil:
		return local
	case rt.After(lt):
		return remote
	default:
		return local
	}
}
