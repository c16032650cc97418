package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tableflip.dev/violet/pkg/model"
)

func stamped(at string) *model.Store {
	s := model.NewStore()
	s.UpdatedAt = at
	return s
}

func TestReconcileLastWriterWins(t *testing.T) {
	older := stamped("2024-01-01T10:00:00Z")
	newer := stamped("2024-01-02T10:00:00Z")

	if got := Reconcile(older, newer); got != newer {
		t.Fatal("newer remote must win")
	}
	if got := Reconcile(newer, older); got != newer {
		t.Fatal("newer local must win")
	}
}

func TestReconcileTiesAndBadStampsKeepLocal(t *testing.T) {
	local := stamped("2024-01-01T10:00:00Z")
	remote := stamped("2024-01-01T10:00:00Z")
	if got := Reconcile(local, remote); got != local {
		t.Fatal("tie must keep local")
	}

	bothBad := stamped("")
	if got := Reconcile(bothBad, stamped("")); got != bothBad {
		t.Fatal("both unstamped must keep local")
	}

	unstamped := stamped("")
	if got := Reconcile(unstamped, remote); got != remote {
		t.Fatal("stamped remote beats unstamped local")
	}
	if got := Reconcile(local, stamped("")); got != local {
		t.Fatal("unstamped remote loses to stamped local")
	}

	if got := Reconcile(nil, remote); got != remote {
		t.Fatal("nil local yields remote")
	}
	if got := Reconcile(local, nil); got != local {
		t.Fatal("nil remote yields local")
	}
}

type fakeRemote struct {
	mu     sync.Mutex
	pushes []*model.Store
	pulled *model.Store

	pushErr error
	pullErr error
}

func (f *fakeRemote) Pull(context.Context) (*model.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pullErr != nil {
		return nil, f.pullErr
	}
	return f.pulled, nil
}

func (f *fakeRemote) Push(_ context.Context, s *model.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes = append(f.pushes, s)
	return nil
}

func (f *fakeRemote) pushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pushes)
}

func TestSyncerCoalescesBursts(t *testing.T) {
	fr := &fakeRemote{}
	sy := NewSyncer(fr, 30*time.Millisecond)

	first := stamped("2024-01-01T10:00:00Z")
	second := stamped("2024-01-01T10:00:01Z")
	sy.Enqueue(first)
	sy.Enqueue(second)
	sy.Flush()

	if got := fr.pushCount(); got != 1 {
		t.Fatalf("expected 1 coalesced push, got %d", got)
	}
	if fr.pushes[0] != second {
		t.Fatal("the latest snapshot must be the one pushed")
	}
}

func TestSyncerFlushWithoutPending(t *testing.T) {
	sy := NewSyncer(&fakeRemote{}, 30*time.Millisecond)
	sy.Flush() // no pending push; must not block or panic
}

func TestSyncerNilRemoteIsInert(t *testing.T) {
	sy := NewSyncer(nil, time.Millisecond)
	sy.Enqueue(stamped("2024-01-01T10:00:00Z"))
	sy.Flush()
	if err := sy.PushNow(context.Background(), model.NewStore()); err == nil {
		t.Fatal("PushNow without a remote must error")
	}
	var nilSyncer *Syncer
	nilSyncer.Enqueue(model.NewStore())
	nilSyncer.Flush()
}

func TestSyncerPushErrorsStayBackground(t *testing.T) {
	fr := &fakeRemote{pushErr: errors.New("boom")}
	sy := NewSyncer(fr, time.Millisecond)
	sy.Enqueue(stamped("2024-01-01T10:00:00Z"))
	sy.Flush() // the failed push is logged, never surfaced

	if err := sy.PushNow(context.Background(), model.NewStore()); err == nil {
		t.Fatal("PushNow must surface the push error")
	}
}

func TestPullReconcilePrefersNewerRemote(t *testing.T) {
	local := stamped("2024-01-01T10:00:00Z")
	theirs := stamped("2024-06-01T10:00:00Z")
	sy := NewSyncer(&fakeRemote{pulled: theirs}, time.Millisecond)

	if got := sy.PullReconcile(context.Background(), local); got != theirs {
		t.Fatal("newer remote copy must be adopted")
	}
}

func TestPullReconcileFallsBackOnError(t *testing.T) {
	local := stamped("2024-01-01T10:00:00Z")
	sy := NewSyncer(&fakeRemote{pullErr: errors.New("unreachable")}, time.Millisecond)

	if got := sy.PullReconcile(context.Background(), local); got != local {
		t.Fatal("pull failure must fall back to local")
	}
}

func TestHTTPRemoteRoundTrip(t *testing.T) {
	var (
		mu   sync.Mutex
		body []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			if body == nil {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write(body)
		case http.MethodPut:
			b, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			body = b
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	r := NewHTTP(srv.URL)
	ctx := context.Background()

	// An empty remote pulls as an empty store, not an error.
	s, err := r.Pull(ctx)
	if err != nil {
		t.Fatalf("pull empty: %v", err)
	}
	if len(s.Cultivars) != 0 {
		t.Fatal("expected empty store from 404")
	}

	want := model.NewStore()
	want.Cultivars = append(want.Cultivars, &model.Plant{ID: "p1", CultivarName: "Maya"})
	want.UpdatedAt = "2024-01-01T10:00:00Z"
	if err := r.Push(ctx, want); err != nil {
		t.Fatalf("push: %v", err)
	}

	got, err := r.Pull(ctx)
	if err != nil {
		t.Fatalf("pull: %v", err)
	}
	if len(got.Cultivars) != 1 || got.Cultivars[0].ID != "p1" {
		t.Fatalf("round trip lost data: %+v", got)
	}
	if got.UpdatedAt != want.UpdatedAt {
		t.Fatalf("updated at %q, want %q", got.UpdatedAt, want.UpdatedAt)
	}
}

func TestHTTPRemoteSurfacesServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewHTTP(srv.URL)
	ctx := context.Background()
	if _, err := r.Pull(ctx); err == nil {
		t.Fatal("expected pull error on 500")
	}
	if err := r.Push(ctx, model.NewStore()); err == nil {
		t.Fatal("expected push error on 500")
	}
}

