package relay_test

import (
	"net/http/httptest"
	"testing"

	"prpcap/internal/domain"
	"prpcap/internal/relay"
)

func newTestRelay(t *testing.T) *relay.Client {
	t.Helper()
	srv := httptest.NewServer(relay.NewServer().Handler())
	t.Cleanup(srv.Close)
	return relay.NewClient(srv.URL)
}

func TestPublishFetchEpoch(t *testing.T) {
	c := newTestRelay(t)

	var pub domain.EpochPublic
	pub.A[0] = 1
	pub.B[0] = 2
	if err := c.Publish("alice", pub); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	got, err := c.FetchEpoch("alice")
	if err != nil {
		t.Fatalf("FetchEpoch: %v", err)
	}
	if got != pub {
		t.Fatalf("fetched %+v, want %+v", got, pub)
	}

	if _, err := c.FetchEpoch("nobody"); err == nil {
		t.Fatal("unknown name did not error")
	}
}

func TestPostFetchAck(t *testing.T) {
	c := newTestRelay(t)

	for i := byte(0); i < 3; i++ {
		env := domain.Envelope{From: "alice", To: "bob", Index: uint32(i)}
		env.Ephemeral[0] = i
		if err := c.Post(env); err != nil {
			t.Fatalf("Post: %v", err)
		}
	}

	envs, err := c.Fetch("bob", 0)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(envs) != 3 {
		t.Fatalf("fetched %d envelopes, want 3", len(envs))
	}

	limited, err := c.Fetch("bob", 2)
	if err != nil {
		t.Fatalf("Fetch limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limited fetch returned %d", len(limited))
	}

	if err := c.Ack("bob", 2); err != nil {
		t.Fatalf("Ack: %v", err)
	}
	rest, err := c.Fetch("bob", 0)
	if err != nil {
		t.Fatalf("Fetch after ack: %v", err)
	}
	if len(rest) != 1 || rest[0].Index != 2 {
		t.Fatalf("after ack: %+v", rest)
	}
}
