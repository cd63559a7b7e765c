package movements

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
	"github.com/rogerio-castellano/paintchain/internal/redissvc"
)

func TestRedisLog(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	svc, err := redissvc.Connect(context.Background(), addr)
	if err != nil {
		t.Fatalf("could not connect to Redis: %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	key := "paintchain:test:" + time.Now().Format("150405.000000")
	t.Cleanup(func() { svc.Rdb().Del(svc.Ctx(), key) })

	l := NewRedisLog(svc, key)
	ts := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"p1", "p2", "p1"} {
		if err := l.Record(models.Movement{ProductID: id, Field: "dealerStock", Delta: -(i + 1), Reason: "order", Timestamp: ts}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	got, total, err := l.List(Filter{ProductID: "p1", Limit: ptr(1)})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 matches, got %d", total)
	}
	if len(got) != 1 || got[0].Delta != -1 || !got[0].Timestamp.Equal(ts) {
		t.Errorf("unexpected page %+v", got)
	}
}

func TestRedisLog_OutlivesConnectContext(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx, cancel := context.WithCancel(context.Background())
	svc, err := redissvc.Connect(ctx, addr)
	if err != nil {
		t.Fatalf("could not connect to Redis: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	cancel()

	key := "paintchain:test:drain:" + time.Now().Format("150405.000000")
	t.Cleanup(func() { svc.Rdb().Del(context.Background(), key) })

	l := NewRedisLog(svc, key)
	if err := l.Record(models.Movement{ProductID: "p1", Field: "dealerStock", Delta: -5, Reason: "order o9"}); err != nil {
		t.Fatalf("record after shutdown signal failed: %v", err)
	}
	if _, total, err := l.List(Filter{}); err != nil || total != 1 {
		t.Errorf("expected 1 movement, got %d (%v)", total, err)
	}
}
