package movements

import (
	"testing"
	"time"

	"github.com/rogerio-castellano/paintchain/internal/models"
)

func TestInMemoryLog_Filter(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	l := NewInMemoryLog()
	for i, id := range []string{"p1", "p2", "p1", "p1"} {
		l.Record(models.Movement{ProductID: id, Field: "dealerStock", Delta: -(i + 1), Timestamp: base.Add(time.Duration(i) * time.Hour)})
	}

	tests := []struct {
		name      string
		filter    Filter
		wantLen   int
		wantTotal int
		wantFirst int
	}{
		{"all", Filter{}, 4, 4, -1},
		{"by product", Filter{ProductID: "p1"}, 3, 3, -1},
		{"since", Filter{ProductID: "p1", Since: ptr(base.Add(90 * time.Minute))}, 2, 2, -3},
		{"until", Filter{Until: ptr(base.Add(time.Hour))}, 2, 2, -1},
		{"paged", Filter{ProductID: "p1", Offset: ptr(1), Limit: ptr(1)}, 1, 3, -3},
		{"offset past end", Filter{Offset: ptr(10)}, 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := l.List(tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.wantLen || total != tt.wantTotal {
				t.Fatalf("expected %d/%d, got %d/%d", tt.wantLen, tt.wantTotal, len(got), total)
			}
			if tt.wantLen > 0 && got[0].Delta != tt.wantFirst {
				t.Errorf("expected first delta %d, got %d", tt.wantFirst, got[0].Delta)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
