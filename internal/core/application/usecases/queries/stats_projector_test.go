package queries_test

import (
	"testing"

	"logitech/internal/core/application/usecases/queries"
	"logitech/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestProjectStats(t *testing.T) {
	tests := []struct {
		name     string
		statuses []order.Status
		want     queries.Stats
	}{
		{
			name:     "empty snapshot",
			statuses: nil,
			want:     queries.Stats{},
		},
		{
			name: "mixed statuses",
			statuses: []order.Status{
				order.Pending, order.Pending, order.Paid,
				order.InTransit, order.Delivered, order.Cancelled,
			},
			want: queries.Stats{Total: 6, Pending: 2, InTransit: 1, Completed: 1},
		},
		{
			name:     "paid and cancelled count toward total only",
			statuses: []order.Status{order.Paid, order.Cancelled},
			want:     queries.Stats{Total: 2},
		},
		{
			name:     "all delivered",
			statuses: []order.Status{order.Delivered, order.Delivered},
			want:     queries.Stats{Total: 2, Completed: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queries.ProjectStats(tt.statuses))
		})
	}
}

func TestProjectStats_IsPure(t *testing.T) {
	statuses := []order.Status{order.Pending, order.Delivered}
	first := queries.ProjectStats(statuses)
	second := queries.ProjectStats(statuses)
	assert.Equal(t, first, second)
	assert.Equal(t, []order.Status{order.Pending, order.Delivered}, statuses)
}
