package models

import (
	"math"
	"testing"
)

func TestPoolTotals(t *testing.T) {
	tests := []struct {
		name       string
		members    []PoolMember
		wantBefore float64
		wantAfter  float64
	}{
		{name: "no members"},
		{
			name: "redistribution keeps the total",
			members: []PoolMember{
				{ShipID: "S1", CBBefore: 100, CBAfter: 10},
				{ShipID: "S2", CBBefore: -40, CBAfter: 0},
				{ShipID: "S3", CBBefore: -50, CBAfter: 0},
			},
			wantBefore: 10,
			wantAfter:  10,
		},
		{
			name:       "single member",
			members:    []PoolMember{{ShipID: "S1", CBBefore: 7.5, CBAfter: 7.5}},
			wantBefore: 7.5,
			wantAfter:  7.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pool{Members: tt.members}
			if got := p.TotalBefore(); math.Abs(got-tt.wantBefore) > 1e-9 {
				t.Errorf("TotalBefore() = %v, want %v", got, tt.wantBefore)
			}
			if got := p.TotalAfter(); math.Abs(got-tt.wantAfter) > 1e-9 {
				t.Errorf("TotalAfter() = %v, want %v", got, tt.wantAfter)
			}
		})
	}
}
