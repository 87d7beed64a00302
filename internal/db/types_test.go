package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPostersOptions_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListPostersOptions
		want ListPostersOptions
	}{
		{"zero values get defaults", ListPostersOptions{}, ListPostersOptions{Limit: 50, Offset: 0}},
		{"limit capped at 100", ListPostersOptions{Limit: 500}, ListPostersOptions{Limit: 100, Offset: 0}},
		{"negative offset reset", ListPostersOptions{Limit: 10, Offset: -5}, ListPostersOptions{Limit: 10, Offset: 0}},
		{"valid values pass through", ListPostersOptions{Limit: 25, Offset: 75}, ListPostersOptions{Limit: 25, Offset: 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
