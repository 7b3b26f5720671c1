package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"LocAddress", "loc_address"},
		{"ReasonDesc", "reason_desc"},
		{"ActID", "act_id"},
		{"MethodID", "method_id"},
		{"Email", "email"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, snakeCase(tt.in), tt.in)
	}
}
