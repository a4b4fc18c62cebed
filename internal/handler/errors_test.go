package handler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/drivelog/internal/domain"
)

func TestUnwrapMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrapped validation error",
			err:  fmt.Errorf("service.ReportService.Create: %w: year is required", domain.ErrValidation),
			want: "year is required",
		},
		{
			name: "doubly wrapped validation error",
			err: fmt.Errorf("handler: %w",
				fmt.Errorf("service.ReportService.Create: %w: month must be between 1 and 12", domain.ErrValidation)),
			want: "month must be between 1 and 12",
		},
		{
			name: "transition error keeps sentinel text",
			err:  fmt.Errorf("recorder.Stop from idle: %w", domain.ErrInvalidTransition),
			want: "invalid state transition",
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: "boom",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unwrapMessage(tt.err))
		})
	}
}
