package apperrors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigurationError
		want string
	}{
		{
			name: "with key",
			err:  &ConfigurationError{ConfigPath: "basics.yaml", Key: "greet.names", Err: errors.New("empty name")},
			want: "configuration error in basics.yaml (key: greet.names): empty name",
		},
		{
			name: "without key",
			err:  &ConfigurationError{ConfigPath: "basics.yaml", Err: errors.New("unreadable")},
			want: "configuration error in basics.yaml: unreadable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStepError_Unwrap(t *testing.T) {
	err := &StepError{Step: "sum", Err: io.ErrShortWrite}

	assert.Equal(t, "step sum failed: short write", err.Error())
	assert.ErrorIs(t, err, io.ErrShortWrite)

	var stepErr *StepError
	assert.True(t, errors.As(error(err), &stepErr))
	assert.Equal(t, "sum", stepErr.Step)
}
