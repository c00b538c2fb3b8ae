package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "defaults", args: []string{"sum"}, want: "The sum of x and y is: 3\n"},
		{name: "override y", args: []string{"sum", "--y", "40"}, want: "The sum of x and y is: 41\n"},
		{name: "override both", args: []string{"sum", "--x", "-5", "--y", "5"}, want: "The sum of x and y is: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestSumCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "sum", "1", "2")
	assert.Error(t, err)
}

func TestGreetCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "configured names", args: []string{"greet"}, want: "Hello, Alice!\nHello, Bob!\n"},
		{name: "single name", args: []string{"greet", "Carol"}, want: "Hello, Carol!\n"},
		{name: "names in order", args: []string{"greet", "Dave", "Carol"}, want: "Hello, Dave!\nHello, Carol!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestDivideCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults divide by zero",
			args: []string{"divide"},
			want: "Error: Division by zero is not allowed.\nExecution completed.\n",
		},
		{
			name: "explicit zero",
			args: []string{"divide", "--numerator", "1", "--denominator", "0"},
			want: "Error: Division by zero is not allowed.\nExecution completed.\n",
		},
		{
			name: "success prints only completion",
			args: []string{"divide", "--denominator", "2"},
			want: "Execution completed.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}
