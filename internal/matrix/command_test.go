package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommands_CanonicalOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, []Command{Check, Lint, Build, Test}, Commands())
}

func TestCommandVerb(t *testing.T) {
	t.Parallel()

	require.Equal(t, "check", Check.Verb())
	require.Equal(t, "clippy", Lint.Verb())
	require.Equal(t, "build", Build.Verb())
	require.Equal(t, "test", Test.Verb())
}

func TestCommandArgs(t *testing.T) {
	t.Parallel()

	cfg := Config{Kind: NoDefaultFeatures}

	// Every command except test exercises all build targets.
	require.Equal(t, []string{"check", "--all-targets", "--no-default-features"}, Check.Args(cfg))
	require.Equal(t, []string{"clippy", "--all-targets", "--no-default-features"}, Lint.Args(cfg))
	require.Equal(t, []string{"build", "--all-targets", "--no-default-features"}, Build.Args(cfg))
	require.Equal(t, []string{"test", "--no-default-features"}, Test.Args(cfg))
}

func TestParseCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Command
		wantErr bool
	}{
		{name: "empty selects all", input: "", want: []Command{Check, Lint, Build, Test}},
		{name: "blank selects all", input: "  ", want: []Command{Check, Lint, Build, Test}},
		{name: "single", input: "check", want: []Command{Check}},
		{name: "short sweep", input: "check,lint", want: []Command{Check, Lint}},
		{name: "canonical order restored", input: "test,check", want: []Command{Check, Test}},
		{name: "duplicates collapse", input: "build,build", want: []Command{Build}},
		{name: "spaces tolerated", input: " lint , test ", want: []Command{Lint, Test}},
		{name: "unknown command", input: "clippy", wantErr: true},
		{name: "trailing comma", input: "check,", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCommands(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
