package cmd

import "testing"

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"chat":    false,
		"ask":     false,
		"serve":   false,
		"version": false,
	}

	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}

	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestAskFlags(t *testing.T) {
	for _, flag := range []string{"tips", "skill", "level"} {
		if askCmd.Flags().Lookup(flag) == nil {
			t.Errorf("ask flag %q not defined", flag)
		}
	}
}
