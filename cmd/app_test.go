package cmd

import "testing"

func TestResolveLedgerFile(t *testing.T) {
	reset := func(flagValue, envValue string) {
		t.Setenv("GARBANZO_LEDGER", envValue)
		old := *ledgerFile
		*ledgerFile = flagValue
		t.Cleanup(func() { *ledgerFile = old })
	}

	reset("", "")
	if got := resolveLedgerFile(); got != "ledger.jsonl" {
		t.Errorf("default = %q, want ledger.jsonl", got)
	}

	// the environment wins over the built-in default, even when it is
	// only set after package init (as godotenv does)
	reset("", "/data/from-env.jsonl")
	if got := resolveLedgerFile(); got != "/data/from-env.jsonl" {
		t.Errorf("env default = %q, want /data/from-env.jsonl", got)
	}

	// an explicit -ledger flag wins over the environment
	reset("explicit.jsonl", "/data/from-env.jsonl")
	if got := resolveLedgerFile(); got != "explicit.jsonl" {
		t.Errorf("flag = %q, want explicit.jsonl", got)
	}
}
