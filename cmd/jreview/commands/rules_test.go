package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestRulesCommand(t *testing.T) {
	rulesJSON = false

	buf := new(bytes.Buffer)
	rulesCmd.SetOut(buf)
	defer rulesCmd.SetOut(nil)

	if err := runRules(rulesCmd, nil); err != nil {
		t.Fatalf("runRules() error = %v", err)
	}

	out := buf.String()
	if len(strings.Split(strings.TrimSpace(out), "\n")) != 10 {
		t.Errorf("expected 10 guideline lines:\n%s", out)
	}
	if !strings.Contains(out, "Guideline  1. Follow Java naming conventions.") {
		t.Errorf("output missing guideline 1:\n%s", out)
	}
	if !strings.Contains(out, "(reserved)") {
		t.Errorf("output missing reserved marker:\n%s", out)
	}
	if !strings.Contains(out, "(rewrites)") {
		t.Errorf("output missing rewrites marker:\n%s", out)
	}
}

func TestRulesCommandJSON(t *testing.T) {
	rulesJSON = true
	defer func() { rulesJSON = false }()

	buf := new(bytes.Buffer)
	rulesCmd.SetOut(buf)
	defer rulesCmd.SetOut(nil)

	if err := runRules(rulesCmd, nil); err != nil {
		t.Fatalf("runRules() error = %v", err)
	}

	var infos []struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Wired    bool   `json:"wired"`
		Rewrites bool   `json:"rewrites"`
	}
	if err := json.Unmarshal(buf.Bytes(), &infos); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(infos) != 10 {
		t.Fatalf("len(infos) = %d, want 10", len(infos))
	}
	if !infos[2].Wired || !infos[2].Rewrites {
		t.Errorf("guideline 3 = %+v, want wired with rewrite", infos[2])
	}
	if infos[9].Wired {
		t.Errorf("guideline 10 = %+v, want reserved", infos[9])
	}
}
