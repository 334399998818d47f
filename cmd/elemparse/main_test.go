package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/pcomb/element"
	"gopkg.in/yaml.v3"
)

func TestElemparseArgs(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{`<a href="x"><img src="y"/></a>`})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	var el element.Element
	if err := yaml.Unmarshal(out.Bytes(), &el); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, out.String())
	}
	if el.Name != "a" || len(el.Children) != 1 || el.Children[0].Name != "img" {
		t.Errorf("unexpected element tree from output:\n%s", out.String())
	}
}

func TestElemparseStdinCount(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("<a>\n  <b/>\n  <c><d/></c>\n</a>\n"))
	cmd.SetArgs([]string{"--count"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if s := strings.TrimSpace(out.String()); s != "4" {
		t.Errorf("expected count of 4, have %q", s)
	}
}

func TestElemparseSyntaxError(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"<a>"})
	if err := cmd.Execute(); err == nil {
		t.Errorf("expected an error for unclosed element")
	}
}
