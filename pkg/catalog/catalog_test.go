package catalog

import (
	"errors"
	"strings"
	"testing"
)

func Test_Load_Valid(t *testing.T) {
	src := `
extensions:
  .go:
    language: Go
    category: Source
    description: Go source
  PY:
    language: Python
    category: Source
default_excludes:
  - "*.tmp"
  - node_modules
`
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries got %d", c.Len())
	}
	if e := c.Classify(".go"); e.Language != "Go" || e.Category != "Source" {
		t.Fatalf("classify .go: %+v", e)
	}
	// 缺少前导点的键应被规范化，查找大小写不敏感
	if e := c.Classify(".PY"); e.Language != "Python" {
		t.Fatalf("classify .PY: %+v", e)
	}
	if len(c.DefaultExcludes()) != 2 {
		t.Fatalf("default excludes: %v", c.DefaultExcludes())
	}
}

func Test_Load_Invalid(t *testing.T) {
	cases := map[string]string{
		"not a mapping":    `[1, 2, 3]`,
		"missing language": "extensions:\n  .go:\n    category: Source\n",
		"missing category": "extensions:\n  .go:\n    language: Go\n",
		"empty extension":  "extensions:\n  \"\":\n    language: Go\n    category: Source\n",
		"no entries":       "default_excludes:\n  - \"*.tmp\"\n",
	}
	for name, src := range cases {
		if _, err := Load(strings.NewReader(src)); err == nil {
			t.Fatalf("%s: expected error", name)
		} else {
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("%s: expected *ConfigError got %T", name, err)
			}
		}
	}
}

func Test_Classify_RoundTrip(t *testing.T) {
	src := "extensions:\n  .go:\n    language: Go\n    category: Source\n  .md:\n    language: Markdown\n    category: Docs\n"
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// 表中每个键的 Classify 必须返回加载时的分类
	for _, ext := range c.Extensions() {
		e := c.Classify(ext)
		if e == UnknownEntry {
			t.Fatalf("round trip failed for %s", ext)
		}
	}
}

func Test_Classify_Unknown(t *testing.T) {
	c := Default()
	e := c.Classify(".nosuchext")
	if e.Language != "Unknown" || e.Category != "Other" {
		t.Fatalf("unknown classify: %+v", e)
	}
	// 空表也不应 panic
	var empty Catalog
	if e := empty.Classify(".go"); e != UnknownEntry {
		t.Fatalf("empty catalog classify: %+v", e)
	}
}

func Test_Classify_CaseAndDot(t *testing.T) {
	c := Default()
	if e := c.Classify("GO"); e.Language != "Go" {
		t.Fatalf("missing dot lookup: %+v", e)
	}
	if e := c.Classify(".Go"); e.Language != "Go" {
		t.Fatalf("case insensitive lookup: %+v", e)
	}
}

func Test_Default(t *testing.T) {
	c := Default()
	if c.Len() == 0 {
		t.Fatal("default catalog empty")
	}
	if e := c.Classify(".go"); e.Category != CategorySource {
		t.Fatalf("default .go entry: %+v", e)
	}
	if len(c.DefaultExcludes()) == 0 {
		t.Fatal("default excludes empty")
	}
}
