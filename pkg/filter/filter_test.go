package filter

import "testing"

var defaultExcludes = []string{"*.tmp", "*.log", "*~", ".git", "node_modules", "bin", "obj"}

func Test_IsExcluded_EmptyPath(t *testing.T) {
	cfg := Config{Exclude: defaultExcludes}
	if !IsExcluded("", cfg) {
		t.Fatal("empty path must be excluded")
	}
	if !IsExcluded("   ", cfg) {
		t.Fatal("blank path must be excluded")
	}
}

func Test_IsExcluded_Patterns(t *testing.T) {
	cfg := Config{Exclude: defaultExcludes}
	cases := []struct {
		path string
		want bool
	}{
		{`C:\temp\test.tmp`, true},
		{`C:\temp\test.ps1`, false},
		{`C:\temp\.git\config`, true},
		{`C:\temp\node_modules\package.json`, true},
		{`/home/user/project/main.go`, false},
		{`/home/user/project/bin/app`, true},
		{`/home/user/project/debug.log`, true},
		{`/home/user/backup~`, true},
		{`/src/obj/unit.o`, true},
	}
	for _, c := range cases {
		if got := IsExcluded(c.path, cfg); got != c.want {
			t.Fatalf("IsExcluded(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}

func Test_IsExcluded_FullPathSubstring(t *testing.T) {
	// 三级匹配的第三级：模式作为 *pattern* 与全路径匹配，
	// 树中任意深度的 node_modules 都应命中
	cfg := Config{Exclude: []string{"node_modules"}}
	if !IsExcluded("/a/b/node_modules/c/d/e.js", cfg) {
		t.Fatal("nested node_modules must be excluded")
	}
	if IsExcluded("/a/b/src/e.js", cfg) {
		t.Fatal("unrelated path excluded")
	}
}

func Test_IsExcluded_IncludePass(t *testing.T) {
	cfg := Config{Include: []string{"*.go"}}
	if IsExcluded("/src/main.go", cfg) {
		t.Fatal("include match must pass")
	}
	if !IsExcluded("/src/readme.txt", cfg) {
		t.Fatal("include miss must exclude")
	}
	// 父目录名命中包含模式也算通过
	cfg = Config{Include: []string{"docs"}}
	if IsExcluded("/src/docs/readme.txt", cfg) {
		t.Fatal("parent dir include match must pass")
	}
}

func Test_IsExcluded_ExcludeBeforeInclude(t *testing.T) {
	// 排除优先：即使文件满足包含模式，排除命中仍然生效
	cfg := Config{Exclude: []string{"*.tmp"}, Include: []string{"*.tmp"}}
	if !IsExcluded("/work/cache.tmp", cfg) {
		t.Fatal("exclude must win over include")
	}
}

func Test_IsExcluded_WildcardInPattern(t *testing.T) {
	cfg := Config{Exclude: []string{"*test*"}}
	if !IsExcluded("/src/mytestdir/file.go", cfg) {
		t.Fatal("wildcard substring pattern must match path segment")
	}
}

func Test_Config_Validate(t *testing.T) {
	if err := (Config{MaxDepth: -1}).Validate(); err != nil {
		t.Fatalf("depth -1 valid: %v", err)
	}
	if err := (Config{MaxDepth: 3}).Validate(); err != nil {
		t.Fatalf("depth 3 valid: %v", err)
	}
	if err := (Config{MaxDepth: -2}).Validate(); err == nil {
		t.Fatal("depth -2 must be rejected")
	}
}
