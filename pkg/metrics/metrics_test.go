package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(p, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func Test_Extract_Empty(t *testing.T) {
	e := &Extractor{}
	m, err := e.Extract(context.Background(), writeTemp(t, nil))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m != (Metrics{}) {
		t.Fatalf("empty file must yield zero metrics: %+v", m)
	}
}

func Test_Extract_NoTrailingNewline(t *testing.T) {
	e := &Extractor{}
	m, err := e.Extract(context.Background(), writeTemp(t, []byte("one\ntwo\nthree")))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	// 末行无换行符仍计为一行
	if m.LineCount != 3 {
		t.Fatalf("line count = %d, want 3", m.LineCount)
	}
}

func Test_Extract_TrailingNewline(t *testing.T) {
	e := &Extractor{}
	m, err := e.Extract(context.Background(), writeTemp(t, []byte("one\ntwo\n")))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m.LineCount != 2 {
		t.Fatalf("line count = %d, want 2", m.LineCount)
	}
}

func Test_Extract_BlankAndCommentLines(t *testing.T) {
	content := "# comment\n// comment\n/* block\n<!-- html\n-- sql\n; ini\nREM batch\n\n   \ncode here\n"
	e := &Extractor{}
	m, err := e.Extract(context.Background(), writeTemp(t, []byte(content)))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m.LineCount != 10 {
		t.Fatalf("line count = %d, want 10", m.LineCount)
	}
	if m.CommentLineCount != 7 {
		t.Fatalf("comment lines = %d, want 7", m.CommentLineCount)
	}
	if m.BlankLineCount != 2 {
		t.Fatalf("blank lines = %d, want 2", m.BlankLineCount)
	}
}

func Test_Extract_CommentMarkerIndented(t *testing.T) {
	// 标记匹配发生在去除首尾空白之后
	e := &Extractor{}
	m, err := e.Extract(context.Background(), writeTemp(t, []byte("    // indented comment\n")))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m.CommentLineCount != 1 {
		t.Fatalf("comment lines = %d, want 1", m.CommentLineCount)
	}
}

func Test_Extract_CustomMarkers(t *testing.T) {
	e := &Extractor{Markers: []string{"%"}}
	m, err := e.Extract(context.Background(), writeTemp(t, []byte("% tex comment\n// not a marker here\n")))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m.CommentLineCount != 1 {
		t.Fatalf("comment lines = %d, want 1", m.CommentLineCount)
	}
}

func Test_Extract_WordCount(t *testing.T) {
	e := &Extractor{}
	// 标点分隔单词："hello, world! foo-bar" -> hello world foo bar
	m, err := e.Extract(context.Background(), writeTemp(t, []byte("hello, world! foo-bar\n")))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m.WordCount != 4 {
		t.Fatalf("word count = %d, want 4", m.WordCount)
	}
}

func Test_Extract_GraphemeClusters(t *testing.T) {
	// e + 组合重音符是两个码点但一个用户感知字符
	content := "e\u0301"
	e := &Extractor{}
	m, err := e.Extract(context.Background(), writeTemp(t, []byte(content)))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m.CharCount != 1 {
		t.Fatalf("char count = %d, want 1", m.CharCount)
	}
}

func Test_Extract_EncodingFallback(t *testing.T) {
	// 非法 UTF-8 序列：配置编码解码失败后用平台默认编码重试，不返回错误
	raw := []byte{0xff, 0xfe, 'h', 'i', '\n'}
	e := &Extractor{Encoding: "utf-8"}
	m, err := e.Extract(context.Background(), writeTemp(t, raw))
	if err != nil {
		t.Fatalf("fallback must not error: %v", err)
	}
	if m.LineCount != 1 {
		t.Fatalf("line count = %d, want 1", m.LineCount)
	}
}

func Test_Extract_UnknownEncoding(t *testing.T) {
	e := &Extractor{Encoding: "no-such-encoding"}
	m, err := e.Extract(context.Background(), writeTemp(t, []byte("line\n")))
	if err != nil {
		t.Fatalf("unknown encoding must fall back: %v", err)
	}
	if m.LineCount != 1 {
		t.Fatalf("line count = %d, want 1", m.LineCount)
	}
}

func Test_Extract_Latin1(t *testing.T) {
	// 0xE9 是 Latin-1 的 é
	raw := []byte{'c', 'a', 'f', 0xe9, '\n'}
	e := &Extractor{Encoding: "ISO-8859-1"}
	m, err := e.Extract(context.Background(), writeTemp(t, raw))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if m.CharCount != 5 {
		t.Fatalf("char count = %d, want 5", m.CharCount)
	}
	if m.WordCount != 1 {
		t.Fatalf("word count = %d, want 1", m.WordCount)
	}
}

func Test_Extract_Unreadable(t *testing.T) {
	e := &Extractor{}
	m, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected read error")
	}
	if m != (Metrics{}) {
		t.Fatalf("unreadable file must yield zero metrics: %+v", m)
	}
}

func Test_Extract_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := &Extractor{}
	if _, err := e.Extract(ctx, writeTemp(t, []byte("x\n"))); err == nil {
		t.Fatal("expected context error")
	}
}
