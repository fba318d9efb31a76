// Package filter 实现路径的排除/包含判定
// 排除规则先于包含规则求值，两者是独立的有序规则列表
package filter

import (
	"errors"
	"path"
	"runtime"
	"strings"
)

// ErrInvalidMaxDepth 最大深度必须 >= -1（-1 表示不限制）
var ErrInvalidMaxDepth = errors.New("filter: max depth must be >= -1")

// Config 过滤与遍历配置
type Config struct {
	Exclude        []string // 有序排除模式列表，任一命中即排除
	Include        []string // 有序包含模式列表，空表示全部匹配
	MaxDepth       int      // 最大遍历深度，-1 表示不限制
	IncludeHidden  bool     // 是否包含隐藏文件/目录
	FollowSymlinks bool     // 是否跟随符号链接
}

// Validate 校验配置合法性
func (c Config) Validate() error {
	if c.MaxDepth < -1 {
		return ErrInvalidMaxDepth
	}
	return nil
}

// IsExcluded 判定 p 是否被排除
//
// 求值顺序（契约的关键部分）：
//  1. 空路径恒排除
//  2. 逐个排除模式做三级匹配：文件名 glob、父目录名 glob、全路径子串通配
//     （等价于 *pattern*），任一命中立即排除
//  3. 排除未命中且包含列表非空时，文件名或父目录名必须命中至少一个包含模式
//
// 三级匹配让单个 node_modules 这样的模式能命中树中任意位置的目录，
// 不需要递归 glob 语法
func IsExcluded(p string, cfg Config) bool {
	if strings.TrimSpace(p) == "" {
		return true
	}

	base, parent, full := splitPath(p)

	for _, pat := range cfg.Exclude {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}
		if matchName(pat, base) || matchName(pat, parent) || matchFullPath(pat, full) {
			return true
		}
	}

	if len(cfg.Include) == 0 {
		return false
	}
	for _, pat := range cfg.Include {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}
		if matchName(pat, base) || matchName(pat, parent) {
			return false
		}
	}
	return true
}

// splitPath 提取三个比较串：文件名、父目录名、规范化全路径
// 同时接受 '/' 与 '\' 分隔的输入，便于跨平台处理模式用例
func splitPath(p string) (base, parent, full string) {
	full = strings.ReplaceAll(p, "\\", "/")
	base = path.Base(full)
	parent = path.Base(path.Dir(full))
	return base, parent, full
}

// matchName 对单个名字做 glob 匹配，大小写规则按宿主 OS
func matchName(pat, name string) bool {
	ok, err := path.Match(fold(pat), fold(name))
	return err == nil && ok
}

// matchFullPath 将模式按 *pattern* 语义与全路径匹配
// 模式本身不含通配符时退化为子串匹配，与 glob 语义保持一致
func matchFullPath(pat, full string) bool {
	pat = fold(strings.ReplaceAll(pat, "\\", "/"))
	full = fold(full)
	core := strings.Trim(pat, "*")
	if core == "" {
		return false
	}
	if !strings.ContainsAny(core, "*?[") {
		return strings.Contains(full, core)
	}
	// 模式内部仍有通配符时，对路径的每一段尝试 glob 匹配
	for _, seg := range strings.Split(full, "/") {
		if ok, err := path.Match(core, seg); err == nil && ok {
			return true
		}
	}
	return false
}

// fold 按宿主 OS 的大小写规则折叠字符串（Windows 不区分大小写）
func fold(s string) string {
	if runtime.GOOS == "windows" {
		return strings.ToLower(s)
	}
	return s
}
