// Package walker 实现目录树的深度受限遍历
package walker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeisme/dirstat/pkg/filter"
	"github.com/yeisme/dirstat/pkg/utils/log"
)

// ErrorFunc 在某个子目录无法读取时被调用
// 该子树被跳过，遍历继续处理兄弟节点
type ErrorFunc func(dir string, err error)

// Walk 从 root 开始遍历并返回候选文件路径列表
//
// 深度语义：maxDepth == -1 时遍历整个子树；否则深度 0 是 root 的直接子项，
// 目录仅在 currentDepth < maxDepth 时才被下降，深度 <= maxDepth 的文件都会产出
// 每次调用都从头重新遍历，单个子目录的读取错误不致命
func Walk(ctx context.Context, root string, cfg filter.Config, onError ErrorFunc) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("walker: %s is not a directory", root)
	}

	files := make([]string, 0, 256)

	var walk func(dir string, depth int)
	walk = func(dir string, depth int) {
		if ctx.Err() != nil {
			return
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn().Str("dir", dir).Err(err).Msg("skipping unreadable directory")
			if onError != nil {
				onError(dir, err)
			}
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if isHidden(name) && !cfg.IncludeHidden {
				continue
			}
			path := filepath.Join(dir, name)

			isDir := entry.IsDir()
			if isSymlink(entry) {
				if !cfg.FollowSymlinks {
					continue
				}
				// 跟随符号链接时按链接目标的类型处理
				target, err := os.Stat(path)
				if err != nil {
					log.Warn().Str("path", path).Err(err).Msg("skipping broken symlink")
					continue
				}
				isDir = target.IsDir()
			}

			if isDir {
				if cfg.MaxDepth == -1 || depth < cfg.MaxDepth {
					walk(path, depth+1)
				}
				continue
			}
			files = append(files, path)
		}
	}

	walk(root, 0)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// isHidden 点前缀视为隐藏
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// isSymlink 判断目录条目是否为符号链接
func isSymlink(entry fs.DirEntry) bool {
	return entry.Type()&fs.ModeSymlink != 0
}
