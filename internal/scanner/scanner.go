// Package scanner 目录遍历模块
// 负责收集待整理文件：应用跳过规则、控制递归深度、逐文件分类
// 目录读取失败只影响该目录，整体扫描继续
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"forg/internal/classifier"
	"forg/internal/config"
	"forg/internal/ui"
)

// ==================== 类型定义 ====================

// Candidate 待整理文件
// 扫描阶段生成，整理阶段消费，生成后不再修改
type Candidate struct {
	Path     string // 文件完整路径
	Name     string // 文件名
	Category string // 所属类别
	Size     int64  // 文件大小（字节）
}

// Result 扫描结果
// 候选列表在扫描阶段一次性生成完整，整理阶段才按它创建目标文件夹
type Result struct {
	Files   []Candidate // 待整理文件列表
	Skipped int         // 被排除的条目数（隐藏文件、跳过名单、未进入的目录）
	Errors  []error     // 目录读取错误（不含起始目录）
}

// skipNames 需要跳过的文件和目录名
// 精确匹配，不做子串匹配
var skipNames = map[string]bool{
	// 版本控制目录
	".git": true,
	".svn": true,
	".hg":  true,
	".bzr": true,
	// IDE 和编辑器目录
	".vscode": true,
	".idea":   true,
	".vs":     true,
	// 构建产物目录
	"build":        true,
	"dist":         true,
	"node_modules": true,
	".cache":       true,
	"__pycache__":  true,
	// 系统文件
	".DS_Store":       true, // macOS 系统文件
	"Thumbs.db":       true, // Windows 缩略图缓存
	"desktop.ini":     true, // Windows 文件夹配置
	"$RECYCLE.BIN":    true, // Windows 回收站
	".Spotlight-V100": true, // macOS 索引
	".Trashes":        true, // macOS 废纸篓
	".forg":           true, // Forg 数据目录
}

// ==================== 跳过规则 ====================

// ShouldSkip 判断条目是否应被排除
// 以点开头的隐藏条目跳过；命中跳过名单的条目跳过
// 文件和目录统一适用，被跳过的目录不会进入
func ShouldSkip(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return skipNames[name]
}

// isSelf 判断文件是否是程序自身
// 避免整理时把自己移走
func isSelf(name string, opts *config.Options) bool {
	return name == opts.SelfName || name == config.BinName
}

// ==================== 核心扫描函数 ====================

// Collect 扫描起始目录并生成待整理文件列表
// 起始目录不可读时返回错误（无事可做）；子目录读取失败记入 Result.Errors 并继续
// 列表一次性生成完整，供整理阶段消费
func Collect(opts *config.Options, table *classifier.Table) (*Result, error) {
	absDir, err := filepath.Abs(opts.StartDir)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("无法读取目录 %s: %w", absDir, err)
	}

	res := &Result{}
	collectDir(absDir, 1, entries, opts, table, res)
	return res, nil
}

// collectDir 处理单个目录的条目，必要时递归进入子目录
// depth 为当前目录的嵌套层级，起始目录为 1
// 目录条目只有在递归模式下且未达深度上限、未命中跳过规则时才进入
func collectDir(dir string, depth int, entries []os.DirEntry, opts *config.Options, table *classifier.Table, res *Result) {
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			if ShouldSkip(name) {
				if opts.Verbose {
					ui.Dim("跳过: %s", path)
				}
				res.Skipped++
				continue
			}

			// 递归模式且未达深度上限时进入子目录
			if opts.Recursive && depth < opts.MaxDepth {
				sub, err := os.ReadDir(path)
				if err != nil {
					// 只影响这一个子目录，继续处理兄弟条目
					res.Errors = append(res.Errors, fmt.Errorf("无法读取目录 %s: %w", path, err))
					if opts.Verbose {
						ui.Error("无法读取目录: %s", path)
					}
					continue
				}
				collectDir(path, depth+1, sub, opts, table, res)
			} else {
				if opts.Verbose {
					ui.Dim("跳过目录: %s", name)
				}
				res.Skipped++
			}
			continue
		}

		// 跳过程序自身
		if isSelf(name, opts) {
			if opts.Verbose {
				ui.Dim("跳过程序文件: %s", name)
			}
			res.Skipped++
			continue
		}

		if ShouldSkip(name) {
			if opts.Verbose {
				ui.Dim("跳过: %s", name)
			}
			res.Skipped++
			continue
		}

		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}

		res.Files = append(res.Files, Candidate{
			Path:     path,
			Name:     name,
			Category: table.Classify(name),
			Size:     size,
		})
	}
}
