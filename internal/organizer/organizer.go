// Package organizer 文件整理模块
// 消费扫描结果：创建类别文件夹、解决重名冲突、移动文件并汇总报告
// 预览模式与实际执行共用同一条决策路径，只省略真正的写操作
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/schollz/progressbar/v3"

	"forg/internal/config"
	"forg/internal/scanner"
	"forg/internal/ui"
)

// ==================== 常量定义 ====================

// MaxRenameAttempts 重名探测的次数上限
// 超过后改用毫秒时间戳兜底，避免死循环
const MaxRenameAttempts = 1000

// ==================== 类型定义 ====================

// Report 整理报告
// 单次运行内累加，运行结束交给调用方展示后丢弃
type Report struct {
	Counts  map[string]int // 各类别成功（或预演成功）的文件数
	Skipped int            // 被排除的条目数
	Errored int            // 出错的条目数（含目录读取错误）
	Total   int            // 候选文件总数
}

// Moved 计算成功处理的文件总数
func (r *Report) Moved() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// ==================== 重名处理 ====================

// UniquePath 为目标目录下的文件名找一个不冲突的路径
// 目标不存在时原样返回；否则依次尝试 name_1.ext、name_2.ext ...
// 必须在移动前调用，两次调用之间外部仍可能抢占目标名（接受此竞态）
func UniquePath(dir, filename string) string {
	return uniquePath(dir, filename, MaxRenameAttempts)
}

// uniquePath 带探测次数上限的实现，上限独立出来便于测试兜底分支
func uniquePath(dir, filename string, maxAttempts int) string {
	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	// 在最后一个点号处拆分，点号在开头时视为无扩展名
	var base, ext string
	if dot := strings.LastIndex(filename, "."); dot > 0 {
		base = filename[:dot]
		ext = filename[dot:]
	} else {
		base = filename
		ext = ""
	}

	for i := 1; i <= maxAttempts; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}

	// 探测次数耗尽，用毫秒时间戳兜底，不再检查存在性
	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, time.Now().UnixMilli(), ext))
}

// ==================== 整理函数 ====================

// Organize 按顺序处理候选文件，返回整理报告
// 每个文件独立成败：建目录失败或移动失败只记一次错误，继续处理后面的文件
// 预览模式下不建目录、不移动，但目标路径照常计算，保证预览结果可信
func Organize(files []scanner.Candidate, opts *config.Options) *Report {
	rep := &Report{
		Counts: make(map[string]int),
		Total:  len(files),
	}

	// 非详细模式下用进度条反馈，输出重定向时退化为静默
	var bar *progressbar.ProgressBar
	if !opts.Verbose && !opts.DryRun && ui.IsTerminal() {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("  整理中"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
		)
	}

	for _, f := range files {
		if bar != nil {
			bar.Add(1)
		}

		// 目标文件夹 = 前缀 + 类别，建在起始目录下
		folder := opts.Prefix + f.Category
		targetDir := filepath.Join(opts.StartDir, folder)

		if !opts.DryRun {
			if err := os.MkdirAll(targetDir, 0755); err != nil {
				ui.Error("创建目录失败 %s: %v", folder, err)
				rep.Errored++
				continue
			}
		}

		// 目标路径始终计算，预览模式也要给出真实去向
		target := UniquePath(targetDir, f.Name)

		if opts.Verbose {
			ui.Info("移动: %s", f.Name)
			ui.Dim("  从: %s", f.Path)
			ui.Dim("  到: %s", target)
		}

		if opts.DryRun {
			ui.Info("→ %s -> %s/", f.Name, folder)
		} else {
			if err := os.Rename(f.Path, target); err != nil {
				ui.Error("移动失败 %s: %v", f.Name, err)
				rep.Errored++
				continue
			}
			if opts.Verbose {
				ui.Success("%s -> %s/", f.Name, folder)
			}
		}

		rep.Counts[f.Category]++
	}

	if bar != nil {
		fmt.Println()
	}

	return rep
}

// ==================== 报告展示 ====================

// PrintReport 打印整理报告
// 类别按名称排序输出，保证多次运行显示一致
func PrintReport(rep *Report) {
	fmt.Println()
	ui.Title("📋", "整理完成")

	cats := make([]string, 0, len(rep.Counts))
	for c := range rep.Counts {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"类别", "文件数"})
	for _, c := range cats {
		t.AppendRow(table.Row{c, rep.Counts[c]})
	}
	t.AppendFooter(table.Row{"合计", rep.Moved()})
	t.SetStyle(table.StyleLight)
	t.Render()

	if rep.Skipped > 0 {
		ui.Warning("跳过: %d 个条目", rep.Skipped)
	}
	if rep.Errored > 0 {
		ui.Error("错误: %d 个", rep.Errored)
	}
}
