// Package scanner 目录遍历模块
// stats.go - 扫描统计，按类别和扩展名汇总文件分布
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package scanner

import (
	"sort"

	"forg/internal/classifier"
	"forg/internal/ui"
)

// ==================== 统计相关类型 ====================

// Statistics 文件统计信息
type Statistics struct {
	TotalFiles int                // 文件总数
	TotalSize  int64              // 总大小（字节）
	ByCategory map[string]CatStat // 按类别统计
	ByExt      map[string]int     // 按扩展名统计文件数
}

// CatStat 单个类别的统计
type CatStat struct {
	Count int   // 文件数量
	Size  int64 // 总大小
}

// ==================== 统计函数 ====================

// GetStatistics 汇总候选文件列表的统计信息
// 统计文件数、总大小、类别分布和扩展名分布
func GetStatistics(files []Candidate) Statistics {
	stats := Statistics{
		ByCategory: make(map[string]CatStat),
		ByExt:      make(map[string]int),
	}

	for _, f := range files {
		stats.TotalFiles++
		stats.TotalSize += f.Size

		cs := stats.ByCategory[f.Category]
		cs.Count++
		cs.Size += f.Size
		stats.ByCategory[f.Category] = cs

		ext := classifier.ExtensionOf(f.Name)
		if ext == "" {
			ext = "(无扩展名)"
		}
		stats.ByExt[ext]++
	}

	return stats
}

// PrintStatistics 打印统计信息
// 类别按文件数降序显示，扩展名最多显示前12种
func PrintStatistics(files []Candidate) {
	stats := GetStatistics(files)

	ui.Title("📊", "扫描统计")
	ui.Divider()

	ui.Info("📄 文件:   %d 个", stats.TotalFiles)
	ui.Info("💾 总大小: %s", ui.FormatSize(stats.TotalSize))

	if len(stats.ByCategory) > 0 {
		ui.Info("")
		ui.Info("按类别统计:")

		type kv struct {
			Cat  string
			Stat CatStat
		}
		var cats []kv
		for k, v := range stats.ByCategory {
			cats = append(cats, kv{k, v})
		}
		sort.Slice(cats, func(i, j int) bool {
			if cats[i].Stat.Count != cats[j].Stat.Count {
				return cats[i].Stat.Count > cats[j].Stat.Count // 按数量降序
			}
			return cats[i].Cat < cats[j].Cat // 数量相同时按名称排序，保证输出稳定
		})

		for _, kv := range cats {
			ui.Info("  %-12s %4d 个  %10s", kv.Cat, kv.Stat.Count, ui.FormatSize(kv.Stat.Size))
		}
	}

	if len(stats.ByExt) > 0 {
		ui.Info("")
		ui.Info("按扩展名统计:")

		type ev struct {
			Ext   string
			Count int
		}
		var exts []ev
		for k, v := range stats.ByExt {
			exts = append(exts, ev{k, v})
		}
		sort.Slice(exts, func(i, j int) bool {
			if exts[i].Count != exts[j].Count {
				return exts[i].Count > exts[j].Count
			}
			return exts[i].Ext < exts[j].Ext
		})

		for i, ev := range exts {
			if i >= 12 {
				ui.Dim("  ... 还有 %d 种扩展名", len(exts)-12)
				break
			}
			ui.Info("  %-12s %4d 个", ev.Ext, ev.Count)
		}
	}
}
