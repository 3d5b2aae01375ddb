// Package cmd 命令行入口模块
// categories.go - 分类表命令，显示全部类别及其收录的扩展名
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forg/internal/classifier"
	"forg/internal/config"
	"forg/internal/ui"
)

// MaxSampleExts 每个类别最多展示的扩展名数量
const MaxSampleExts = 5

// categoriesCmd 分类表命令定义
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "查看分类表",
	Long:  "显示全部类别及其收录的扩展名（含自定义类别）",
	Run:   runCategories,
}

// init 注册 categories 子命令
func init() {
	rootCmd.AddCommand(categoriesCmd)
}

// runCategories 执行分类表命令
// 按查表顺序显示，先声明的类别优先命中
func runCategories(cmd *cobra.Command, args []string) {
	ui.Banner()
	ui.Title("📚", "分类表")
	ui.Divider()

	table := classifier.Default().WithExtras(config.Get().ExtraCategories)
	for _, cat := range table.Categories() {
		sample := cat.Extensions
		more := ""
		if len(sample) > MaxSampleExts {
			more = fmt.Sprintf(" + %d 种", len(sample)-MaxSampleExts)
			sample = sample[:MaxSampleExts]
		}
		ui.Info("%s: %s%s", ui.Bold(cat.Name), strings.Join(sample, ", "), more)
	}

	ui.Info("%s: 扩展名未被收录的文件", ui.Bold(classifier.FallbackCategory))
}
