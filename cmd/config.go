// Package cmd 命令行入口模块
// config.go - 配置管理命令，用于查看和修改 Forg 默认值
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"forg/internal/config"
	"forg/internal/ui"
)

// 配置选项标志
var (
	setPrefix   string // 设置默认前缀
	setDepth    int    // 设置默认深度
	addCategory string // 添加自定义类别，格式: 名称=ext1,ext2
	clearExtras bool   // 清空自定义类别
)

// configCmd 配置管理命令定义
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置管理",
	Long:  "查看或修改 Forg 默认值",
	Run:   runConfig,
}

// init 注册 config 子命令及其标志
func init() {
	configCmd.Flags().StringVar(&setPrefix, "prefix", "", "设置默认前缀")
	configCmd.Flags().IntVar(&setDepth, "depth", 0, "设置默认深度 (>=1)")
	configCmd.Flags().StringVar(&addCategory, "add-category", "", "添加自定义类别，格式: 名称=ext1,ext2")
	configCmd.Flags().BoolVar(&clearExtras, "clear-categories", false, "清空自定义类别")
	rootCmd.AddCommand(configCmd)
}

// runConfig 执行配置命令
// 如果没有设置选项，显示当前配置；否则修改并保存
func runConfig(cmd *cobra.Command, args []string) {
	ui.Banner()
	settings := config.Get()

	// 检查是否有设置选项
	hasChanges := false

	// 设置默认前缀
	if cmd.Flags().Changed("prefix") {
		settings.DefaultPrefix = setPrefix
		ui.Success("默认前缀已设置为: %q", setPrefix)
		hasChanges = true
	}

	// 设置默认深度
	if setDepth > 0 {
		settings.DefaultDepth = setDepth
		ui.Success("默认深度已设置为: %d", setDepth)
		hasChanges = true
	} else if cmd.Flags().Changed("depth") {
		ui.Error("深度必须 >= 1")
		return
	}

	// 添加自定义类别
	if addCategory != "" {
		name, exts, ok := parseCategorySpec(addCategory)
		if !ok {
			ui.Error("格式错误，应为: 名称=ext1,ext2")
			return
		}
		if settings.ExtraCategories == nil {
			settings.ExtraCategories = make(map[string][]string)
		}
		settings.ExtraCategories[name] = exts
		ui.Success("类别 %s 已添加: %s", name, strings.Join(exts, ", "))
		hasChanges = true
	}

	// 清空自定义类别
	if clearExtras {
		settings.ExtraCategories = nil
		ui.Success("自定义类别已清空")
		hasChanges = true
	}

	// 如果有更改，保存配置
	if hasChanges {
		if err := settings.Save(); err != nil {
			ui.Error("保存配置失败: %v", err)
		} else {
			ui.Success("配置已保存")
		}
		return
	}

	// 没有设置选项，显示当前配置
	showConfig(settings)
}

// parseCategorySpec 解析"名称=ext1,ext2"形式的类别定义
func parseCategorySpec(spec string) (string, []string, bool) {
	name, list, found := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return "", nil, false
	}

	var exts []string
	for _, e := range strings.Split(list, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			exts = append(exts, e)
		}
	}
	if len(exts) == 0 {
		return "", nil, false
	}
	return name, exts, true
}

// showConfig 显示当前配置
func showConfig(settings *config.Settings) {
	ui.Title("⚙️", "当前配置")
	ui.Divider()

	fmt.Println()
	ui.Info("整理默认值:")
	ui.Info("  默认前缀:      %q", settings.DefaultPrefix)
	ui.Info("  默认深度:      %d", settings.DefaultDepth)

	fmt.Println()
	ui.Info("自定义类别:")
	if len(settings.ExtraCategories) == 0 {
		ui.Dim("  （无）")
	} else {
		for name, exts := range settings.ExtraCategories {
			ui.Info("  %-12s %s", name, strings.Join(exts, ", "))
		}
	}

	fmt.Println()
	ui.Info("数据路径:")
	ui.Info("  数据目录:      %s", settings.DataDir)

	fmt.Println()
	ui.Dim("修改配置示例:")
	ui.Dim("  forg config --prefix sorted_")
	ui.Dim("  forg config --depth 2")
	ui.Dim("  forg config --add-category Fonts=ttf,otf,woff")
	ui.Dim("  forg config --clear-categories")
}
