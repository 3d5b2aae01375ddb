// Package cmd 命令行入口模块
// scan.go - 扫描命令，只统计不移动，用于整理前了解目录内容
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"forg/internal/classifier"
	"forg/internal/config"
	"forg/internal/scanner"
	"forg/internal/ui"
)

// 扫描命令参数变量
var (
	scanRecursive bool // 递归扫描子目录
	scanDepth     int  // 递归最大深度
)

// scanCmd 扫描命令定义
var scanCmd = &cobra.Command{
	Use:   "scan [目录]",
	Short: "扫描统计",
	Long:  "扫描目录并显示类别和扩展名分布，不移动任何文件",
	Args:  cobra.MaximumNArgs(1),
	Run:   runScan,
}

// init 注册 scan 子命令及其标志
func init() {
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false, "递归扫描子目录")
	scanCmd.Flags().IntVarP(&scanDepth, "depth", "d", 1, "递归最大深度 (>=1)")
	rootCmd.AddCommand(scanCmd)
}

// runScan 执行扫描命令
// 和整理流程用同一套遍历逻辑，统计结果即整理预期
func runScan(cmd *cobra.Command, args []string) {
	ui.Banner()

	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
	}

	opts := &config.Options{
		StartDir:  startDir,
		Recursive: scanRecursive,
		MaxDepth:  scanDepth,
		SelfName:  filepath.Base(os.Args[0]),
	}
	if opts.Normalize() {
		ui.Warning("深度必须 >= 1，已使用默认值 1")
	}

	table := classifier.Default().WithExtras(config.Get().ExtraCategories)
	res, err := scanner.Collect(opts, table)
	if err != nil {
		ui.Error("扫描失败: %v", err)
		os.Exit(1)
	}

	scanner.PrintStatistics(res.Files)

	if res.Skipped > 0 {
		ui.Dim("另有 %d 个条目被跳过", res.Skipped)
	}
	for _, e := range res.Errors {
		ui.Error("%v", e)
	}
}
