// Package cmd 命令行入口模块
// 提供 forg 的所有命令行功能，包括文件整理、扫描统计、配置等
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"forg/internal/classifier"
	"forg/internal/config"
	"forg/internal/organizer"
	"forg/internal/scanner"
	"forg/internal/ui"
)

// 命令行参数变量
var (
	prefix    string // 类别文件夹名前缀
	verbose   bool   // 详细输出模式
	dryRun    bool   // 预览模式，不实际移动文件
	recursive bool   // 递归处理子目录
	maxDepth  int    // 递归最大深度
	skipAsk   bool   // 跳过执行前确认
)

// rootCmd 根命令定义
// 用于整理指定目录中的文件
var rootCmd = &cobra.Command{
	Use:   "forg [目录]",
	Short: "forg - 按扩展名整理文件",
	Long: ui.Cyan(`
  ███████╗ ██████╗ ██████╗  ██████╗
  ██╔════╝██╔═══██╗██╔══██╗██╔════╝
  █████╗  ██║   ██║██████╔╝██║  ███╗
  ██╔══╝  ██║   ██║██╔══██╗██║   ██║
  ██║     ╚██████╔╝██║  ██║╚██████╔╝
  ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ `) + `

  按扩展名整理文件  v` + config.Version + `

示例:
  forg                          # 整理当前目录（只处理第一层）
  forg ~/Downloads              # 整理下载文件夹
  forg -n                       # 预览模式，不移动文件
  forg -r -d 2                  # 递归整理，最多两层
  forg -p backup_               # 类别文件夹加 backup_ 前缀
  forg categories               # 查看分类表
  forg config                   # 查看/修改默认值
`,
	Args:          cobra.MaximumNArgs(1), // 最多接受一个参数（目录路径）
	RunE:          runOrganize,           // 执行整理操作
	SilenceUsage:  true,                  // 运行期错误不重复打印用法
	SilenceErrors: true,                  // 错误由 Execute 统一打印
}

// init 初始化命令行参数
func init() {
	rootCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "类别文件夹名前缀")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "预览模式")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "递归处理子目录")
	rootCmd.Flags().IntVarP(&maxDepth, "depth", "d", 1, "递归最大深度 (>=1)")
	rootCmd.Flags().BoolVarP(&skipAsk, "yes", "y", false, "跳过执行前确认")
}

// Execute 执行根命令
// 这是程序的主入口，由 main.go 调用
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildOptions 根据命令行参数和持久化默认值构造运行选项
// 未显式指定的参数回退到 ~/.forg/config.json 里的默认值
func buildOptions(cmd *cobra.Command, args []string) *config.Options {
	settings := config.Get()

	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
	}

	opts := &config.Options{
		StartDir:  startDir,
		Prefix:    prefix,
		Verbose:   verbose,
		DryRun:    dryRun,
		Recursive: recursive,
		MaxDepth:  maxDepth,
		SelfName:  filepath.Base(os.Args[0]),
	}

	if !cmd.Flags().Changed("prefix") {
		opts.Prefix = settings.DefaultPrefix
	}
	if !cmd.Flags().Changed("depth") {
		opts.MaxDepth = settings.DefaultDepth
	}

	// 非法深度回退到 1，告警但不终止
	if opts.Normalize() {
		ui.Warning("深度必须 >= 1，已使用默认值 1")
	}

	return opts
}

// runOrganize 执行文件整理的核心逻辑
// 整体流程：扫描 -> 确认（可选）-> 移动 -> 报告
// 返回非 nil 错误时进程以失败状态退出，便于脚本判断
func runOrganize(cmd *cobra.Command, args []string) error {
	opts := buildOptions(cmd, args)

	ui.Banner()

	absDir, err := filepath.Abs(opts.StartDir)
	if err == nil {
		opts.StartDir = absDir
	}

	// 检查起始目录是否存在
	if _, err := os.Stat(opts.StartDir); os.IsNotExist(err) {
		return fmt.Errorf("目录不存在: %s", opts.StartDir)
	}

	ui.Title("📂", fmt.Sprintf("整理: %s", opts.StartDir))
	if opts.Recursive {
		ui.Info("递归模式（最大深度: %d）", opts.MaxDepth)
	}
	if opts.Prefix != "" {
		ui.Info("文件夹前缀: %s", opts.Prefix)
	}
	if opts.DryRun {
		ui.Warning("预览模式 - 不会做任何修改")
	}

	// ========== 步骤1: 扫描目录 ==========
	table := classifier.Default().WithExtras(config.Get().ExtraCategories)
	res, err := scanner.Collect(opts, table)
	if err != nil {
		return fmt.Errorf("扫描失败: %v", err)
	}

	// 遍历错误也计入整体结果，没有候选文件时同样不能吞掉
	for _, e := range res.Errors {
		ui.Error("%v", e)
	}

	if len(res.Files) == 0 {
		if len(res.Errors) > 0 {
			return fmt.Errorf("扫描过程中发生 %d 个错误", len(res.Errors))
		}
		ui.Warning("没有文件需要整理")
		return nil
	}
	ui.Success("找到 %d 个文件", len(res.Files))

	// ========== 步骤2: 执行前确认 ==========
	if !opts.DryRun && !skipAsk {
		if !ui.Confirm(fmt.Sprintf("\n确认整理 %d 个文件?", len(res.Files)), false) {
			ui.Warning("已取消")
			return nil
		}
	}

	// ========== 步骤3: 移动文件并汇总报告 ==========
	rep := organizer.Organize(res.Files, opts)
	rep.Skipped += res.Skipped
	rep.Errored += len(res.Errors)

	organizer.PrintReport(rep)

	if opts.DryRun {
		ui.Dim("去掉 -n 参数执行实际整理")
	}

	// 有任何条目出错时以失败状态退出
	if rep.Errored > 0 {
		return fmt.Errorf("共有 %d 个条目处理失败", rep.Errored)
	}
	return nil
}
