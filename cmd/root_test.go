// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// execRoot 重置标志后以给定参数执行根命令
// 标志变量是包级状态，测试之间必须回到默认值
func execRoot(t *testing.T, args ...string) error {
	t.Helper()
	prefix = ""
	verbose = false
	dryRun = false
	recursive = false
	maxDepth = 1
	skipAsk = false

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestOrganizeFailsWhenOnlyContentIsUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root 不受目录权限限制，无法模拟读取失败")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	if err := os.MkdirAll(locked, 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("修改权限失败: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	// 唯一的内容就是不可读子目录：零候选文件，但必须以失败状态结束
	if err := execRoot(t, dir, "-r", "-d", "2", "-n"); err == nil {
		t.Fatal("仅含不可读子目录时应返回错误")
	}
}

func TestOrganizeDryRunSucceeds(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "doc.pdf"), []byte("x"), 0644); err != nil {
		t.Fatalf("创建文件失败: %v", err)
	}

	if err := execRoot(t, dir, "-n", "-d", "1"); err != nil {
		t.Fatalf("预览模式运行失败: %v", err)
	}
}

func TestOrganizeMissingStartDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if err := execRoot(t, missing, "-n"); err == nil {
		t.Fatal("起始目录不存在时应返回错误")
	}
}
