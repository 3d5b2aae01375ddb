// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"forg/internal/classifier"
	"forg/internal/config"
	"forg/internal/scanner"
)

// writeFile 在目录下创建一个测试文件
func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("创建文件 %s 失败: %v", name, err)
	}
}

// mkdir 在目录下创建一个子目录
func mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("创建目录 %s 失败: %v", name, err)
	}
	return path
}

// categoriesByName 把候选列表变成 文件名 -> 类别 映射
// 同层条目的遍历顺序不做假设
func categoriesByName(files []scanner.Candidate) map[string]string {
	m := make(map[string]string, len(files))
	for _, f := range files {
		m[f.Name] = f.Category
	}
	return m
}

func TestShouldSkip(t *testing.T) {
	for _, name := range []string{".hidden", ".git", ".anything", "node_modules", "build", "dist", "__pycache__", "Thumbs.db", ".DS_Store"} {
		if !scanner.ShouldSkip(name) {
			t.Errorf("ShouldSkip(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"doc.pdf", "builds", "mybuild", "git", "Thumbs", "normal"} {
		if scanner.ShouldSkip(name) {
			t.Errorf("ShouldSkip(%q) = true, want false", name)
		}
	}
}

func TestCollectNonRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.pdf")
	writeFile(t, dir, "photo.JPG")
	writeFile(t, dir, "run.sh")
	writeFile(t, dir, ".hidden")
	sub := mkdir(t, dir, "sub")
	writeFile(t, sub, "inner.txt")
	buildDir := mkdir(t, dir, "build")
	writeFile(t, buildDir, "artifact.o")

	opts := &config.Options{StartDir: dir, MaxDepth: 1, SelfName: "forg-test"}
	res, err := scanner.Collect(opts, classifier.Default())
	if err != nil {
		t.Fatalf("Collect 返回错误: %v", err)
	}

	got := categoriesByName(res.Files)
	want := map[string]string{
		"doc.pdf":   "Documents",
		"photo.JPG": "Images",
		"run.sh":    "Code",
	}
	if len(got) != len(want) {
		t.Fatalf("候选文件 %v，期望 %v", got, want)
	}
	for name, cat := range want {
		if got[name] != cat {
			t.Errorf("%s 归入 %q，期望 %q", name, got[name], cat)
		}
	}

	// .hidden + sub/ + build/ 均被排除
	if res.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", res.Skipped)
	}
	if len(res.Errors) != 0 {
		t.Errorf("意外的遍历错误: %v", res.Errors)
	}
}

func TestCollectRecursiveDepthBoundary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	sub := mkdir(t, dir, "sub")
	writeFile(t, sub, "b.txt")
	deep := mkdir(t, sub, "deep")
	writeFile(t, deep, "c.txt")

	cases := []struct {
		maxDepth int
		want     []string
	}{
		{1, []string{"a.txt"}},                   // 等价于非递归
		{2, []string{"a.txt", "b.txt"}},          // 进入一层子目录
		{3, []string{"a.txt", "b.txt", "c.txt"}}, // 全部收齐
	}

	for _, tc := range cases {
		opts := &config.Options{StartDir: dir, Recursive: true, MaxDepth: tc.maxDepth, SelfName: "forg-test"}
		res, err := scanner.Collect(opts, classifier.Default())
		if err != nil {
			t.Fatalf("maxDepth=%d Collect 返回错误: %v", tc.maxDepth, err)
		}

		got := categoriesByName(res.Files)
		if len(got) != len(tc.want) {
			t.Fatalf("maxDepth=%d 收到 %v，期望 %v", tc.maxDepth, got, tc.want)
		}
		for _, name := range tc.want {
			if _, ok := got[name]; !ok {
				t.Errorf("maxDepth=%d 缺少 %s", tc.maxDepth, name)
			}
		}
	}
}

func TestCollectRecursiveSkipsHiddenDir(t *testing.T) {
	dir := t.TempDir()
	git := mkdir(t, dir, ".git")
	writeFile(t, git, "config")
	modules := mkdir(t, dir, "node_modules")
	writeFile(t, modules, "index.js")

	opts := &config.Options{StartDir: dir, Recursive: true, MaxDepth: 5, SelfName: "forg-test"}
	res, err := scanner.Collect(opts, classifier.Default())
	if err != nil {
		t.Fatalf("Collect 返回错误: %v", err)
	}

	if len(res.Files) != 0 {
		t.Errorf("被跳过目录的内容不应收集: %v", res.Files)
	}
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}
}

func TestCollectSkipsSelfBinary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "forg")      // 程序固定名
	writeFile(t, dir, "forg-test") // 当前可执行文件名
	writeFile(t, dir, "keep.txt")

	opts := &config.Options{StartDir: dir, MaxDepth: 1, SelfName: "forg-test"}
	res, err := scanner.Collect(opts, classifier.Default())
	if err != nil {
		t.Fatalf("Collect 返回错误: %v", err)
	}

	got := categoriesByName(res.Files)
	if len(got) != 1 {
		t.Fatalf("候选文件 %v，期望只有 keep.txt", got)
	}
	if _, ok := got["keep.txt"]; !ok {
		t.Fatalf("keep.txt 未被收集: %v", got)
	}
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}
}

func TestCollectRecordsUnreadableSubdir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root 不受目录权限限制，无法模拟读取失败")
	}

	dir := t.TempDir()
	writeFile(t, dir, "a.txt")
	locked := mkdir(t, dir, "locked")
	writeFile(t, locked, "unreachable.txt")
	sibling := mkdir(t, dir, "sub")
	writeFile(t, sibling, "b.txt")

	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("修改权限失败: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	opts := &config.Options{StartDir: dir, Recursive: true, MaxDepth: 2, SelfName: "forg-test"}
	res, err := scanner.Collect(opts, classifier.Default())
	if err != nil {
		t.Fatalf("子目录读取失败不应让整个扫描出错: %v", err)
	}

	if len(res.Errors) != 1 {
		t.Fatalf("Errors = %v, want 1 个", res.Errors)
	}

	// 读取失败只影响该目录，兄弟条目照常收集
	got := categoriesByName(res.Files)
	if _, ok := got["a.txt"]; !ok {
		t.Error("起始目录的文件未被收集")
	}
	if _, ok := got["b.txt"]; !ok {
		t.Error("兄弟子目录的文件未被收集")
	}
	if _, ok := got["unreachable.txt"]; ok {
		t.Error("不可读目录的内容不应出现在候选列表")
	}
}

func TestCollectMissingStartDir(t *testing.T) {
	opts := &config.Options{
		StartDir: filepath.Join(t.TempDir(), "does-not-exist"),
		MaxDepth: 1,
		SelfName: "forg-test",
	}
	if _, err := scanner.Collect(opts, classifier.Default()); err == nil {
		t.Fatal("起始目录不存在时应返回错误")
	}
}

func TestGetStatistics(t *testing.T) {
	files := []scanner.Candidate{
		{Name: "a.jpg", Category: "Images", Size: 100},
		{Name: "b.jpg", Category: "Images", Size: 50},
		{Name: "c.pdf", Category: "Documents", Size: 10},
		{Name: "README", Category: "Others", Size: 1},
	}

	stats := scanner.GetStatistics(files)
	if stats.TotalFiles != 4 {
		t.Errorf("TotalFiles = %d, want 4", stats.TotalFiles)
	}
	if stats.TotalSize != 161 {
		t.Errorf("TotalSize = %d, want 161", stats.TotalSize)
	}
	if got := stats.ByCategory["Images"]; got.Count != 2 || got.Size != 150 {
		t.Errorf("Images 统计 = %+v, want {2 150}", got)
	}
	if stats.ByExt["jpg"] != 2 {
		t.Errorf("jpg 计数 = %d, want 2", stats.ByExt["jpg"])
	}
	if stats.ByExt["(无扩展名)"] != 1 {
		t.Errorf("无扩展名计数 = %d, want 1", stats.ByExt["(无扩展名)"])
	}
}
