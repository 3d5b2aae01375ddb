// Package classifier 扩展名分类模块
// 提供扩展名到类别的映射，按声明顺序查表，未命中归入"Others"
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package classifier

import (
	"sort"
	"strings"
)

// ==================== 常量定义 ====================

// FallbackCategory 兜底类别
// 无扩展名或扩展名未被任何类别收录时使用
const FallbackCategory = "Others"

// ==================== 类型定义 ====================

// Category 单个类别定义
// 类别名 + 该类别收录的扩展名列表（小写，不带点号）
type Category struct {
	Name       string   // 类别名，同时作为目标文件夹名
	Extensions []string // 收录的扩展名
}

// Table 分类表
// 按声明顺序存放类别，查表时先声明的类别优先命中
// 不使用 map：同一扩展名出现在多个类别时，顺序决定归属
type Table struct {
	categories []Category
}

// builtinCategories 内置分类表
// 顺序即查表顺序，不要随意调整
var builtinCategories = []Category{
	{"Images", []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "svg", "webp", "ico", "psd", "ai", "eps"}},
	{"Videos", []string{"mp4", "mkv", "avi", "mov", "wmv", "flv", "webm", "m4v", "mpeg", "mpg", "3gp", "rmvb"}},
	{"Audio", []string{"mp3", "wav", "flac", "aac", "ogg", "m4a", "wma", "aiff", "mid", "midi"}},
	{"Documents", []string{"pdf", "doc", "docx", "txt", "rtf", "odt", "xls", "xlsx", "ppt", "pptx", "csv", "md", "markdown", "log"}},
	{"Archives", []string{"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "iso", "dmg", "pkg", "deb", "rpm"}},
	{"Code", []string{"cpp", "c", "h", "hpp", "py", "js", "ts", "html", "htm", "css", "scss", "java", "go", "rs", "rb", "php", "swift", "kt", "scala", "sh", "bash", "json", "xml", "yaml", "yml", "toml", "ini", "cfg", "conf"}},
	{"Executables", []string{"exe", "app", "bin", "msi", "run", "elf", "so", "dll", "dylib"}},
	{"Database", []string{"sql", "db", "sqlite", "mdb", "accdb", "frm", "ibd"}},
	{"Books", []string{"epub", "mobi", "azw", "azw3", "fb2", "djvu", "chm"}},
}

// ==================== 构造函数 ====================

// Default 返回内置分类表
func Default() *Table {
	return &Table{categories: builtinCategories}
}

// WithExtras 在内置类别之后追加用户自定义类别
// extras 来自配置文件，map 无序，按类别名排序后追加以保证查表顺序稳定
// 返回新表，不修改原表
func (t *Table) WithExtras(extras map[string][]string) *Table {
	if len(extras) == 0 {
		return t
	}

	names := make([]string, 0, len(extras))
	for name := range extras {
		names = append(names, name)
	}
	sort.Strings(names)

	cats := make([]Category, 0, len(t.categories)+len(names))
	cats = append(cats, t.categories...)
	for _, name := range names {
		exts := make([]string, 0, len(extras[name]))
		for _, e := range extras[name] {
			// 统一成小写、去掉前导点号
			exts = append(exts, strings.ToLower(strings.TrimPrefix(e, ".")))
		}
		cats = append(cats, Category{Name: name, Extensions: exts})
	}

	return &Table{categories: cats}
}

// ==================== 分类函数 ====================

// ExtensionOf 提取文件扩展名
// 取最后一个点号之后的部分并转小写
// 没有点号、或点号在末尾时返回空串
func ExtensionOf(filename string) string {
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || dot == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[dot+1:])
}

// Classify 根据文件名确定类别
// 按声明顺序扫描各类别，第一个收录该扩展名的类别命中
// 任何文件名都有归属，未命中返回 FallbackCategory
func (t *Table) Classify(filename string) string {
	ext := ExtensionOf(filename)
	if ext == "" {
		return FallbackCategory
	}

	for _, cat := range t.categories {
		for _, e := range cat.Extensions {
			if e == ext {
				return cat.Name
			}
		}
	}

	return FallbackCategory
}

// Categories 返回表中全部类别（声明顺序）
// 用于 categories 命令展示分类表
func (t *Table) Categories() []Category {
	return t.categories
}
