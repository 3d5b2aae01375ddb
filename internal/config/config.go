// Package config 配置管理模块
// 提供单次运行的选项和持久化默认值
// 默认值文件存储在 ~/.forg/config.json
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// 版本和作者信息常量
const (
	Version   = "1.0.0"                            // 程序版本号
	BuildDate = "2026"                             // 构建日期
	Author    = "lynx-lee"                         // 作者
	Homepage  = "https://github.com/lynx-lee/forg" // 项目主页
	License   = "MIT"                              // 开源许可
	BinName   = "forg"                             // 程序名，整理时跳过自身
)

// ==================== 运行选项 ====================

// Options 单次运行的选项
// 由命令行解析后一次性构造，整理过程中只读
type Options struct {
	StartDir  string // 起始目录
	Prefix    string // 类别文件夹名前缀
	Verbose   bool   // 详细输出模式
	DryRun    bool   // 预览模式，不实际移动文件
	Recursive bool   // 递归处理子目录
	MaxDepth  int    // 递归最大深度（>=1）
	SelfName  string // 当前可执行文件名，整理时跳过
}

// Normalize 修正非法选项值
// 深度小于 1 时回退到 1，返回是否发生了修正（供调用方告警）
func (o *Options) Normalize() bool {
	if o.MaxDepth < 1 {
		o.MaxDepth = 1
		return true
	}
	return false
}

// ==================== 持久化默认值 ====================

// Settings 持久化的默认值
// 保存用户偏好：默认前缀、默认深度和自定义类别
type Settings struct {
	DefaultPrefix   string              `json:"default_prefix"`   // 默认文件夹前缀
	DefaultDepth    int                 `json:"default_depth"`    // 默认递归深度
	ExtraCategories map[string][]string `json:"extra_categories"` // 自定义类别：类别名 -> 扩展名列表

	// 内部路径（不序列化）
	DataDir string `json:"-"` // 数据目录路径 (~/.forg)
}

// 单例模式相关变量
var (
	instance *Settings // 全局默认值实例
	once     sync.Once // 确保只初始化一次
)

// Get 获取全局默认值实例（单例模式）
// 首次调用时初始化默认值并尝试从文件加载
func Get() *Settings {
	once.Do(func() {
		instance = defaultSettings()
		instance.initPaths()
		instance.Load()
	})
	return instance
}

// defaultSettings 创建出厂默认值
func defaultSettings() *Settings {
	return &Settings{
		DefaultPrefix: "", // 默认不加前缀
		DefaultDepth:  1,  // 默认只处理当前目录
	}
}

// initPaths 初始化数据存储路径
// 创建 ~/.forg 目录（如果不存在）
func (s *Settings) initPaths() {
	homeDir, _ := os.UserHomeDir()
	s.DataDir = filepath.Join(homeDir, ".forg")
	os.MkdirAll(s.DataDir, 0755)
}

// Load 从文件加载默认值
// 配置文件路径: <DataDir>/config.json
func (s *Settings) Load() error {
	configPath := filepath.Join(s.DataDir, "config.json")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err // 文件不存在时返回错误，使用出厂默认值
	}
	return json.Unmarshal(data, s)
}

// Save 保存默认值到文件
// 以格式化的 JSON 格式保存
func (s *Settings) Save() error {
	configPath := filepath.Join(s.DataDir, "config.json")
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}
