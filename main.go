// Forg - 按扩展名整理文件
// 将目录中的文件按类别移动到对应的子文件夹
//
// Copyright (c) 2024-2026 lynx-lee
// https://github.com/lynx-lee/forg
// License: MIT

package main

import "forg/cmd"

// main 程序入口函数
// 调用 cmd.Execute() 启动命令行应用
func main() {
	cmd.Execute()
}
