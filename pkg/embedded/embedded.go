// Package embedded 提供嵌入资源的统一访问接口
//
// 资源由 assets 包通过 //go:embed 嵌入，本包只负责按路径读取。
// 所有路径都以 "assets/" 开头（与 resources.yaml 中的 base_path 一致），
// 读取时会去掉该前缀再交给底层文件系统。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const assetsPrefix = "assets/"

var (
	assetsFS    fs.FS
	initialized bool
)

// Init 设置资源文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(assets fs.FS) {
	assetsFS = assets
	initialized = assets != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// resolve 标准化路径并去掉 "assets/" 前缀
func resolve(name string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// embed.FS 使用正斜杠
	name = filepath.ToSlash(name)
	name = strings.TrimPrefix(name, "./")

	if !strings.HasPrefix(name, assetsPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/')", name)
	}
	return path.Clean(strings.TrimPrefix(name, assetsPrefix)), nil
}

// ReadFile 读取资源文件内容，路径必须以 "assets/" 开头
func ReadFile(name string) ([]byte, error) {
	p, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(assetsFS, p)
}

// ReadResource 读取资源文件
// "assets/" 开头的路径从嵌入资源读取，其它路径从磁盘读取（用于 -config 指定的外部文件）
func ReadResource(name string) ([]byte, error) {
	if strings.HasPrefix(filepath.ToSlash(name), assetsPrefix) {
		return ReadFile(name)
	}
	return os.ReadFile(name)
}
